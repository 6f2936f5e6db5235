package layout

import (
	"fmt"

	"github.com/tuilayout/split/internal/cassowary"
)

// compile builds every constraint that governs one split and returns the
// raw solver values for each element's start/end variables, keyed by
// symbol. It mirrors, one function per concern, the stages a Cassowary-based
// layout solve always goes through: pin the area, bound every variable to
// it, order the variables, distribute leftover space per the flex policy,
// apply each segment's own constraint, and finally let Fill segments (and,
// outside FlexLegacy, Min segments) share what is left.
func compile(l Layout, areaStart, areaEnd float64) (segments, spacers []element, values map[cassowary.Symbol]float64, err error) {
	s := cassowary.NewSolver()

	variableCount := len(l.Constraints)*2 + 2

	variables := make([]cassowary.Symbol, variableCount)
	for i := range variables {
		variables[i] = cassowary.New()
	}

	spacerElements := newElements(variables)
	segmentElements := newElements(variables[1:])

	areaEl := element{start: variables[0], end: variables[len(variables)-1]}

	if err := configureArea(s, areaEl, areaStart, areaEnd); err != nil {
		return nil, nil, nil, fmt.Errorf("configure area: %w", err)
	}

	if err := configureVariableInAreaConstraints(s, variables, areaEl); err != nil {
		return nil, nil, nil, fmt.Errorf("configure variable in area constraints: %w", err)
	}

	if err := configureVariableConstraints(s, variables); err != nil {
		return nil, nil, nil, fmt.Errorf("configure variable constraints: %w", err)
	}

	if err := configureFlexConstraints(s, areaEl, spacerElements, l.Flex, l.Spacing); err != nil {
		return nil, nil, nil, fmt.Errorf("configure flex constraints: %w", err)
	}

	if err := configureConstraints(s, areaEl, segmentElements, l.Constraints, l.Flex); err != nil {
		return nil, nil, nil, fmt.Errorf("configure constraints: %w", err)
	}

	if err := configureFillConstraints(s, segmentElements, l.Constraints, l.Flex); err != nil {
		return nil, nil, nil, fmt.Errorf("configure fill constraints: %w", err)
	}

	if l.Flex != FlexLegacy {
		for i := 0; i < len(segmentElements)-1; i++ {
			left, right := segmentElements[i], segmentElements[i+1]

			if _, err := s.Add(segmentUniformity, left.hasSize(right)); err != nil {
				return nil, nil, nil, fmt.Errorf("add segment uniformity constraint: %w", err)
			}
		}
	}

	values = make(map[cassowary.Symbol]float64, variableCount)
	for _, v := range variables {
		values[v] = s.Val(v)
	}

	return segmentElements, spacerElements, values, nil
}

// configureArea pins the area element's start and end to the fixed bounds
// of the axis being split; these are the only two variables the solve is
// ultimately anchored to.
func configureArea(s *cassowary.Solver, area element, areaStart, areaEnd float64) error {
	if _, err := s.Add(required, cassowary.NewConstraint(cassowary.EQ, -areaStart, area.start.T(1))); err != nil {
		return fmt.Errorf("add start constraint: %w", err)
	}

	if _, err := s.Add(required, cassowary.NewConstraint(cassowary.EQ, -areaEnd, area.end.T(1))); err != nil {
		return fmt.Errorf("add end constraint: %w", err)
	}

	return nil
}

// configureVariableInAreaConstraints keeps every variable between the
// area's start and end, so no segment or spacer can be solved outside the
// bounds being split.
func configureVariableInAreaConstraints(s *cassowary.Solver, variables []cassowary.Symbol, area element) error {
	for _, v := range variables {
		if _, err := s.Add(required, cassowary.NewConstraint(cassowary.GTE, 0, v.T(1), area.start.T(-1))); err != nil {
			return fmt.Errorf("add start constraint: %w", err)
		}

		if _, err := s.Add(required, cassowary.NewConstraint(cassowary.LTE, 0, v.T(1), area.end.T(-1))); err != nil {
			return fmt.Errorf("add end constraint: %w", err)
		}
	}

	return nil
}

// configureVariableConstraints keeps every segment's end at or after its
// start by ordering the variables pairwise after the area's own start.
// Spacers are not ordered here, so a negative spacing can give a spacer a
// negative size and make adjacent segments overlap.
func configureVariableConstraints(s *cassowary.Solver, variables []cassowary.Symbol) error {
	variables = variables[1:]

	count := len(variables)
	for i := 0; i < count-count%2; i += 2 {
		left, right := variables[i], variables[i+1]

		if _, err := s.Add(required, cassowary.NewConstraint(cassowary.LTE, 0, left.T(1), right.T(-1))); err != nil {
			return fmt.Errorf("add ordering constraint: %w", err)
		}
	}

	return nil
}

// configureFlexConstraints implements the leftover-space distribution
// policy selected by flex, acting only on the spacer elements (there are
// always len(segments)+1 of them: leading, one between each pair of
// segments, and trailing).
func configureFlexConstraints(s *cassowary.Solver, area element, spacers []element, flex Flex, spacing int) error {
	var middle []element
	if len(spacers) > 2 {
		middle = spacers[1 : len(spacers)-1]
	}

	switch flex {
	case FlexLegacy:
		for _, sp := range middle {
			if _, err := s.Add(spacerSizeEq, sp.hasIntSize(spacing)); err != nil {
				return fmt.Errorf("add spacer size constraint: %w", err)
			}
		}

		if len(spacers) >= 2 {
			first, last := spacers[0], spacers[len(spacers)-1]

			if _, err := s.Add(required-weak, first.empty()); err != nil {
				return err
			}

			if _, err := s.Add(required-weak, last.empty()); err != nil {
				return err
			}
		}

	case FlexSpaceEvenly:
		for _, pair := range combinations(len(spacers), 2) {
			left, right := spacers[pair[0]], spacers[pair[1]]

			if _, err := s.Add(spacerSizeEq, left.hasSize(right)); err != nil {
				return fmt.Errorf("add spacer equality constraint: %w", err)
			}
		}

		for _, sp := range spacers {
			if _, err := s.Add(spacerSizeEq, sp.hasMinSize(spacing)); err != nil {
				return err
			}

			if _, err := s.Add(spaceGrow, sp.hasSize(area)); err != nil {
				return err
			}
		}

	case FlexSpaceAround:
		if len(spacers) <= 2 {
			for _, pair := range combinations(len(spacers), 2) {
				left, right := spacers[pair[0]], spacers[pair[1]]

				if _, err := s.Add(spacerSizeEq, left.hasSize(right)); err != nil {
					return err
				}
			}

			for _, sp := range spacers {
				if _, err := s.Add(spacerSizeEq, sp.hasMinSize(spacing)); err != nil {
					return err
				}

				if _, err := s.Add(spaceGrow, sp.hasSize(area)); err != nil {
					return err
				}
			}

			return nil
		}

		first, rest := spacers[0], spacers[1:]
		last, inner := rest[len(rest)-1], rest[:len(rest)-1]

		for _, pair := range combinations(len(inner), 2) {
			left, right := inner[pair[0]], inner[pair[1]]

			if _, err := s.Add(spacerSizeEq, left.hasSize(right)); err != nil {
				return err
			}
		}

		if len(inner) > 0 {
			firstInner := inner[0]

			for _, e := range [2]element{first, last} {
				if _, err := s.Add(spacerSizeEq, firstInner.hasDoubleSize(e)); err != nil {
					return err
				}
			}
		}

		for _, sp := range spacers {
			if _, err := s.Add(spacerSizeEq, sp.hasMinSize(spacing)); err != nil {
				return err
			}

			if _, err := s.Add(spaceGrow, sp.hasSize(area)); err != nil {
				return err
			}
		}

	case FlexSpaceBetween:
		for _, pair := range combinations(len(middle), 2) {
			left, right := middle[pair[0]], middle[pair[1]]

			if _, err := s.Add(spacerSizeEq, left.hasSize(right)); err != nil {
				return err
			}
		}

		for _, sp := range middle {
			if _, err := s.Add(spacerSizeEq, sp.hasMinSize(spacing)); err != nil {
				return err
			}

			if _, err := s.Add(spaceGrow, sp.hasSize(area)); err != nil {
				return err
			}
		}

		if len(spacers) >= 2 {
			first, last := spacers[0], spacers[len(spacers)-1]

			if _, err := s.Add(required-weak, first.empty()); err != nil {
				return err
			}

			if _, err := s.Add(required-weak, last.empty()); err != nil {
				return err
			}
		}

	case FlexStart:
		for _, sp := range middle {
			if _, err := s.Add(spacerSizeEq, sp.hasIntSize(spacing)); err != nil {
				return err
			}
		}

		if len(spacers) >= 2 {
			first, last := spacers[0], spacers[len(spacers)-1]

			if _, err := s.Add(required-weak, first.empty()); err != nil {
				return err
			}

			if _, err := s.Add(grow, last.hasSize(area)); err != nil {
				return err
			}
		}

	case FlexCenter:
		for _, sp := range middle {
			if _, err := s.Add(spacerSizeEq, sp.hasIntSize(spacing)); err != nil {
				return err
			}
		}

		if len(spacers) >= 2 {
			first, last := spacers[0], spacers[len(spacers)-1]

			if _, err := s.Add(grow, first.hasSize(area)); err != nil {
				return err
			}

			if _, err := s.Add(grow, last.hasSize(area)); err != nil {
				return err
			}

			if _, err := s.Add(spacerSizeEq, first.hasSize(last)); err != nil {
				return err
			}
		}

	case FlexEnd:
		for _, sp := range middle {
			if _, err := s.Add(spacerSizeEq, sp.hasIntSize(spacing)); err != nil {
				return err
			}
		}

		if len(spacers) >= 2 {
			first, last := spacers[0], spacers[len(spacers)-1]

			if _, err := s.Add(required-weak, last.empty()); err != nil {
				return err
			}

			if _, err := s.Add(grow, first.hasSize(area)); err != nil {
				return err
			}
		}
	}

	return nil
}

// configureConstraints applies each segment's own [Constraint] to its
// element. Max adds a hard inequality and a soft equality nudge toward
// the bound; Min adds a hard inequality plus, under FlexLegacy, the same
// equality nudge and, under every other flex, growth toward the whole
// area; Len pins exactly; Percent and Ratio are measured against the
// whole area, not the leftover space.
func configureConstraints(s *cassowary.Solver, area element, segments []element, constraints []Constraint, flex Flex) error {
	for i := 0; i < min(len(constraints), len(segments)); i++ {
		segment := segments[i]

		switch c := constraints[i].(type) {
		case Max:
			size := int(c)

			if _, err := s.Add(maxSizeLE, segment.hasMaxSize(size)); err != nil {
				return err
			}

			if _, err := s.Add(maxSizeEq, segment.hasIntSize(size)); err != nil {
				return err
			}

		case Min:
			size := int(c)

			if _, err := s.Add(minSizeGE, segment.hasMinSize(size)); err != nil {
				return err
			}

			if flex == FlexLegacy {
				if _, err := s.Add(minSizeEq, segment.hasIntSize(size)); err != nil {
					return err
				}
			} else if _, err := s.Add(fillGrow, segment.hasSize(area)); err != nil {
				return err
			}

		case Len:
			if _, err := s.Add(lengthSizeEq, segment.hasIntSize(int(c))); err != nil {
				return err
			}

		case Percent:
			f := float64(c) / 100

			if _, err := s.Add(percentageSizeEq, segment.hasScaledSize(area, f)); err != nil {
				return err
			}

		case Ratio:
			f := float64(c.Num) / float64(max(c.Den, 1))

			if _, err := s.Add(ratioSizeEq, segment.hasScaledSize(area, f)); err != nil {
				return err
			}

		case Fill:
			if _, err := s.Add(fillGrow, segment.hasSize(area)); err != nil {
				return err
			}
		}
	}

	return nil
}

// configureFillConstraints makes every Fill (and, outside FlexLegacy,
// every Min) segment grow proportionally to its weight: a [Fill](2)
// segment ends up twice the size of a [Fill](1) segment once leftover
// space is distributed, and a Min segment behaves as if it were Fill(1)
// once its floor has already been met.
func configureFillConstraints(s *cassowary.Solver, segments []element, constraints []Constraint, flex Flex) error {
	var (
		weighted []element
		weights  []float64
	)

	for i := 0; i < min(len(constraints), len(segments)); i++ {
		switch c := constraints[i].(type) {
		case Fill:
			weighted = append(weighted, segments[i])
			weights = append(weights, max(1e-6, float64(c)))

		case Min:
			if flex == FlexLegacy {
				continue
			}

			weighted = append(weighted, segments[i])
			weights = append(weights, 1)
		}
	}

	for _, pair := range combinations(len(weighted), 2) {
		i, j := pair[0], pair[1]

		left, right := weighted[i], weighted[j]
		leftWeight, rightWeight := weights[i], weights[j]

		c := cassowary.NewConstraint(cassowary.EQ, 0,
			left.end.T(rightWeight), left.start.T(-rightWeight),
			right.end.T(-leftWeight), right.start.T(leftWeight),
		)

		if _, err := s.Add(grow, c); err != nil {
			return err
		}
	}

	return nil
}

// combinations enumerates every k-element subset of {0, ..., n-1} as index
// pairs, in lexicographic order; it is only ever called with k == 2 here,
// to compare every spacer (or every weighted segment) against every other.
func combinations(n, k int) [][2]int {
	if n < k {
		return nil
	}

	out := make([][2]int, 0, binomial(n, k))
	idx := make([]int, k)

	for i := range idx {
		idx[i] = i
	}

	for {
		out = append(out, [2]int{idx[0], idx[1]})

		j := k - 1
		for j >= 0 && idx[j] == n-k+j {
			j--
		}

		if j < 0 {
			break
		}

		idx[j]++
		for l := j + 1; l < k; l++ {
			idx[l] = idx[j] + l - j
		}
	}

	return out
}

func binomial(n, k int) int {
	if n < k {
		return 0
	}

	if k > n-k {
		k = n - k
	}

	b := 1
	for i := 0; i < k; i++ {
		b = b * (n - i) / (i + 1)
	}

	return b
}
