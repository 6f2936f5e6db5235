// Package layout partitions a one-dimensional run of terminal cells into
// non-overlapping rectangles using a constraint-based solver.
//
// A [Layout] takes an area and a list of [Constraint] values — [Len],
// [Ratio], [Percent], [Fill], [Min], [Max] — and produces that many
// rectangles along the chosen [Direction]. Internally it hands the problem
// to the Cassowary constraint solver in [internal/cassowary]: every rule is
// attempted, and when not all of them can hold simultaneously the solver
// relaxes the lowest-priority ones first.
//
// This implementation is a close adaptation of ratatui's Rust layout
// engine, translated idiom for idiom rather than line for line.
package layout

import (
	"fmt"
	"math"

	"github.com/tuilayout/split/internal/cassowary"
)

// Rects holds the rectangles produced by a [Layout.Split] call, in
// constraint order. A returned Rects may be shared with the split cache,
// so callers must treat it as read-only.
type Rects []Rect

// Assign copies each rectangle into the corresponding pointer, skipping
// nil entries. It panics if a non-nil pointer has no corresponding
// rectangle.
//
//	var top, bottom layout.Rect
//	layout.Vertical(layout.Fill(1), layout.Len(1)).Split(area).Assign(&top, &bottom)
func (rs Rects) Assign(areas ...*Rect) {
	for i := range areas {
		if areas[i] != nil {
			*areas[i] = rs[i]
		}
	}
}

// Layout splits a [Rect] into smaller rectangles according to a list of
// sizing constraints.
//
//   - Direction selects whether segments run top-to-bottom or left-to-right.
//   - Constraints supplies one sizing rule per segment, in order.
//   - Margin insets the area before any constraint is applied.
//   - Flex controls how room left over once every constraint is satisfied
//     is distributed around and between the segments.
//   - Spacing is the gap, in cells, left between adjacent segments; a
//     negative value makes them overlap by that many cells.
type Layout struct {
	Direction   Direction
	Constraints []Constraint
	Margin      Margin
	Flex        Flex
	Spacing     int
}

// New builds a [Layout] for the given direction and constraints.
func New(direction Direction, constraints ...Constraint) Layout {
	return Layout{Direction: direction, Constraints: constraints}
}

// Vertical is shorthand for New(DirectionVertical, constraints...).
func Vertical(constraints ...Constraint) Layout {
	return New(DirectionVertical, constraints...)
}

// Horizontal is shorthand for New(DirectionHorizontal, constraints...).
func Horizontal(constraints ...Constraint) Layout {
	return New(DirectionHorizontal, constraints...)
}

// WithDirection returns a copy of the layout using the given direction.
func (l Layout) WithDirection(direction Direction) Layout {
	l.Direction = direction

	return l
}

// WithConstraints returns a copy of the layout with constraints appended
// to its existing list.
func (l Layout) WithConstraints(constraints ...Constraint) Layout {
	l.Constraints = append(append([]Constraint(nil), l.Constraints...), constraints...)

	return l
}

// WithMargin returns a copy of the layout using the given margin.
func (l Layout) WithMargin(margin Margin) Layout {
	l.Margin = margin

	return l
}

// WithFlex returns a copy of the layout using the given flex policy.
func (l Layout) WithFlex(flex Flex) Layout {
	l.Flex = flex

	return l
}

// WithSpacing returns a copy of the layout using the given spacing.
func (l Layout) WithSpacing(spacing int) Layout {
	l.Spacing = spacing

	return l
}

// Split partitions area into one rectangle per constraint, along l's
// direction. Constraints are all measured against the full inner area
// (after margin), not against space left over by earlier constraints, so
// mixing relative constraints (Percent, Ratio) with absolute ones (Min,
// Max, Len) can produce results that look surprising at a glance — e.g.
// splitting 100 cells across [Min(20), Percent(50), Percent(50)] will not
// necessarily yield [20, 40, 40].
//
// Split panics if the underlying solve is infeasible, which happens only
// when Required-priority constraints conflict — something that cannot
// occur with the constraints this package itself generates, so a panic
// here indicates a bug in this package rather than bad caller input.
func (l Layout) Split(area Rect) Rects {
	segments, _ := l.SplitWithSpacers(area)

	return segments
}

// SplitWithSpacers is [Layout.Split], but also returns the gaps between
// segments: len(spacers) == len(segments)+1, with the first and last
// spacer representing any leading or trailing slack.
func (l Layout) SplitWithSpacers(area Rect) (segments, spacers Rects) {
	segments, spacers, err := l.splitCached(area)
	if err != nil {
		panic(fmt.Errorf("layout: split: %w", err))
	}

	return segments, spacers
}

func (l Layout) splitCached(area Rect) (segments, spacers Rects, err error) {
	key := l.cacheKey(area)

	if v, ok := lookupCache(key); ok {
		return v.Segments, v.Spacers, nil
	}

	segments, spacers, err = l.split(area)
	if err != nil {
		return nil, nil, err
	}

	storeCache(key, cacheValue{Segments: segments, Spacers: spacers})

	return segments, spacers, nil
}

func (l Layout) split(area Rect) (segments, spacers Rects, err error) {
	inner := l.Margin.apply(area)

	var areaStart, areaEnd float64

	switch l.Direction {
	case DirectionHorizontal:
		areaStart, areaEnd = float64(inner.X), float64(inner.Right())
	case DirectionVertical:
		areaStart, areaEnd = float64(inner.Y), float64(inner.Bottom())
	}

	segmentEls, spacerEls, values, err := compile(l, areaStart, areaEnd)
	if err != nil {
		return nil, nil, err
	}

	segments = elementsToRects(segmentEls, values, inner, l.Direction)
	spacers = elementsToRects(spacerEls, values, inner, l.Direction)

	return segments, spacers, nil
}

func (l Layout) cacheKey(area Rect) cacheKey {
	return cacheKey{
		Area:            area,
		Direction:       l.Direction,
		ConstraintsHash: hashConstraints(l.Constraints),
		Margin:          l.Margin,
		Spacing:         l.Spacing,
		Flex:            l.Flex,
	}
}

func elementsToRects(elements []element, values map[cassowary.Symbol]float64, area Rect, direction Direction) Rects {
	rects := make(Rects, 0, len(elements))

	// Solver values carry floating-point noise (an exact 12.5 can come back
	// as 12.499999999999995); snapping to a 1e-9 grid before rounding keeps
	// such halves rounding away from zero.
	round := func(v float64) int { return int(math.Round(math.Round(v*1e9) / 1e9)) }

	for _, e := range elements {
		start := round(values[e.start])
		end := round(values[e.end])
		size := max(0, end-start)

		switch direction {
		case DirectionHorizontal:
			rects = append(rects, NewRect(uint16OfClamped(start), area.Y, uint16OfClamped(size), area.Height))
		case DirectionVertical:
			rects = append(rects, NewRect(area.X, uint16OfClamped(start), area.Width, uint16OfClamped(size)))
		}
	}

	return rects
}

func uint16OfClamped(v int) uint16 {
	if v <= 0 {
		return 0
	}

	if v >= math.MaxUint16 {
		return math.MaxUint16
	}

	return uint16(v)
}
