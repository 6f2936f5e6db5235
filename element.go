package layout

import "github.com/tuilayout/split/internal/cassowary"

// element pairs two solver variables that bound an interval on the active
// axis: start and end, with size defined as end-start. Both segments and
// spacers are elements; an element's lifetime is scoped to a single solve.
type element struct {
	start, end cassowary.Symbol
}

func newElements(variables []cassowary.Symbol) []element {
	count := len(variables)

	elements := make([]element, 0, count/2+1)
	for i := 0; i < count-count%2; i += 2 {
		elements = append(elements, element{start: variables[i], end: variables[i+1]})
	}

	return elements
}

// empty constrains the element to zero size: end == start.
func (e element) empty() cassowary.Constraint {
	return cassowary.NewConstraint(cassowary.EQ, 0, e.end.T(1), e.start.T(-1))
}

// hasIntSize constrains size == size exactly.
func (e element) hasIntSize(size int) cassowary.Constraint {
	return cassowary.NewConstraint(cassowary.EQ, -float64(size), e.end.T(1), e.start.T(-1))
}

// hasMaxSize constrains size <= size.
func (e element) hasMaxSize(size int) cassowary.Constraint {
	return cassowary.NewConstraint(cassowary.LTE, -float64(size), e.end.T(1), e.start.T(-1))
}

// hasMinSize constrains size >= size.
func (e element) hasMinSize(size int) cassowary.Constraint {
	return cassowary.NewConstraint(cassowary.GTE, -float64(size), e.end.T(1), e.start.T(-1))
}

// hasSize constrains this element's size to equal other's size exactly.
func (e element) hasSize(other element) cassowary.Constraint {
	return cassowary.NewConstraint(cassowary.EQ, 0, e.end.T(1), e.start.T(-1), other.end.T(-1), other.start.T(1))
}

// hasScaledSize constrains this element's size to equal other's size
// scaled by f, used for Percent and Ratio segments measured against the
// whole area.
func (e element) hasScaledSize(other element, f float64) cassowary.Constraint {
	return cassowary.NewConstraint(cassowary.EQ, 0, e.end.T(1), e.start.T(-1), other.end.T(-f), other.start.T(f))
}

// hasDoubleSize constrains this element's size to equal twice other's
// size, used to make the first SpaceAround middle spacer twice the size of
// each outer spacer.
func (e element) hasDoubleSize(other element) cassowary.Constraint {
	return cassowary.NewConstraint(cassowary.EQ, 0, e.end.T(1), e.start.T(-1), other.end.T(-2), other.start.T(2))
}
