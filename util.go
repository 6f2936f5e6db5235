package layout

// SplitVertical divides area into a top and bottom rectangle using a
// single constraint applied to the total height, without invoking the
// solver. It is a cheap shortcut for the common two-way vertical split;
// use [Vertical] and [Layout.Split] when more than one constraint, a
// flex policy, or memoization is needed.
func SplitVertical(area Rect, constraint Constraint) (top, bottom Rect) {
	size := uint16OfClamped(constraint.Apply(int(area.Height)))

	top = NewRect(area.X, area.Y, area.Width, size)
	bottom = NewRect(area.X, satAddU16(area.Y, size), area.Width, satSubU16(area.Height, size))

	return top, bottom
}

// SplitHorizontal divides area into a left and right rectangle using a
// single constraint applied to the total width. See [SplitVertical] for
// the same tradeoff on the other axis.
func SplitHorizontal(area Rect, constraint Constraint) (left, right Rect) {
	size := uint16OfClamped(constraint.Apply(int(area.Width)))

	left = NewRect(area.X, area.Y, size, area.Height)
	right = NewRect(satAddU16(area.X, size), area.Y, satSubU16(area.Width, size), area.Height)

	return left, right
}
