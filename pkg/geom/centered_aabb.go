package geom

// CenteredAABB is the center/half-extent representation of an AABB. It is
// the form subdivision naturally wants: a child cell's center is the
// parent's center shifted by a quarter of the parent's extent, and a
// leaf's splittability is a direct comparison against its half-extent.
type CenteredAABB struct {
	Center     Point
	HalfExtent Point
}

// ToCenteredAABB converts the edge representation of a to its centered
// form. Integer halving truncates toward zero on both axes; this only
// matters for odd-width/height cells, and the same truncation is applied
// consistently on every descent, so insertion and removal reach the same
// leaf for the same rectangle.
func (a AABB) ToCenteredAABB() CenteredAABB {
	width := a.Right() - a.Left()
	height := a.Bottom() - a.Top()
	return CenteredAABB{
		Center: Point{
			X: a.Left() + width/2,
			Y: a.Top() + height/2,
		},
		HalfExtent: Point{
			X: width / 2,
			Y: height / 2,
		},
	}
}

// ToAABB converts c back to its edge representation.
func (c CenteredAABB) ToAABB() AABB {
	return AABB{
		TopLeft:     Point{X: c.Center.X - c.HalfExtent.X, Y: c.Center.Y - c.HalfExtent.Y},
		BottomRight: Point{X: c.Center.X + c.HalfExtent.X, Y: c.Center.Y + c.HalfExtent.Y},
	}
}

// Quarters splits c into its four child cells, in {TL, TR, BL, BR} order.
// Each child's half-extent is half of c's (rounded toward zero). When c's
// half-extent is even the four children exactly cover c; when it is odd the
// children stop one unit short of c's outer edges on that axis.
func (c CenteredAABB) Quarters() [4]CenteredAABB {
	childHalf := Point{X: c.HalfExtent.X / 2, Y: c.HalfExtent.Y / 2}

	return [4]CenteredAABB{
		{Center: Point{X: c.Center.X - childHalf.X, Y: c.Center.Y - childHalf.Y}, HalfExtent: childHalf}, // TL
		{Center: Point{X: c.Center.X + childHalf.X, Y: c.Center.Y - childHalf.Y}, HalfExtent: childHalf}, // TR
		{Center: Point{X: c.Center.X - childHalf.X, Y: c.Center.Y + childHalf.Y}, HalfExtent: childHalf}, // BL
		{Center: Point{X: c.Center.X + childHalf.X, Y: c.Center.Y + childHalf.Y}, HalfExtent: childHalf}, // BR
	}
}
