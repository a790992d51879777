package geom

import "fmt"

// AABB is an axis-aligned bounding box, stored as its top-left and
// bottom-right corners. By convention Y grows downward: Top <= Bottom and
// Left <= Right.
type AABB struct {
	TopLeft     Point
	BottomRight Point
}

// NewAABB builds an AABB from its four edges. Panics if the edges are
// inverted, mirroring the View constructor's panic-on-malformed-input style
// in github.com/fmstephe/location-system's pkg/lowgc_quadtree/view.go.
func NewAABB(left, top, right, bottom int32) AABB {
	if right < left {
		panic(fmt.Sprintf("geom: cannot create AABB with inverted x coordinates: left=%d right=%d", left, right))
	}
	if bottom < top {
		panic(fmt.Sprintf("geom: cannot create AABB with inverted y coordinates: top=%d bottom=%d", top, bottom))
	}
	return AABB{
		TopLeft:     Point{X: left, Y: top},
		BottomRight: Point{X: right, Y: bottom},
	}
}

func (a AABB) Left() int32   { return a.TopLeft.X }
func (a AABB) Top() int32    { return a.TopLeft.Y }
func (a AABB) Right() int32  { return a.BottomRight.X }
func (a AABB) Bottom() int32 { return a.BottomRight.Y }

// Degenerate reports whether a has zero width, zero height, or both - i.e.
// is a line or a point rather than a proper rectangle.
func (a AABB) Degenerate() bool {
	return a.Left() == a.Right() || a.Top() == a.Bottom()
}

// ContainsPoint reports whether p lies within the closed rectangle a.
func (a AABB) ContainsPoint(p Point) bool {
	return p.X >= a.Left() && p.X <= a.Right() && p.Y >= a.Top() && p.Y <= a.Bottom()
}

// ContainsAABB reports whether b lies entirely within a.
func (a AABB) ContainsAABB(b AABB) bool {
	return b.Left() >= a.Left() && b.Right() <= a.Right() &&
		b.Top() >= a.Top() && b.Bottom() <= a.Bottom()
}

// Intersects reports whether a and b overlap.
//
// Two proper (non-degenerate) rectangles must overlap by a strictly
// positive area on both axes to count as intersecting - edges that merely
// touch do not. A degenerate rectangle (a line or a point, on either side)
// has no area to require, so touching edges are enough.
func Intersects(a, b AABB) bool {
	overlapLeft := max32(a.Left(), b.Left())
	overlapRight := min32(a.Right(), b.Right())
	overlapTop := max32(a.Top(), b.Top())
	overlapBottom := min32(a.Bottom(), b.Bottom())

	if a.Degenerate() || b.Degenerate() {
		return overlapLeft <= overlapRight && overlapTop <= overlapBottom
	}
	return overlapLeft < overlapRight && overlapTop < overlapBottom
}

// Union returns the tightest AABB enclosing both a and b.
func Union(a, b AABB) AABB {
	return AABB{
		TopLeft: Point{
			X: min32(a.Left(), b.Left()),
			Y: min32(a.Top(), b.Top()),
		},
		BottomRight: Point{
			X: max32(a.Right(), b.Right()),
			Y: max32(a.Bottom(), b.Bottom()),
		},
	}
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
