package quadtree

import "github.com/fmstephe/spacegrid/pkg/geom"

// Quadrants is the 5-bit set of child slots {straddler, TL, TR, BL, BR} that
// a shape touches relative to a node's cell, grounded in
// quadrants.rs from the original source.
type Quadrants uint8

const (
	QuadStraddler Quadrants = 1 << iota
	QuadTopLeft
	QuadTopRight
	QuadBottomLeft
	QuadBottomRight
)

// Has reports whether q includes flag.
func (q Quadrants) Has(flag Quadrants) bool {
	return q&flag != 0
}

// allQuadrants forces every slot, used by leaf visitation to walk the whole
// tree regardless of any particular shape.
const allQuadrants = QuadStraddler | QuadTopLeft | QuadTopRight | QuadBottomLeft | QuadBottomRight

// offsetOf returns the single child offset q selects. The straddler flag
// always wins: an element flagged as a straddler must never also be placed
// in a geometric quadrant. Panics if q selects nothing, which would mean the
// classifier itself is broken (every rectangle fully inside the root must
// match at least one slot).
func offsetOf(q Quadrants) uint32 {
	if q.Has(QuadStraddler) {
		return offsetStraddler
	}
	switch {
	case q.Has(QuadTopLeft):
		return offsetTopLeft
	case q.Has(QuadTopRight):
		return offsetTopRight
	case q.Has(QuadBottomLeft):
		return offsetBottomLeft
	case q.Has(QuadBottomRight):
		return offsetBottomRight
	}
	panic("quadtree: classifier matched no slot for a rectangle contained in the cell")
}

// ClassifyAABB computes which slots of cell a rectangle touches, using
// half-plane tests against cell's center. Top and left use <=, so a
// rectangle lying exactly on a center line belongs to the upper/left half;
// this asymmetry must stay consistent across split, insert and removal or
// removal's descent can miss the leaf an element was placed in.
func ClassifyAABB(cell geom.CenteredAABB, rect geom.AABB) Quadrants {
	left := rect.Left() <= cell.Center.X
	top := rect.Top() <= cell.Center.Y
	right := rect.Right() > cell.Center.X
	bottom := rect.Bottom() > cell.Center.Y

	var q Quadrants
	if top && left {
		q |= QuadTopLeft
	}
	if top && right {
		q |= QuadTopRight
	}
	if bottom && left {
		q |= QuadBottomLeft
	}
	if bottom && right {
		q |= QuadBottomRight
	}
	if (left && right) || (top && bottom) {
		q |= QuadStraddler
	}
	return q
}

// Shape is implemented by callers who want to test a non-rectangular region
// - a ray, a circle, a polygon - against the tree.
type Shape interface {
	Intersects(box geom.AABB) bool
}

// ClassifyShape is ClassifyAABB's generic-shape counterpart: rather than
// comparing edges to the cell's center directly, it asks shape whether it
// intersects each of the four quadrant rectangles. Straddler is true,
// conservatively, whenever any two distinct quadrants both test true.
func ClassifyShape(cell geom.CenteredAABB, shape Shape) Quadrants {
	quarters := cell.Quarters()
	tl := shape.Intersects(quarters[0].ToAABB())
	tr := shape.Intersects(quarters[1].ToAABB())
	bl := shape.Intersects(quarters[2].ToAABB())
	br := shape.Intersects(quarters[3].ToAABB())

	var q Quadrants
	if tl {
		q |= QuadTopLeft
	}
	if tr {
		q |= QuadTopRight
	}
	if bl {
		q |= QuadBottomLeft
	}
	if br {
		q |= QuadBottomRight
	}

	pairs := (tl && tr) || (tl && bl) || (tl && br) || (tr && bl) || (tr && br) || (bl && br)
	if pairs {
		q |= QuadStraddler
	}
	return q
}
