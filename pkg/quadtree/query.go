package quadtree

import (
	"github.com/fmstephe/spacegrid/pkg/freelist"
	"github.com/fmstephe/spacegrid/pkg/geom"
)

// IntersectAABB returns the set of ids whose rectangle intersects rect.
// The set is sized upfront using leaves_touched * max_num_elements as a
// capacity hint, per §4.9.
func (t *tree[Id]) IntersectAABB(rect geom.AABB) map[Id]struct{} {
	classify := func(cell geom.CenteredAABB) Quadrants { return ClassifyAABB(cell, rect) }

	result := make(map[Id]struct{}, t.leavesTouchedHint(classify))
	t.queryTraverse(classify, func(nodeIdx uint32, _ geom.AABB) {
		t.forEachElementInLeaf(nodeIdx, func(h freelist.Handle) {
			if elemRect := *t.elementRects.Get(h); geom.Intersects(elemRect, rect) {
				result[*t.elementIDs.Get(h)] = struct{}{}
			}
		})
	})
	return result
}

// IntersectAABBCallback invokes fn once per element-node reference whose
// rectangle intersects rect. Unlike IntersectAABB it keeps no result set;
// since every element is referenced from exactly one leaf, each matching
// element is reported once.
func (t *tree[Id]) IntersectAABBCallback(rect geom.AABB, fn func(Id)) {
	classify := func(cell geom.CenteredAABB) Quadrants { return ClassifyAABB(cell, rect) }
	t.queryTraverse(classify, func(nodeIdx uint32, _ geom.AABB) {
		t.forEachElementInLeaf(nodeIdx, func(h freelist.Handle) {
			if elemRect := *t.elementRects.Get(h); geom.Intersects(elemRect, rect) {
				fn(*t.elementIDs.Get(h))
			}
		})
	})
}

// IntersectShape is IntersectAABB's polymorphic-shape counterpart, used for
// rays, circles and polygons.
func (t *tree[Id]) IntersectShape(shape Shape) map[Id]struct{} {
	classify := func(cell geom.CenteredAABB) Quadrants { return ClassifyShape(cell, shape) }

	result := make(map[Id]struct{}, t.leavesTouchedHint(classify))
	t.queryTraverse(classify, func(nodeIdx uint32, _ geom.AABB) {
		t.forEachElementInLeaf(nodeIdx, func(h freelist.Handle) {
			if elemRect := *t.elementRects.Get(h); shape.Intersects(elemRect) {
				result[*t.elementIDs.Get(h)] = struct{}{}
			}
		})
	})
	return result
}

func (t *tree[Id]) IntersectShapeCallback(shape Shape, fn func(Id)) {
	classify := func(cell geom.CenteredAABB) Quadrants { return ClassifyShape(cell, shape) }
	t.queryTraverse(classify, func(nodeIdx uint32, _ geom.AABB) {
		t.forEachElementInLeaf(nodeIdx, func(h freelist.Handle) {
			if elemRect := *t.elementRects.Get(h); shape.Intersects(elemRect) {
				fn(*t.elementIDs.Get(h))
			}
		})
	})
}

// VisitLeaves runs query-mode traversal with the classifier forced to
// every slot, handing fn each leaf's cell and element count. Used for
// visualization and debugging.
func (t *tree[Id]) VisitLeaves(fn func(cell geom.AABB, elementCount int)) {
	classify := func(geom.CenteredAABB) Quadrants { return allQuadrants }
	t.queryTraverse(classify, func(nodeIdx uint32, cell geom.AABB) {
		fn(cell, int(t.nodes[nodeIdx].elementCount))
	})
}

// leavesTouchedHint runs a classify-only pass to count the leaves a query
// will reach, for sizing a result set before the real pass collects hits.
func (t *tree[Id]) leavesTouchedHint(classify classifyFunc) int {
	leaves := 0
	t.queryTraverse(classify, func(uint32, geom.AABB) { leaves++ })
	return leaves * t.config.MaxNumElements
}
