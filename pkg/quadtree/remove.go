package quadtree

import (
	"fmt"

	"github.com/fmstephe/spacegrid/pkg/freelist"
	"github.com/fmstephe/spacegrid/pkg/geom"
)

// Remove unlinks id from every leaf that references it and erases its
// element-id/element-rect entries. Returns false, changing nothing, if id
// is not currently live. Does not compact; call Cleanup separately.
func (t *tree[Id]) Remove(id Id) bool {
	elementHandle, exists := t.idToHandle[id]
	if !exists {
		return false
	}
	rect := *t.elementRects.Get(elementHandle)

	classify := func(cell geom.CenteredAABB) Quadrants { return ClassifyAABB(cell, rect) }

	total := 0
	t.queryTraverse(classify, func(nodeIdx uint32, _ geom.AABB) {
		total += t.removeFromLeaf(nodeIdx, elementHandle)
	})

	if debugAssertionsEnabled && total > 1 {
		panic(fmt.Sprintf("quadtree: element %v referenced from more than one leaf it touches", id))
	}
	if total == 0 {
		return false
	}

	t.elementIDs.Erase(elementHandle)
	t.elementRects.Erase(elementHandle)
	delete(t.idToHandle, id)
	return true
}

// removeFromLeaf scans nodeIdx's element-node list for target, unlinking
// and erasing every match. In release builds it stops after the first
// match, per §4.7; debug builds keep scanning so Remove can assert that a
// well-formed tree never references an element twice from one leaf.
func (t *tree[Id]) removeFromLeaf(nodeIdx uint32, target freelist.Handle) int {
	n := &t.nodes[nodeIdx]
	prev := freelist.NilHandle
	cur := freelist.Handle(n.firstChildOrElement)
	count := 0

	for !cur.IsNil() {
		en := *t.elementNodes.Get(cur)
		next := en.next

		if en.element != target {
			prev = cur
			cur = next
			continue
		}

		if prev.IsNil() {
			n.firstChildOrElement = uint32(next)
		} else {
			t.elementNodes.Get(prev).next = next
		}
		t.elementNodes.Erase(cur)
		n.elementCount--
		count++

		if !debugAssertionsEnabled {
			return count
		}
		cur = next
	}
	return count
}
