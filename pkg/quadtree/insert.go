package quadtree

import (
	"fmt"

	"github.com/fmstephe/spacegrid/pkg/freelist"
	"github.com/fmstephe/spacegrid/pkg/geom"
)

// Insert adds id/rect to the tree. Returns ErrOutOfBounds, without mutating
// any state, if rect escapes the root rectangle. Inserting an id that is
// already live is a programmer error, asserted in debug builds only - §7
// leaves it undefined in release builds.
func (t *tree[Id]) Insert(id Id, rect geom.AABB) error {
	if !t.root.ContainsAABB(rect) {
		return ErrOutOfBounds
	}

	if debugAssertionsEnabled {
		if _, exists := t.idToHandle[id]; exists {
			panic(fmt.Sprintf("quadtree: id %v inserted while already live", id))
		}
	}

	elementHandle := t.elementIDs.Insert(id)
	if rectHandle := t.elementRects.Insert(rect); rectHandle != elementHandle {
		panic("quadtree: element-id and element-rect free-lists fell out of lockstep")
	}
	t.idToHandle[id] = elementHandle

	f := rootFrame(t.root)
	for {
		n := t.nodes[f.nodeIdx]
		if isBranch(n) {
			f = mutateDescendOnce(f.cell, n.firstChildOrElement, f.depth, rect)
			continue
		}

		mustStayLeaf := !f.canSplit ||
			f.depth >= t.config.MaxDepth ||
			f.cell.HalfExtent.X <= t.config.SmallestCellSize ||
			f.cell.HalfExtent.Y <= t.config.SmallestCellSize

		if int(n.elementCount) < t.config.MaxNumElements || mustStayLeaf {
			t.prependElementNode(f.nodeIdx, elementHandle)
			return nil
		}

		t.split(f.nodeIdx, f.cell)
		// Re-examine the same frame: nodeIdx is now a branch.
	}
}

// split turns the leaf at nodeIdx into a branch, redistributing its
// existing element-nodes into the new five-way group. canSplit/depth of the
// frame that triggered the split are not needed here: they describe
// descent, not the leaf's own stored state.
func (t *tree[Id]) split(nodeIdx uint32, cell geom.CenteredAABB) {
	first := t.allocNodeGroup()

	head := freelist.Handle(t.nodes[nodeIdx].firstChildOrElement)
	for cur := head; !cur.IsNil(); {
		en := *t.elementNodes.Get(cur)
		next := en.next

		rect := *t.elementRects.Get(en.element)
		offset := offsetOf(ClassifyAABB(cell, rect))
		t.prependElementNode(first+offset, en.element)

		t.elementNodes.Erase(cur)
		cur = next
	}

	n := &t.nodes[nodeIdx]
	n.firstChildOrElement = first
	n.elementCount = branchElementCount
}
