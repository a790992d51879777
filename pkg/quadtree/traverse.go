package quadtree

import "github.com/fmstephe/spacegrid/pkg/geom"

// frame is one entry of the explicit LIFO work stack leaf-finding descends
// with, per §4.5 of the data model: the cell a node covers, its index, its
// depth, and whether the leaf found there may still be split.
type frame struct {
	cell     geom.CenteredAABB
	nodeIdx  uint32
	depth    int
	canSplit bool
}

func rootFrame(root geom.AABB) frame {
	return frame{cell: root.ToCenteredAABB(), nodeIdx: 0, depth: 0, canSplit: true}
}

// classifyFunc tests a cell's children against whatever shape a traversal
// is driven by - a query rectangle, a polymorphic Shape, or (for leaf
// visitation) nothing at all.
type classifyFunc func(cell geom.CenteredAABB) Quadrants

// queryTraverse is query-mode descent: it visits every leaf whose cell the
// shape touches. A branch's straddler child is always pushed, regardless of
// what classify reports, because the straddler bucket can hold elements
// reaching anywhere in the branch's cell; classify only gates the four
// geometric quadrants. visit is called once per leaf reached.
func (t *tree[Id]) queryTraverse(classify classifyFunc, visit func(nodeIdx uint32, cell geom.AABB)) {
	stack := []frame{rootFrame(t.root)}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[f.nodeIdx]
		if !isBranch(n) {
			visit(f.nodeIdx, f.cell.ToAABB())
			continue
		}

		first := n.firstChildOrElement
		stack = append(stack, frame{cell: f.cell, nodeIdx: first + offsetStraddler, depth: f.depth, canSplit: false})

		q := classify(f.cell)
		quarters := f.cell.Quarters()
		if q.Has(QuadTopLeft) {
			stack = append(stack, frame{cell: quarters[0], nodeIdx: first + offsetTopLeft, depth: f.depth + 1, canSplit: true})
		}
		if q.Has(QuadTopRight) {
			stack = append(stack, frame{cell: quarters[1], nodeIdx: first + offsetTopRight, depth: f.depth + 1, canSplit: true})
		}
		if q.Has(QuadBottomLeft) {
			stack = append(stack, frame{cell: quarters[2], nodeIdx: first + offsetBottomLeft, depth: f.depth + 1, canSplit: true})
		}
		if q.Has(QuadBottomRight) {
			stack = append(stack, frame{cell: quarters[3], nodeIdx: first + offsetBottomRight, depth: f.depth + 1, canSplit: true})
		}
	}
}

// mutateDescendOnce computes the single child frame mutate-mode descent
// takes from a branch at cell/n for rect: the straddler if rect crosses
// either center line, else the one geometric quadrant it falls entirely
// within.
func mutateDescendOnce(cell geom.CenteredAABB, first uint32, depth int, rect geom.AABB) frame {
	q := ClassifyAABB(cell, rect)
	offset := offsetOf(q)
	if offset == offsetStraddler {
		return frame{cell: cell, nodeIdx: first + offsetStraddler, depth: depth, canSplit: false}
	}
	quarters := cell.Quarters()
	return frame{cell: quarters[offset-1], nodeIdx: first + offset, depth: depth + 1, canSplit: true}
}
