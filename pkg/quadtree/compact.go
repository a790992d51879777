package quadtree

// Cleanup folds groups of five sibling empty leaves back into the free
// pool, bottom-up. Branches are pushed onto the work stack before their
// children's empty-leaf status is known, so a single call may not fold
// deeply nested vacancy in one pass; callers that want a minimal tree must
// call Cleanup repeatedly until it returns false, per §4.8.
func (t *tree[Id]) Cleanup() bool {
	if !isBranch(t.nodes[0]) {
		return false
	}

	changed := false
	stack := []uint32{0}

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[idx]
		if !isBranch(n) {
			continue
		}

		first := n.firstChildOrElement
		allEmptyLeaves := true
		for i := uint32(0); i < groupSize; i++ {
			child := t.nodes[first+i]
			if isBranch(child) {
				stack = append(stack, first+i)
				allEmptyLeaves = false
				continue
			}
			if child.elementCount != 0 {
				allEmptyLeaves = false
			}
		}

		if allEmptyLeaves {
			t.nodes[first].firstChildOrElement = t.firstFreeNodeGroup
			t.firstFreeNodeGroup = first
			t.nodes[idx] = emptyLeaf()
			changed = true
		}
	}

	return changed
}
