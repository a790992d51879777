package quadtree

import "github.com/fmstephe/spacegrid/pkg/freelist"

// allocNodeGroup returns the index of a fresh group of five empty leaves,
// reusing a group threaded onto firstFreeNodeGroup by Cleanup when one is
// available, else extending the node vector.
func (t *tree[Id]) allocNodeGroup() uint32 {
	if t.firstFreeNodeGroup != noFreeGroup {
		group := t.firstFreeNodeGroup
		t.firstFreeNodeGroup = t.nodes[group].firstChildOrElement
		for i := uint32(0); i < groupSize; i++ {
			t.nodes[group+i] = emptyLeaf()
		}
		return group
	}

	group := uint32(len(t.nodes))
	for i := 0; i < groupSize; i++ {
		t.nodes = append(t.nodes, emptyLeaf())
	}
	return group
}

// prependElementNode links a new element-node for elementHandle onto the
// front of the list rooted at node nodeIdx, so enumeration order within a
// leaf is newest-first.
func (t *tree[Id]) prependElementNode(nodeIdx uint32, elementHandle freelist.Handle) {
	n := &t.nodes[nodeIdx]
	newHandle := t.elementNodes.Insert(elementNode{
		element: elementHandle,
		next:    freelist.Handle(n.firstChildOrElement),
	})
	n.firstChildOrElement = uint32(newHandle)
	n.elementCount++
}

// forEachElementInLeaf walks nodeIdx's element-node list, invoking fn with
// each referenced element's handle.
func (t *tree[Id]) forEachElementInLeaf(nodeIdx uint32, fn func(freelist.Handle)) {
	n := t.nodes[nodeIdx]
	cur := freelist.Handle(n.firstChildOrElement)
	for !cur.IsNil() {
		en := *t.elementNodes.Get(cur)
		fn(en.element)
		cur = en.next
	}
}
