package intervaltree

import "cmp"

type iterState int

const (
	stateInitial iterState = iota
	stateEmittingLeft
	stateEmitSelf
	stateEmittingRight
	stateDone
)

// InorderIterator produces entries in ascending interval.Start order. It is
// an explicit state machine - initial / emitting-left / emit-self /
// emitting-right / done - rather than a recursive generator, so it
// satisfies a standard pull-based iterator protocol: each Next() call
// returns one entry and the iterator can be paused indefinitely between
// calls. Descent into a subtree boxes a sub-iterator and Next delegates to
// it, so one call does work proportional to the tree's height.
type InorderIterator[K cmp.Ordered, V any] struct {
	node      *node[K, V]
	state     iterState
	sub       *InorderIterator[K, V]
	remaining int
}

// IterInorder returns an iterator over all entries of t, in ascending
// interval.Start order.
func (t *Tree[K, V]) IterInorder() *InorderIterator[K, V] {
	return newInorderIterator(t.root)
}

func newInorderIterator[K cmp.Ordered, V any](n *node[K, V]) *InorderIterator[K, V] {
	return &InorderIterator[K, V]{
		node:      n,
		state:     stateInitial,
		remaining: subtreeSize(n),
	}
}

// Next returns the next entry in order, or false once exhausted. Total on
// an iterator built from an empty tree: it returns false immediately.
func (it *InorderIterator[K, V]) Next() (Entry[K, V], bool) {
	for {
		switch it.state {
		case stateInitial:
			if it.node == nil {
				it.state = stateDone
				continue
			}
			if it.node.left != nil {
				it.sub = newInorderIterator(it.node.left)
				it.state = stateEmittingLeft
				continue
			}
			it.state = stateEmitSelf
			continue

		case stateEmittingLeft:
			if e, ok := it.sub.Next(); ok {
				it.remaining--
				return e, true
			}
			it.sub = nil
			it.state = stateEmitSelf
			continue

		case stateEmitSelf:
			it.state = stateEmittingRight
			it.remaining--
			return it.node.entry, true

		case stateEmittingRight:
			if it.sub == nil {
				if it.node.right == nil {
					it.state = stateDone
					continue
				}
				it.sub = newInorderIterator(it.node.right)
			}
			if e, ok := it.sub.Next(); ok {
				it.remaining--
				return e, true
			}
			it.sub = nil
			it.state = stateDone
			continue

		default: // stateDone
			var zero Entry[K, V]
			return zero, false
		}
	}
}

// SizeHint returns the exact number of entries this iterator has left to
// yield, as (lower, upper) with upper non-nil - the tree's size is always
// known exactly, unlike a lazily-generated sequence.
func (it *InorderIterator[K, V]) SizeHint() (int, *int) {
	upper := it.remaining
	return it.remaining, &upper
}

// Last consumes nothing from it; it descends directly to the rightmost
// node of the subtree it was built over, in O(height).
func (it *InorderIterator[K, V]) Last() (Entry[K, V], bool) {
	n := it.node
	if n == nil {
		var zero Entry[K, V]
		return zero, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.entry, true
}
