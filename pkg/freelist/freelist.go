// Package freelist implements an indexed slab with stable integer handles.
//
// A List[T] hands out Handle values on Insert and never reuses a live
// handle for two different values at once. Erased handles are threaded onto
// an internal free chain and handed back out, LIFO, on the next Insert. This
// lets data structures built on top of a List - trees, linked lists - store
// 32-bit handles instead of pointers, which keeps the structure free of
// garbage-collector pressure and halves the footprint of a pointer-based
// design on a 64 bit machine.
package freelist

import (
	"fmt"

	"github.com/fmstephe/flib/fmath"
)

// nilHandle terminates the free chain and is never a valid handle.
const nilHandle = ^uint32(0)

// A Handle is a small integer identifying a value stored in a List. Handles
// remain stable across unrelated Insert/Erase calls; an erased handle must
// never be passed to Get or Erase again.
type Handle uint32

// NilHandle is the reserved sentinel handle. It is distinct from every
// handle Insert can return, so it is safe to use as a zero-initialised "no
// value" marker - unlike the Handle zero value, which Insert can and will
// hand out.
const NilHandle = Handle(nilHandle)

// IsNil reports whether h is the reserved sentinel handle.
func (h Handle) IsNil() bool {
	return h == NilHandle
}

type cell[T any] struct {
	// nextFree chains this cell onto the free list when it is not live.
	// Meaningless when live is true.
	nextFree Handle
	live     bool
	value    T
}

const initialSlabLen = 64

// List is an indexed free-list: a slab of cells addressed by Handle, with
// O(1) Insert and Erase and handle stability across unrelated mutations.
type List[T any] struct {
	cells []cell[T]
	// count is the number of cells ever appended to cells (the
	// high-water mark), independent of how many are currently free.
	count     int
	firstFree Handle
}

// New returns an empty List.
func New[T any]() *List[T] {
	return &List[T]{
		cells:     mmapCells[T](initialSlabLen),
		count:     0,
		firstFree: Handle(nilHandle),
	}
}

// Insert stores value and returns a handle that can retrieve it via Get. If
// an erased handle is available it is reused (LIFO); otherwise the slab is
// extended, doubling in size if it is full.
func (l *List[T]) Insert(value T) Handle {
	if !l.firstFree.IsNil() {
		h := l.firstFree
		c := &l.cells[h]
		l.firstFree = c.nextFree
		c.live = true
		c.value = value
		return h
	}

	if l.count == len(l.cells) {
		l.grow()
	}
	h := Handle(l.count)
	l.count++
	c := &l.cells[h]
	c.live = true
	c.value = value
	return h
}

// Get returns a pointer to the value stored at h. The pointer may be used to
// mutate the stored value in place. h must be live - it must have been
// returned by Insert and not yet passed to Erase.
func (l *List[T]) Get(h Handle) *T {
	c := l.cellAt(h)
	if debugAssertionsEnabled && !c.live {
		panic(fmt.Errorf("freelist: Get on erased handle %d", h))
	}
	return &c.value
}

// Erase releases the slot at h back to the free pool. h must be live.
// Dereferencing h via Get after Erase is undefined; debug builds detect a
// double Erase and panic.
func (l *List[T]) Erase(h Handle) {
	c := l.cellAt(h)
	if debugAssertionsEnabled && !c.live {
		panic(fmt.Errorf("freelist: double Erase of handle %d", h))
	}
	var zero T
	c.value = zero
	c.live = false
	c.nextFree = l.firstFree
	l.firstFree = h
}

// Clear drops all live values and empties the list. Free chain links are
// dropped without being traversed.
func (l *List[T]) Clear() {
	clear(l.cells)
	l.count = 0
	l.firstFree = Handle(nilHandle)
}

func (l *List[T]) cellAt(h Handle) *cell[T] {
	if h.IsNil() || int(h) >= l.count {
		panic(fmt.Errorf("freelist: handle %d out of range", h))
	}
	return &l.cells[h]
}

func (l *List[T]) grow() {
	newLen := int(fmath.NxtPowerOfTwo(int64(len(l.cells)) + 1))
	newCells := mmapCells[T](newLen)
	copy(newCells, l.cells)
	munmapCells(l.cells)
	l.cells = newCells
}
