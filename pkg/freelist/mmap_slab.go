package freelist

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// mmapCells allocates an anonymous, zero-filled mapping large enough to hold
// n cells and reinterprets it as a slice. Growing a List's backing storage
// this way - one contiguous mapping per doubling, rather than one heap
// allocation per cell - keeps query-only workloads allocation free and
// avoids scattering cache-unfriendly per-node allocations across the heap.
func mmapCells[T any](n int) []cell[T] {
	var c cell[T]
	cellSize := uint64(unsafe.Sizeof(c))
	length := int(cellSize) * n

	data, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		panic(fmt.Errorf("freelist: cannot mmap %d bytes for %T: %w", length, c.value, err))
	}

	return unsafe.Slice((*cell[T])(unsafe.Pointer(&data[0])), n)
}

// munmapCells releases a mapping previously returned by mmapCells. Errors
// are ignored: by the time we grow past a slab we have already copied its
// live contents into the new mapping, so a failed unmap merely leaks the old
// pages rather than corrupting anything reachable from the List.
func munmapCells[T any](cells []cell[T]) {
	if len(cells) == 0 {
		return
	}
	var c cell[T]
	cellSize := uint64(unsafe.Sizeof(c))
	length := int(cellSize) * len(cells)
	data := unsafe.Slice((*byte)(unsafe.Pointer(&cells[0])), length)
	_ = unix.Munmap(data)
}
