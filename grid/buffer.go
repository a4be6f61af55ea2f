// SPDX-License-Identifier: MIT

package grid

// Buffer is flat, single-element-type storage addressed by offset. The
// structure package never allocates one; grids pair a Buffer with a
// structure.Structure that produces offsets into it.
//
// Get and Set may panic on offsets outside [0, Len()); Grid only issues
// offsets validated against the Structure's Bounds.
type Buffer[T any] interface {
	// Get returns the element at off.
	Get(off int) T
	// Set stores v at off.
	Set(off int, v T)
	// Len returns the number of elements.
	Len() int
	// Like returns a new zeroed buffer of the same kind with length n.
	Like(n int) Buffer[T]
	// Copy returns a deep, independent duplicate.
	Copy() Buffer[T]
}

// SliceBuffer is a Buffer backed by a Go slice.
type SliceBuffer[T any] []T

// Compile-time conformance.
var _ Buffer[float64] = SliceBuffer[float64](nil)

// NewSliceBuffer allocates a zeroed buffer of length n.
func NewSliceBuffer[T any](n int) SliceBuffer[T] { return make(SliceBuffer[T], n) }

// Get returns b[off].
func (b SliceBuffer[T]) Get(off int) T { return b[off] }

// Set stores b[off] = v.
func (b SliceBuffer[T]) Set(off int, v T) { b[off] = v }

// Len returns len(b).
func (b SliceBuffer[T]) Len() int { return len(b) }

// Like allocates a zeroed SliceBuffer of length n.
func (b SliceBuffer[T]) Like(n int) Buffer[T] { return NewSliceBuffer[T](n) }

// Copy duplicates the backing slice.
func (b SliceBuffer[T]) Copy() Buffer[T] {
	cp := make(SliceBuffer[T], len(b))
	copy(cp, b)

	return cp
}
