// SPDX-License-Identifier: MIT

// Package structure - odometer iteration over a Range.
//
// Algorithm (per Next):
//   - Stage 1: snapshot the cursor as the value to return.
//   - Stage 2: walk dimensions from lowest to highest precedence; step the
//     current component (+1 forward, -1 backward).
//   - Stage 3: if it left [start, end), carry: reset it (start forward,
//     end-1 backward) and continue with the next dimension; otherwise stop.
//   - Stage 4: a carry out of the highest-precedence dimension ends iteration.
//
// Determinism:
//   - Forward and Backward over the same Range and Precedence visit the same
//     coordinates in exactly reverse sequence.
//
// Concurrency:
//   - An Iterator owns mutable cursor state and must not be shared between
//     goroutines. Ranges and Precedences are immutable and may be shared.

package structure

// Direction selects the odometer variant.
type Direction uint8

const (
	// Forward starts at the range start and increments.
	Forward Direction = iota
	// Backward starts at end-1 and decrements.
	Backward
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}

	return "forward"
}

// Iterator is an odometer cursor over a Range.
type Iterator struct {
	lo, hi []int // inclusive start, exclusive end
	minor  []int // dimensions from lowest to highest precedence
	cursor []int
	dir    Direction
	step   func(*Iterator) // transition for dir, bound at construction
	done   bool
}

// NewIterator builds an odometer over r in the order given by p and dir.
//
// Errors:
//   - ErrDimensionalityMismatch when p and r disagree in rank, or for a
//     rank-0 (zero-value) range.
//   - ErrInvalidPrecedence for an unknown Direction.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewIterator(r Range, p Precedence, dir Direction) (*Iterator, error) {
	if r.Dimensionality() == 0 || p.Dimensionality() != r.Dimensionality() {
		return nil, opErrorf("NewIterator", p, ErrDimensionalityMismatch)
	}
	it := &Iterator{
		lo:     r.start.Components(),
		hi:     r.End().c,
		minor:  p.Minor(),
		cursor: make([]int, r.Dimensionality()),
		dir:    dir,
	}
	switch dir {
	case Forward:
		it.step = stepForward
	case Backward:
		it.step = stepBackward
	default:
		return nil, opErrorf("NewIterator", dir, ErrInvalidPrecedence)
	}
	it.Reset()

	return it, nil
}

// Reset rewinds the cursor to its initial position.
func (it *Iterator) Reset() {
	it.done = false
	for d := range it.cursor {
		if it.lo[d] >= it.hi[d] {
			it.done = true // empty range
		}
		if it.dir == Forward {
			it.cursor[d] = it.lo[d]
		} else {
			it.cursor[d] = it.hi[d] - 1
		}
	}
}

// HasNext reports whether Next will yield another coordinate.
func (it *Iterator) HasNext() bool { return !it.done }

// Next returns the current coordinate and advances. ok is false once the
// range is exhausted.
func (it *Iterator) Next() (Index, bool) {
	if it.done {
		return Index{}, false
	}
	snap := Index{c: cloneInts(it.cursor)}
	it.step(it)

	return snap, true
}

// NextInto copies the current coordinate into dst and advances, without
// allocating. dst must have the range rank. It returns false when exhausted.
func (it *Iterator) NextInto(dst []int) bool {
	if it.done {
		return false
	}
	copy(dst, it.cursor)
	it.step(it)

	return true
}

func stepForward(it *Iterator) {
	for _, d := range it.minor {
		it.cursor[d]++
		if it.cursor[d] < it.hi[d] {
			return
		}
		it.cursor[d] = it.lo[d] // carry
	}
	it.done = true
}

func stepBackward(it *Iterator) {
	for _, d := range it.minor {
		it.cursor[d]--
		if it.cursor[d] >= it.lo[d] {
			return
		}
		it.cursor[d] = it.hi[d] - 1 // borrow
	}
	it.done = true
}
