// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"
	"iter"
)

// Range is an axis-aligned box of coordinate space: [start, start+extent).
type Range struct {
	start  Index
	extent Extent
}

// NewRange pairs a start coordinate with an extent.
// Errors: ErrDimensionalityMismatch.
func NewRange(start Index, e Extent) (Range, error) {
	if start.Dimensionality() != e.Dimensionality() {
		return Range{}, opErrorf("NewRange", start, ErrDimensionalityMismatch)
	}

	return Range{start: start, extent: e}, nil
}

// RangeOf returns the range covering e from the origin.
func RangeOf(e Extent) Range {
	return Range{start: ZeroIndex(e.Dimensionality()), extent: e}
}

// Start returns the inclusive lower corner.
func (r Range) Start() Index { return r.start }

// Extent returns the size of the box.
func (r Range) Extent() Extent { return r.extent }

// Dimensionality returns the rank.
func (r Range) Dimensionality() int { return r.extent.Dimensionality() }

// End returns the exclusive upper corner, start[i]+extent[i].
func (r Range) End() Index {
	c := make([]int, len(r.start.c))
	for i := range c {
		c[i] = r.start.c[i] + r.extent.sizes[i]
	}

	return Index{c: c}
}

// IsEmpty reports whether the range contains no coordinate.
func (r Range) IsEmpty() bool { return r.extent.IsEmpty() }

// Contains reports whether coord lies inside the range.
func (r Range) Contains(coord Index) bool {
	if coord.Dimensionality() != r.Dimensionality() {
		return false
	}
	for i, c := range coord.c {
		if c < r.start.c[i] || c >= r.start.c[i]+r.extent.sizes[i] {
			return false
		}
	}

	return true
}

// Within reports whether the whole range fits inside [0, e). Ranks must match.
func (r Range) Within(e Extent) bool {
	if e.Dimensionality() != r.Dimensionality() {
		return false
	}
	for i, s := range r.start.c {
		if s < 0 || s+r.extent.sizes[i] > e.sizes[i] {
			return false
		}
	}

	return true
}

// Equal reports structural equality.
func (r Range) Equal(o Range) bool {
	return r.start.Equal(o.start) && r.extent.Equal(o.extent)
}

// String renders "[(1,1) +2x2)".
func (r Range) String() string {
	return fmt.Sprintf("[%s +%s)", r.start, r.extent)
}

// All yields every coordinate of the range once, in the order selected by
// p and dir. The yielded values are independent snapshots.
// It yields nothing if p does not match the range rank.
func (r Range) All(p Precedence, dir Direction) iter.Seq[Index] {
	return func(yield func(Index) bool) {
		it, err := NewIterator(r, p, dir)
		if err != nil {
			return
		}
		for x, ok := it.Next(); ok; x, ok = it.Next() {
			if !yield(x) {
				return
			}
		}
	}
}

// Forward yields coordinates in last-dimension-fastest (C) order.
func (r Range) Forward() iter.Seq[Index] {
	return r.All(LastFastest(r.Dimensionality()), Forward)
}

// Backward yields the exact reverse of Forward.
func (r Range) Backward() iter.Seq[Index] {
	return r.All(LastFastest(r.Dimensionality()), Backward)
}
