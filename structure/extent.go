// SPDX-License-Identifier: MIT

// Package structure - Extent: the shape of a coordinate space.
//
// Purpose:
//   - Describe per-dimension sizes plus a band (channel) multiplier.
//   - Guarantee at construction that Elements()*Bands() fits into int32.
//
// Complexity quicksheet:
//   - NewExtent: O(n); Elements/Cells: O(1) (precomputed); Hash: O(n).

package structure

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Extent is an immutable shape descriptor. The zero value is not usable;
// build extents with NewExtent or NewBandedExtent.
type Extent struct {
	sizes    []int // per-dimension sizes (>= 0), never aliased outside
	bands    int   // channels per coordinate (>= 1)
	elements int   // product(sizes), cached
}

// NewExtent creates a single-band Extent.
// Errors: ErrInvalidShape (see NewBandedExtent).
func NewExtent(sizes ...int) (Extent, error) {
	return NewBandedExtent(1, sizes...)
}

// NewBandedExtent creates an Extent with the given band count.
//
// Implementation:
//   - Stage 1: reject rank 0, bands < 1 and negative sizes.
//   - Stage 2: fold the overflow-checked product of sizes, then multiply by bands.
//
// Errors:
//   - ErrInvalidShape, wrapped with the offending arguments.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewBandedExtent(bands int, sizes ...int) (Extent, error) {
	if len(sizes) == 0 || bands < 1 {
		return Extent{}, opErrorf("NewBandedExtent", sizes, ErrInvalidShape)
	}
	for _, s := range sizes {
		if s < 0 {
			return Extent{}, opErrorf("NewBandedExtent", sizes, ErrInvalidShape)
		}
	}
	elements, ok := checkedProduct(sizes...)
	if !ok {
		return Extent{}, opErrorf("NewBandedExtent", sizes, ErrInvalidShape)
	}
	if _, ok = checkedMul(elements, bands); !ok {
		return Extent{}, opErrorf("NewBandedExtent", sizes, ErrInvalidShape)
	}

	return Extent{sizes: cloneInts(sizes), bands: bands, elements: elements}, nil
}

// mustExtent is for internal derivations whose inputs are already validated
// (sub-ranges, downsampling, projections can only shrink a valid extent).
func mustExtent(bands int, sizes []int) Extent {
	e, err := NewBandedExtent(bands, sizes...)
	if err != nil {
		panic(err)
	}

	return e
}

// Dimensionality returns the rank.
func (e Extent) Dimensionality() int { return len(e.sizes) }

// Size returns the size of dimension i. It panics if i is out of range, as
// slice indexing does.
func (e Extent) Size(i int) int { return e.sizes[i] }

// Sizes returns a copy of the per-dimension sizes.
func (e Extent) Sizes() []int { return cloneInts(e.sizes) }

// Bands returns the band (channel) count.
func (e Extent) Bands() int { return e.bands }

// Elements returns the number of coordinates, product(sizes).
func (e Extent) Elements() int { return e.elements }

// Cells returns Elements()*Bands(); never overflows by construction.
func (e Extent) Cells() int { return e.elements * e.bands }

// IsEmpty reports whether any dimension has size zero.
func (e Extent) IsEmpty() bool { return e.elements == 0 }

// Contains reports whether coord lies inside [0, size[i]) in every dimension.
// A coordinate of the wrong rank is never contained.
func (e Extent) Contains(coord ...int) bool {
	if len(coord) != len(e.sizes) {
		return false
	}
	for i, c := range coord {
		if c < 0 || c >= e.sizes[i] {
			return false
		}
	}

	return true
}

// Equal reports structural equality (sizes and bands).
func (e Extent) Equal(o Extent) bool {
	return e.bands == o.bands && equalInts(e.sizes, o.sizes)
}

// Hash returns a structural xxhash of the extent; Equal extents hash equal.
func (e Extent) Hash() uint64 {
	d := xxhash.New()
	e.writeHash(d)

	return d.Sum64()
}

func (e Extent) writeHash(d *xxhash.Digest) {
	hashInts(d, tagExtent, e.bands)
	hashInts(d, tagExtent, e.sizes...)
}

// String renders "3x4" or "3x4[b=2]" for banded extents.
func (e Extent) String() string {
	var b strings.Builder
	for i, s := range e.sizes {
		if i > 0 {
			b.WriteByte('x')
		}
		fmt.Fprintf(&b, "%d", s)
	}
	if e.bands != 1 {
		fmt.Fprintf(&b, "[b=%d]", e.bands)
	}

	return b.String()
}
