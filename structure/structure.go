// SPDX-License-Identifier: MIT

// Package structure - Structure: the bounds-checked addressing contract.
//
// Purpose:
//   - Pair an Extent with a Layout and expose the only two range-checked
//     operations: Offset(coord) and Index(offset).
//   - Act as the public surface grid wrappers build on (see package grid).
//
// Behavior highlights:
//   - Never panics on caller input; returns wrapped sentinels.
//   - Values are immutable and safe to share between goroutines.
//
// Complexity quicksheet:
//   - Offset: O(n); Index: O(n log n) worst for the stride sort (cached),
//     O(elements) only for non-nested affine layouts; Bounds: O(n).

package structure

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ---------- error context tags ----------

const (
	ctxOffset = "Structure.Offset"
	ctxIndex  = "Structure.Index"
	ctxNew    = "structure.New"
)

// Structure is an Extent plus the Layout that maps its coordinates to offsets.
// The zero value is not usable; build structures with Of or New.
type Structure struct {
	extent Extent
	layout Layout
}

// Of returns the canonical, densely packed row-major Structure for e.
func Of(e Extent) Structure {
	return Structure{extent: e, layout: DefaultLayout(e)}
}

// New pairs an extent with an explicit layout.
// Errors: ErrDimensionalityMismatch when ranks disagree or l is nil.
func New(e Extent, l Layout) (Structure, error) {
	if l == nil || e.Dimensionality() != l.Dimensionality() {
		return Structure{}, opErrorf(ctxNew, e, ErrDimensionalityMismatch)
	}

	return Structure{extent: e, layout: l}, nil
}

// Extent returns the addressed shape.
func (s Structure) Extent() Extent { return s.extent }

// Layout returns the offset mapping.
func (s Structure) Layout() Layout { return s.layout }

// Dimensionality returns the rank.
func (s Structure) Dimensionality() int { return s.extent.Dimensionality() }

// Range returns the range covering the whole extent.
func (s Structure) Range() Range { return RangeOf(s.extent) }

// Affine returns the layout in canonical form, if it is one.
func (s Structure) Affine() (Affine, bool) {
	a, ok := s.layout.(Affine)

	return a, ok
}

// Offset maps coord to a buffer offset.
//
// Errors:
//   - ErrDimensionalityMismatch when len(coord) differs from the rank.
//   - ErrIndexOutOfBounds when any component is outside [0, extent[i]).
//
// Complexity:
//   - Time O(n), Space O(1).
func (s Structure) Offset(coord ...int) (int, error) {
	if len(coord) != s.extent.Dimensionality() {
		return 0, opErrorf(ctxOffset, coord, ErrDimensionalityMismatch)
	}
	if !s.extent.Contains(coord...) {
		return 0, opErrorf(ctxOffset, coord, ErrIndexOutOfBounds)
	}

	return s.layout.Offset(coord...), nil
}

// Index maps a buffer offset back to the coordinate that addresses it.
//
// Implementation:
//   - Stage 1: invert with extent knowledge (singleton dimensions pinned).
//   - Stage 2: verify the candidate lies in the extent and maps back exactly.
//   - Stage 3: when the layout's strides are not nested (including the inner
//     layout of an Indexed), greedy division can miss a valid coordinate;
//     fall back to scanning the range.
//
// Errors:
//   - ErrIndexOutOfBounds when no coordinate of this Structure maps to offset.
func (s Structure) Index(offset int) (Index, error) {
	if s.extent.IsEmpty() {
		return Index{}, opErrorf(ctxIndex, offset, ErrIndexOutOfBounds)
	}
	c := s.layout.invert(offset, s.extent.sizes)
	if s.extent.Contains(c...) && s.layout.Offset(c...) == offset {
		return Index{c: c}, nil
	}
	if !s.layout.exact(s.extent) {
		if x, found := s.scan(offset); found {
			return x, nil
		}
	}

	return Index{}, opErrorf(ctxIndex, offset, ErrIndexOutOfBounds)
}

// scan is the exhaustive fallback used by Index.
func (s Structure) scan(offset int) (Index, bool) {
	lo, hi := s.layout.span(s.extent)
	if offset < lo || offset > hi {
		return Index{}, false
	}
	it, _ := NewIterator(s.Range(), LastFastest(s.Dimensionality()), Forward)
	c := make([]int, s.Dimensionality())
	for it.NextInto(c) {
		if s.layout.Offset(c...) == offset {
			return Index{c: c}, true
		}
	}

	return Index{}, false
}

// Bounds returns the smallest and largest offset this Structure addresses.
// ok is false for an empty extent. A buffer backing the Structure must cover
// [lo, hi+Bands()-1].
func (s Structure) Bounds() (lo, hi int, ok bool) {
	if s.extent.IsEmpty() {
		return 0, 0, false
	}
	lo, hi = s.layout.span(s.extent)

	return lo, hi, true
}

// Equal reports structural equality of extent and layout.
func (s Structure) Equal(o Structure) bool {
	if s.layout == nil || o.layout == nil {
		return s.layout == nil && o.layout == nil && s.extent.Equal(o.extent)
	}

	return s.extent.Equal(o.extent) && s.layout.Equal(o.layout)
}

// Hash returns a structural xxhash; Equal structures hash equal.
func (s Structure) Hash() uint64 {
	d := xxhash.New()
	s.extent.writeHash(d)
	if s.layout != nil {
		s.layout.writeHash(d)
	}

	return d.Sum64()
}

// String renders "Structure{3x4 Affine{...}}".
func (s Structure) String() string {
	return fmt.Sprintf("Structure{%s %v}", s.extent, s.layout)
}
