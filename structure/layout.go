// SPDX-License-Identifier: MIT

// Package structure - Layout: the affine coordinate <-> offset mapping.
//
// Purpose:
//   - Map an N-d coordinate to a flat buffer offset and back.
//   - Provide unboxed fixed-rank (1/2/3) fast paths with the verbatim formula
//     base + Σ(start[i] + coord[i]*stride[i]); the rank-N path uses the identical
//     stride-based formula.
//
// Variants (closed set, see the unexported methods on Layout):
//   - Affine  : canonical start+stride form; every view/projection supports it.
//   - Indexed : gather along dimension 0 over an Affine; transforms reject it.
//
// Layout methods are UNCHECKED: they never validate coordinates against an
// extent. Structure is the bounds-checked surface.

package structure

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Layout is the affine coordinate <-> offset mapping used by a Structure.
// The interface is sealed; Affine and Indexed are its only implementations.
type Layout interface {
	// Dimensionality returns the rank the layout maps.
	Dimensionality() int
	// Offset maps a coordinate to a buffer offset without bounds checks.
	Offset(coord ...int) int
	// Index inverts Offset without bounds checks. The result is meaningful only
	// for offsets the layout actually produces.
	Index(offset int) Index
	// Equal reports structural equality.
	Equal(o Layout) bool
	fmt.Stringer

	// invert is Index with knowledge of the addressed extent sizes.
	invert(offset int, sizes []int) []int
	// span returns the smallest and largest offset over a non-empty extent.
	span(e Extent) (lo, hi int)
	// exact reports whether invert finds every addressed coordinate of e.
	exact(e Extent) bool
	writeHash(d *xxhash.Digest)
}

// Compile-time conformance.
var (
	_ Layout = Affine{}
	_ Layout = Indexed{}
)

// Affine is the canonical start+stride layout:
//
//	offset = base + Σ(start[i] + coord[i]*stride[i])
//
// start is expressed in buffer-offset units per dimension; base carries the
// band offset and any folded projections.
type Affine struct {
	start  []int // per-dimension offset contribution
	stride []int // per-dimension step (>= 1)
	base   int   // constant term (band + projected coordinates)
	order  []int // dimensions by descending stride, ties by ascending dim
}

// NewAffine builds an Affine layout.
// Errors: ErrDimensionalityMismatch when start and stride disagree in rank.
func NewAffine(start Index, stride Stride, base int) (Affine, error) {
	if start.Dimensionality() != stride.Dimensionality() {
		return Affine{}, opErrorf("NewAffine", []any{start, stride}, ErrDimensionalityMismatch)
	}

	return newAffine(start.Components(), stride.Components(), base), nil
}

// newAffine takes ownership of start and stride.
func newAffine(start, stride []int, base int) Affine {
	order := make([]int, len(stride))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return stride[order[a]] > stride[order[b]] })

	return Affine{start: start, stride: stride, base: base, order: order}
}

// DefaultLayout returns the canonical densely packed, row-major
// (last-dimension-fastest) layout for e. Bands are innermost: the stride of the
// last dimension equals e.Bands(). Zero-sized dimensions are packed as if they
// had size 1 so every stride stays >= 1; such an extent addresses nothing.
func DefaultLayout(e Extent) Affine {
	n := e.Dimensionality()
	stride := make([]int, n)
	step := e.Bands()
	for i := n - 1; i >= 0; i-- {
		stride[i] = step
		next, ok := checkedMul(step, max(e.sizes[i], 1))
		if !ok {
			next = maxCells // only reachable for empty extents
		}
		step = next
	}

	return newAffine(make([]int, n), stride, 0)
}

// Dimensionality returns the rank.
func (a Affine) Dimensionality() int { return len(a.stride) }

// Start returns the per-dimension start contributions.
func (a Affine) Start() Index { return NewIndex(a.start...) }

// Stride returns the per-dimension step.
func (a Affine) Stride() Stride { return Stride{s: cloneInts(a.stride)} }

// Base returns the constant term.
func (a Affine) Base() int { return a.base }

// Offset1 is the rank-1 fast path.
func (a Affine) Offset1(i int) int {
	return a.base + a.start[0] + i*a.stride[0]
}

// Offset2 is the rank-2 fast path.
func (a Affine) Offset2(i, j int) int {
	return a.base + a.start[0] + i*a.stride[0] + a.start[1] + j*a.stride[1]
}

// Offset3 is the rank-3 fast path.
func (a Affine) Offset3(i, j, k int) int {
	return a.base + a.start[0] + i*a.stride[0] + a.start[1] + j*a.stride[1] + a.start[2] + k*a.stride[2]
}

// Offset dispatches to the fixed-rank fast paths for ranks 1..3 and uses the
// same stride-based formula for higher ranks.
// It panics (index out of range) if len(coord) != Dimensionality().
func (a Affine) Offset(coord ...int) int {
	switch len(coord) {
	case 1:
		return a.Offset1(coord[0])
	case 2:
		return a.Offset2(coord[0], coord[1])
	case 3:
		return a.Offset3(coord[0], coord[1], coord[2])
	}
	off := a.base
	for i, c := range coord {
		off += a.start[i] + c*a.stride[i]
	}

	return off
}

// origin is the offset of the all-zero coordinate.
func (a Affine) origin() int {
	off := a.base
	for _, s := range a.start {
		off += s
	}

	return off
}

// Index inverts Offset by greedy division in descending-stride order.
func (a Affine) Index(offset int) Index {
	return Index{c: a.invert(offset, nil)}
}

// invert performs the greedy division. When sizes is given, dimensions of size
// <= 1 are pinned to 0 so that equal strides produced by singleton dimensions
// do not steal the remainder.
func (a Affine) invert(offset int, sizes []int) []int {
	c := make([]int, len(a.stride))
	rem := offset - a.origin()
	var q int
	for _, d := range a.order {
		if sizes != nil && sizes[d] <= 1 {
			continue
		}
		q = rem / a.stride[d]
		c[d] = q
		rem -= q * a.stride[d]
	}

	return c
}

// nested reports whether greedy inversion is exact over e: walking dimensions
// by descending stride, each stride must exceed the span of all smaller ones.
func (a Affine) nested(e Extent) bool {
	span := 0
	for p := len(a.order) - 1; p >= 0; p-- {
		d := a.order[p]
		if e.sizes[d] <= 1 {
			continue
		}
		if a.stride[d] <= span {
			return false
		}
		span += a.stride[d] * (e.sizes[d] - 1)
	}

	return true
}

func (a Affine) exact(e Extent) bool { return a.nested(e) }

func (a Affine) span(e Extent) (lo, hi int) {
	lo = a.origin()
	hi = lo
	for i, s := range e.sizes {
		hi += a.stride[i] * (s - 1)
	}

	return lo, hi
}

// Equal reports structural equality with another Affine.
func (a Affine) Equal(o Layout) bool {
	b, ok := o.(Affine)

	return ok && a.base == b.base && equalInts(a.start, b.start) && equalInts(a.stride, b.stride)
}

func (a Affine) writeHash(d *xxhash.Digest) {
	hashInts(d, tagAffine, a.base)
	hashInts(d, tagAffine, a.start...)
	hashInts(d, tagAffine, a.stride...)
}

// String renders "Affine{start=(0,0) stride=(4,1) base=0}".
func (a Affine) String() string {
	return fmt.Sprintf("Affine{start=%s stride=%s base=%d}", tupleString(a.start), tupleString(a.stride), a.base)
}

// Indexed is a non-copying gather along dimension 0: coordinate (i, rest...)
// maps to inner coordinate (rows[i], rest...). It is not expressible in
// start+stride form.
type Indexed struct {
	inner      Affine
	innerSizes []int // extent sizes the inner layout addresses
	rows       []int // dim-0 lookup table into inner
}

// Rows returns a copy of the dimension-0 lookup table.
func (x Indexed) Rows() []int { return cloneInts(x.rows) }

// Inner returns the wrapped affine layout.
func (x Indexed) Inner() Affine { return x.inner }

// Dimensionality returns the rank.
func (x Indexed) Dimensionality() int { return x.inner.Dimensionality() }

// Offset translates dimension 0 through the table and delegates to inner.
func (x Indexed) Offset(coord ...int) int {
	switch len(coord) {
	case 1:
		return x.inner.Offset1(x.rows[coord[0]])
	case 2:
		return x.inner.Offset2(x.rows[coord[0]], coord[1])
	case 3:
		return x.inner.Offset3(x.rows[coord[0]], coord[1], coord[2])
	}
	c := cloneInts(coord)
	c[0] = x.rows[c[0]]

	return x.inner.Offset(c...)
}

// Index inverts through inner and looks up the first table entry that selects
// the resulting row. Unselected rows yield -1 in dimension 0.
func (x Indexed) Index(offset int) Index {
	return Index{c: x.invert(offset, nil)}
}

func (x Indexed) invert(offset int, _ []int) []int {
	c := x.inner.invert(offset, x.innerSizes)
	row := c[0]
	c[0] = -1
	for i, r := range x.rows {
		if r == row {
			c[0] = i
			break
		}
	}

	return c
}

// exact depends only on the inner layout: row lookup after inversion is a
// table search.
func (x Indexed) exact(Extent) bool {
	return x.inner.nested(Extent{sizes: x.innerSizes})
}

func (x Indexed) span(e Extent) (lo, hi int) {
	minRow, maxRow := x.rows[0], x.rows[0]
	for _, r := range x.rows[1:] {
		minRow = min(minRow, r)
		maxRow = max(maxRow, r)
	}
	lo, hi = x.inner.span(e)
	d := x.inner.stride[0]

	return lo + minRow*d, hi - (e.sizes[0]-1)*d + maxRow*d
}

// Equal reports structural equality with another Indexed.
func (x Indexed) Equal(o Layout) bool {
	y, ok := o.(Indexed)

	return ok && x.inner.Equal(y.inner) && equalInts(x.rows, y.rows) && equalInts(x.innerSizes, y.innerSizes)
}

func (x Indexed) writeHash(d *xxhash.Digest) {
	x.inner.writeHash(d)
	hashInts(d, tagIndexed, x.rows...)
}

// String renders the inner layout with the row table.
func (x Indexed) String() string {
	return fmt.Sprintf("Indexed{rows=%s inner=%s}", tupleString(x.rows), x.inner)
}
