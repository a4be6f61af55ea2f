// SPDX-License-Identifier: MIT

// Package grid - Grid: a Structure paired with a Buffer.
//
// Purpose:
//   - Provide safe element access (At/Set return errors instead of panicking).
//   - Support no-copy views (View, Transpose, Row, Column, Downsample, Band):
//     writes through a view reflect in every grid sharing the buffer.
//   - Materialize a view into an independent, densely packed grid.
//
// Concurrency:
//   - Grids share buffers without locking; callers serialize writes to a
//     shared buffer.
//
// Complexity quicksheet:
//   - New: O(cells) zero-init; At/Set: O(rank); views: O(rank);
//     Do/Apply/Fill/Materialize/Equal: O(cells).

package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ndstruct/loop"
	"github.com/katalvlaran/ndstruct/structure"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxWrap = "Wrap"
	ctxView = "View"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// gridErrorf wraps err with "Grid.<method>(args): ".
func gridErrorf(method string, args any, err error) error {
	return fmt.Errorf("Grid.%s(%v): %w", method, args, err)
}

// Grid addresses a Buffer through a Structure. Element access reads and
// writes band 0 of each coordinate; use Band to address another channel.
type Grid[T any] struct {
	s   structure.Structure
	buf Buffer[T]
}

// New allocates a zeroed, densely packed grid for e backed by a SliceBuffer.
// Complexity: Time O(cells), Space O(cells).
func New[T any](e structure.Extent) *Grid[T] {
	return &Grid[T]{s: structure.Of(e), buf: NewSliceBuffer[T](e.Cells())}
}

// Wrap pairs an existing buffer with s without copying.
//
// Implementation:
//   - Stage 1: reject a nil buffer and a zero-value (rank-0) structure.
//   - Stage 2: ensure [lo, hi+bands-1] from s.Bounds() lies inside the buffer.
//
// Errors:
//   - ErrNilBuffer, ErrBufferTooSmall.
//   - structure.ErrDimensionalityMismatch for a rank-0 structure.
func Wrap[T any](s structure.Structure, buf Buffer[T]) (*Grid[T], error) {
	if buf == nil {
		return nil, gridErrorf(ctxWrap, s, ErrNilBuffer)
	}
	if s.Dimensionality() == 0 {
		return nil, gridErrorf(ctxWrap, s, structure.ErrDimensionalityMismatch)
	}
	if lo, hi, ok := s.Bounds(); ok {
		if lo < 0 || hi+s.Extent().Bands()-1 >= buf.Len() {
			return nil, gridErrorf(ctxWrap, s, ErrBufferTooSmall)
		}
	}

	return &Grid[T]{s: s, buf: buf}, nil
}

// Structure returns the addressing structure.
func (g *Grid[T]) Structure() structure.Structure { return g.s }

// Buffer returns the shared backing buffer.
func (g *Grid[T]) Buffer() Buffer[T] { return g.buf }

// Extent is shorthand for Structure().Extent().
func (g *Grid[T]) Extent() structure.Extent { return g.s.Extent() }

// At returns the value at coord.
// Errors: structure.ErrIndexOutOfBounds, structure.ErrDimensionalityMismatch.
func (g *Grid[T]) At(coord ...int) (T, error) {
	off, err := g.s.Offset(coord...)
	if err != nil {
		var zero T
		return zero, gridErrorf(ctxAt, coord, err)
	}

	return g.buf.Get(off), nil
}

// Set stores v at coord.
// Errors: structure.ErrIndexOutOfBounds, structure.ErrDimensionalityMismatch.
func (g *Grid[T]) Set(v T, coord ...int) error {
	off, err := g.s.Offset(coord...)
	if err != nil {
		return gridErrorf(ctxSet, coord, err)
	}
	g.buf.Set(off, v)

	return nil
}

// derive builds a grid over the same buffer with a transformed structure.
func (g *Grid[T]) derive(method string, s structure.Structure, err error) (*Grid[T], error) {
	if err != nil {
		return nil, gridErrorf(method, g.s.Extent(), err)
	}

	return &Grid[T]{s: s, buf: g.buf}, nil
}

// View returns a no-copy window over r.
func (g *Grid[T]) View(r structure.Range) (*Grid[T], error) {
	s, err := g.s.View(r)
	return g.derive(ctxView, s, err)
}

// Downsample returns a no-copy view keeping every k[i]-th coordinate.
func (g *Grid[T]) Downsample(k structure.Stride) (*Grid[T], error) {
	s, err := g.s.Downsample(k)
	return g.derive("Downsample", s, err)
}

// Transpose returns a no-copy transposed view of a rank-2 grid.
func (g *Grid[T]) Transpose() (*Grid[T], error) {
	s, err := g.s.Transpose()
	return g.derive("Transpose", s, err)
}

// Row returns row i of a rank-2 grid as a rank-1 view.
func (g *Grid[T]) Row(i int) (*Grid[T], error) {
	s, err := g.s.Row(i)
	return g.derive("Row", s, err)
}

// Column returns column j of a rank-2 grid as a rank-1 view.
func (g *Grid[T]) Column(j int) (*Grid[T], error) {
	s, err := g.s.Column(j)
	return g.derive("Column", s, err)
}

// Band returns a single-band view of channel b.
func (g *Grid[T]) Band(b int) (*Grid[T], error) {
	s, err := g.s.SelectBand(b)
	return g.derive("Band", s, err)
}

// Do visits every coordinate in row-major order and calls fn(coord, v);
// it stops when fn returns false. coord is reused between calls.
// Errors: structure.ErrDimensionalityMismatch for a zero-value grid.
func (g *Grid[T]) Do(fn func(coord []int, v T) bool) error {
	err := loop.Walk(g.s, loop.RowMajor, structure.Forward, func(c []int, off int) bool {
		return fn(c, g.buf.Get(off))
	})
	if err != nil {
		return gridErrorf("Do", g.s.Extent(), err)
	}

	return nil
}

// Apply replaces every element with fn(coord, v), in row-major order.
// Errors: structure.ErrDimensionalityMismatch for a zero-value grid.
func (g *Grid[T]) Apply(fn func(coord []int, v T) T) error {
	err := loop.Walk(g.s, loop.RowMajor, structure.Forward, func(c []int, off int) bool {
		g.buf.Set(off, fn(c, g.buf.Get(off)))
		return true
	})
	if err != nil {
		return gridErrorf("Apply", g.s.Extent(), err)
	}

	return nil
}

// Fill assigns v to every element.
func (g *Grid[T]) Fill(v T) error {
	return g.Apply(func([]int, T) T { return v })
}

// Materialize copies the grid (all bands) into a new densely packed grid
// with an independent buffer of the same kind.
//
// Implementation:
//   - Stage 1: allocate via Buffer.Like(cells).
//   - Stage 2: walk the source row-major; the destination offset is the
//     running element counter times the band count.
//
// Errors:
//   - structure.ErrDimensionalityMismatch for a zero-value grid.
//
// Complexity:
//   - Time O(cells), Space O(cells).
func (g *Grid[T]) Materialize() (*Grid[T], error) {
	e := g.s.Extent()
	if e.Dimensionality() == 0 {
		return nil, gridErrorf("Materialize", e, structure.ErrDimensionalityMismatch)
	}
	bands := e.Bands()
	dst := g.buf.Like(e.Cells())
	n := 0
	err := loop.Walk(g.s, loop.RowMajor, structure.Forward, func(_ []int, off int) bool {
		for b := 0; b < bands; b++ {
			dst.Set(n*bands+b, g.buf.Get(off+b))
		}
		n++

		return true
	})
	if err != nil {
		return nil, gridErrorf("Materialize", e, err)
	}

	return &Grid[T]{s: structure.Of(e), buf: dst}, nil
}

// Equal reports whether both grids have equal extents and eq holds for every
// band of every coordinate. Layouts may differ.
func (g *Grid[T]) Equal(o *Grid[T], eq func(a, b T) bool) bool {
	if o == nil || !g.s.Extent().Equal(o.s.Extent()) {
		return false
	}
	bands := g.s.Extent().Bands()
	for x := range g.s.Range().Forward() {
		c := x.Components()
		a, _ := g.s.Offset(c...)
		b, _ := o.s.Offset(c...)
		for k := 0; k < bands; k++ {
			if !eq(g.buf.Get(a+k), o.buf.Get(b+k)) {
				return false
			}
		}
	}

	return true
}

// String renders band 0. Rank-2 grids print one bracketed line per row;
// other ranks print a single bracketed line in row-major order.
func (g *Grid[T]) String() string {
	var b strings.Builder
	rowLen := g.s.Extent().Elements()
	if g.s.Dimensionality() == 2 {
		rowLen = g.s.Extent().Size(1)
	}
	i := 0
	err := g.Do(func(_ []int, v T) bool {
		if i%rowLen == 0 {
			b.WriteString(_fmtRowOpen)
		}
		fmt.Fprintf(&b, "%v", v)
		i++
		if i%rowLen == 0 {
			b.WriteString(_fmtRowClose)
		} else {
			b.WriteString(_fmtSep)
		}

		return true
	})
	if err != nil {
		return err.Error()
	}

	return b.String()
}
