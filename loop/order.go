// SPDX-License-Identifier: MIT

package loop

import (
	"fmt"

	"github.com/katalvlaran/ndstruct/structure"
)

// Order selects which dimension varies fastest in a fixed-rank loop.
type Order uint8

const (
	// RowMajor varies the last dimension fastest (C order).
	RowMajor Order = iota
	// ColumnMajor varies the first dimension fastest (Fortran order).
	ColumnMajor
)

// Precedence returns the rank-n structure.Precedence equivalent to o.
func (o Order) Precedence(n int) structure.Precedence {
	if o == ColumnMajor {
		return structure.FirstFastest(n)
	}

	return structure.LastFastest(n)
}

// String returns "row-major" or "column-major".
func (o Order) String() string {
	if o == ColumnMajor {
		return "column-major"
	}

	return "row-major"
}

// axis is one dimension's traversal: from, from+step, ... up to (excluding) to.
// An empty dimension has from == to in both directions.
type axis struct {
	from, to, step int
}

func newAxis(lo, hi int, dir structure.Direction) axis {
	if dir == structure.Backward {
		return axis{from: hi - 1, to: lo - 1, step: -1}
	}

	return axis{from: lo, to: hi, step: 1}
}

// axesOf validates rank, order and direction and builds one axis per dimension.
func axesOf(op string, r structure.Range, rank int, o Order, dir structure.Direction) ([]axis, error) {
	if r.Dimensionality() != rank {
		return nil, fmt.Errorf("%s(%v): %w", op, r, structure.ErrDimensionalityMismatch)
	}
	if o > ColumnMajor || dir > structure.Backward {
		return nil, fmt.Errorf("%s(%v,%v): %w", op, o, dir, structure.ErrInvalidPrecedence)
	}
	lo, hi := r.Start(), r.End()
	axes := make([]axis, rank)
	for d := range axes {
		axes[d] = newAxis(lo.At(d), hi.At(d), dir)
	}

	return axes, nil
}
