// SPDX-License-Identifier: MIT

package loop

import (
	"fmt"

	"github.com/katalvlaran/ndstruct/structure"
)

// Walk visits every coordinate of s together with its buffer offset, stopping
// early when fn returns false.
//
// Implementation:
//   - Stage 1: ranks 1..3 over an Affine layout take the fixed-rank loops and
//     the unboxed Offset1/2/3 fast paths.
//   - Stage 2: everything else falls back to LoopN and Layout.Offset.
//
// Behavior highlights:
//   - Coordinates are in range by construction, so no per-step bounds checks.
//   - coord is reused between calls; copy it to retain it.
//
// Errors:
//   - structure.ErrInvalidPrecedence for an unknown Order or Direction.
//
// Complexity:
//   - Time O(elements), Space O(rank).
func Walk(s structure.Structure, o Order, dir structure.Direction, fn func(coord []int, off int) bool) error {
	if o > ColumnMajor {
		return fmt.Errorf("loop.Walk(%v): %w", o, structure.ErrInvalidPrecedence)
	}
	r := s.Range()
	a, affine := s.Affine()
	rank := s.Dimensionality()
	c := make([]int, rank)

	if affine {
		switch rank {
		case 1:
			l, err := NewLoop1(r, dir)
			if err != nil {
				return err
			}
			l.AnyMatch(func(i int) bool {
				c[0] = i
				return !fn(c, a.Offset1(i))
			})

			return nil
		case 2:
			l, err := NewLoop2(r, o, dir)
			if err != nil {
				return err
			}
			l.AnyMatch(func(i, j int) bool {
				c[0], c[1] = i, j
				return !fn(c, a.Offset2(i, j))
			})

			return nil
		case 3:
			l, err := NewLoop3(r, o, dir)
			if err != nil {
				return err
			}
			l.AnyMatch(func(i, j, k int) bool {
				c[0], c[1], c[2] = i, j, k
				return !fn(c, a.Offset3(i, j, k))
			})

			return nil
		}
	}
	l, err := NewLoopN(r, o.Precedence(rank), dir)
	if err != nil {
		return err
	}
	layout := s.Layout()
	l.AnyMatch(func(coord []int) bool {
		return !fn(coord, layout.Offset(coord...))
	})

	return nil
}
