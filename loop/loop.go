// SPDX-License-Identifier: MIT

// Package loop - fixed-rank (1/2/3) loops.
//
// Purpose:
//   - Enumerate a Range with plain nested for-loops over unboxed ints: no
//     coordinate slices, no per-step allocation.
//   - Offer short-circuiting AnyMatch/AllMatch/NoneMatch that stop as soon as
//     the answer is known.
//
// Behavior highlights:
//   - The visit order equals structure.Iterator with the equivalent
//     Precedence and Direction; Backward is the exact reverse of Forward.
//   - Empty ranges never invoke callbacks: AnyMatch=false, AllMatch=true,
//     NoneMatch=true.
//
// Loops are immutable values and may be reused and shared; each call keeps its
// cursor on the stack.

package loop

import "github.com/katalvlaran/ndstruct/structure"

// Loop1 walks a rank-1 Range.
type Loop1 struct {
	a axis
}

// NewLoop1 builds a rank-1 loop.
// Errors: structure.ErrDimensionalityMismatch, structure.ErrInvalidPrecedence.
func NewLoop1(r structure.Range, dir structure.Direction) (Loop1, error) {
	axes, err := axesOf("loop.NewLoop1", r, 1, RowMajor, dir)
	if err != nil {
		return Loop1{}, err
	}

	return Loop1{a: axes[0]}, nil
}

// walk visits until visit returns false.
func (l Loop1) walk(visit func(i int) bool) {
	for i := l.a.from; i != l.a.to; i += l.a.step {
		if !visit(i) {
			return
		}
	}
}

// ForEach calls fn for every coordinate.
func (l Loop1) ForEach(fn func(i int)) {
	l.walk(func(i int) bool {
		fn(i)

		return true
	})
}

// AnyMatch reports whether pred holds for some coordinate.
func (l Loop1) AnyMatch(pred func(i int) bool) bool {
	found := false
	l.walk(func(i int) bool {
		found = pred(i)
		return !found
	})

	return found
}

// AllMatch reports whether pred holds for every coordinate.
func (l Loop1) AllMatch(pred func(i int) bool) bool {
	return !l.AnyMatch(func(i int) bool { return !pred(i) })
}

// NoneMatch reports whether pred holds for no coordinate.
func (l Loop1) NoneMatch(pred func(i int) bool) bool {
	return !l.AnyMatch(pred)
}

// Loop2 walks a rank-2 Range in row- or column-major order.
type Loop2 struct {
	a, b  axis
	order Order
}

// NewLoop2 builds a rank-2 loop.
// Errors: structure.ErrDimensionalityMismatch, structure.ErrInvalidPrecedence.
func NewLoop2(r structure.Range, o Order, dir structure.Direction) (Loop2, error) {
	axes, err := axesOf("loop.NewLoop2", r, 2, o, dir)
	if err != nil {
		return Loop2{}, err
	}

	return Loop2{a: axes[0], b: axes[1], order: o}, nil
}

func (l Loop2) walk(visit func(i, j int) bool) {
	a, b := l.a, l.b
	if l.order == RowMajor {
		for i := a.from; i != a.to; i += a.step {
			for j := b.from; j != b.to; j += b.step {
				if !visit(i, j) {
					return
				}
			}
		}

		return
	}
	for j := b.from; j != b.to; j += b.step {
		for i := a.from; i != a.to; i += a.step {
			if !visit(i, j) {
				return
			}
		}
	}
}

// ForEach calls fn for every coordinate.
func (l Loop2) ForEach(fn func(i, j int)) {
	l.walk(func(i, j int) bool {
		fn(i, j)

		return true
	})
}

// AnyMatch reports whether pred holds for some coordinate.
func (l Loop2) AnyMatch(pred func(i, j int) bool) bool {
	found := false
	l.walk(func(i, j int) bool {
		found = pred(i, j)
		return !found
	})

	return found
}

// AllMatch reports whether pred holds for every coordinate.
func (l Loop2) AllMatch(pred func(i, j int) bool) bool {
	return !l.AnyMatch(func(i, j int) bool { return !pred(i, j) })
}

// NoneMatch reports whether pred holds for no coordinate.
func (l Loop2) NoneMatch(pred func(i, j int) bool) bool {
	return !l.AnyMatch(pred)
}

// Loop3 walks a rank-3 Range in row- or column-major order.
type Loop3 struct {
	a, b, c axis
	order   Order
}

// NewLoop3 builds a rank-3 loop.
// Errors: structure.ErrDimensionalityMismatch, structure.ErrInvalidPrecedence.
func NewLoop3(r structure.Range, o Order, dir structure.Direction) (Loop3, error) {
	axes, err := axesOf("loop.NewLoop3", r, 3, o, dir)
	if err != nil {
		return Loop3{}, err
	}

	return Loop3{a: axes[0], b: axes[1], c: axes[2], order: o}, nil
}

func (l Loop3) walk(visit func(i, j, k int) bool) {
	a, b, c := l.a, l.b, l.c
	if l.order == RowMajor {
		for i := a.from; i != a.to; i += a.step {
			for j := b.from; j != b.to; j += b.step {
				for k := c.from; k != c.to; k += c.step {
					if !visit(i, j, k) {
						return
					}
				}
			}
		}

		return
	}
	for k := c.from; k != c.to; k += c.step {
		for j := b.from; j != b.to; j += b.step {
			for i := a.from; i != a.to; i += a.step {
				if !visit(i, j, k) {
					return
				}
			}
		}
	}
}

// ForEach calls fn for every coordinate.
func (l Loop3) ForEach(fn func(i, j, k int)) {
	l.walk(func(i, j, k int) bool {
		fn(i, j, k)

		return true
	})
}

// AnyMatch reports whether pred holds for some coordinate.
func (l Loop3) AnyMatch(pred func(i, j, k int) bool) bool {
	found := false
	l.walk(func(i, j, k int) bool {
		found = pred(i, j, k)
		return !found
	})

	return found
}

// AllMatch reports whether pred holds for every coordinate.
func (l Loop3) AllMatch(pred func(i, j, k int) bool) bool {
	return !l.AnyMatch(func(i, j, k int) bool { return !pred(i, j, k) })
}

// NoneMatch reports whether pred holds for no coordinate.
func (l Loop3) NoneMatch(pred func(i, j, k int) bool) bool {
	return !l.AnyMatch(pred)
}
