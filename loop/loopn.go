// SPDX-License-Identifier: MIT

package loop

import (
	"fmt"

	"github.com/katalvlaran/ndstruct/structure"
)

// LoopN walks a Range of any rank in an arbitrary Precedence, driving a
// structure.Iterator. The coordinate slice passed to callbacks is owned by the
// loop and reused between calls: copy it if it must outlive the callback.
type LoopN struct {
	r   structure.Range
	p   structure.Precedence
	dir structure.Direction
}

// NewLoopN builds a generic loop.
// Errors: structure.ErrDimensionalityMismatch, structure.ErrInvalidPrecedence.
func NewLoopN(r structure.Range, p structure.Precedence, dir structure.Direction) (LoopN, error) {
	// Validate once here so walk never fails.
	if _, err := structure.NewIterator(r, p, dir); err != nil {
		return LoopN{}, fmt.Errorf("loop.NewLoopN: %w", err)
	}

	return LoopN{r: r, p: p, dir: dir}, nil
}

func (l LoopN) walk(visit func(coord []int) bool) {
	it, _ := structure.NewIterator(l.r, l.p, l.dir)
	c := make([]int, l.r.Dimensionality())
	for it.NextInto(c) {
		if !visit(c) {
			return
		}
	}
}

// ForEach calls fn for every coordinate.
func (l LoopN) ForEach(fn func(coord []int)) {
	l.walk(func(c []int) bool {
		fn(c)

		return true
	})
}

// AnyMatch reports whether pred holds for some coordinate.
func (l LoopN) AnyMatch(pred func(coord []int) bool) bool {
	found := false
	l.walk(func(c []int) bool {
		found = pred(c)
		return !found
	})

	return found
}

// AllMatch reports whether pred holds for every coordinate.
func (l LoopN) AllMatch(pred func(coord []int) bool) bool {
	return !l.AnyMatch(func(c []int) bool { return !pred(c) })
}

// NoneMatch reports whether pred holds for no coordinate.
func (l LoopN) NoneMatch(pred func(coord []int) bool) bool {
	return !l.AnyMatch(pred)
}
