// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/ndstruct/structure"
)

// Factory builds a concrete wrapper type G from a Structure and a Buffer.
// Element-specific grid types (images, matrices, ...) pass one to Derive so
// every view they produce is again of their own type.
type Factory[T, G any] func(structure.Structure, Buffer[T]) G

// Derive applies transform to g's Structure and builds the result through f,
// sharing g's buffer.
//
// Errors:
//   - whatever transform returns, wrapped.
//   - ErrBufferTooSmall if the new structure escapes the buffer.
func Derive[T, G any](g *Grid[T], transform func(structure.Structure) (structure.Structure, error), f Factory[T, G]) (G, error) {
	var zero G
	s, err := transform(g.s)
	if err != nil {
		return zero, fmt.Errorf("grid.Derive: %w", err)
	}
	w, err := Wrap(s, g.buf)
	if err != nil {
		return zero, err
	}

	return f(w.s, w.buf), nil
}
