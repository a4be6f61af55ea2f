// SPDX-License-Identifier: MIT
// Package structure: sentinel error set.
// All public operations return these sentinels (possibly wrapped with call-site
// context via %w); tests MUST match them with errors.Is. Nothing in this package
// panics on caller-supplied input.

package structure

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced in tests):
// dimensionality mismatch -> shape -> bounds -> unsupported transform.

var (
	// ErrInvalidShape is returned for a negative dimension size, a non-positive
	// band count, a non-positive stride, or a cell count that overflows int32.
	ErrInvalidShape = errors.New("structure: invalid shape")

	// ErrIndexOutOfBounds indicates a coordinate or offset outside the owning
	// Structure's extent, or a sub-range that does not fit.
	ErrIndexOutOfBounds = errors.New("structure: index out of bounds")

	// ErrUnsupportedTransform marks a view/projection requested on a Layout that
	// is not in canonical start+stride form.
	ErrUnsupportedTransform = errors.New("structure: unsupported transform")

	// ErrDimensionalityMismatch indicates operands disagreeing in rank.
	ErrDimensionalityMismatch = errors.New("structure: dimensionality mismatch")

	// ErrInvalidPrecedence indicates an order that is not a full permutation of
	// [0, dimensionality).
	ErrInvalidPrecedence = errors.New("structure: invalid precedence")
)

// opErrorf wraps err with a uniform "<Type>.<method>(args): " prefix.
func opErrorf(op string, args any, err error) error {
	return fmt.Errorf("%s(%v): %w", op, args, err)
}
