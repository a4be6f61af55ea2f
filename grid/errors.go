// SPDX-License-Identifier: MIT

package grid

import "errors"

// Addressing failures surface the structure package sentinels
// (structure.ErrIndexOutOfBounds, ...), wrapped with grid context. The
// sentinels below cover buffer pairing only.
var (
	// ErrNilBuffer indicates Wrap was given a nil Buffer.
	ErrNilBuffer = errors.New("grid: nil buffer")

	// ErrBufferTooSmall indicates the Structure addresses offsets outside the
	// buffer (including negative offsets).
	ErrBufferTooSmall = errors.New("grid: buffer does not cover structure")
)
