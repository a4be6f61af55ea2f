// SPDX-License-Identifier: MIT

package structure

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// maxCells is the largest addressable cell count. Offsets are kept within the
// signed 32-bit range regardless of the platform int size.
const maxCells = math.MaxInt32

// checkedMul multiplies two non-negative ints in a 64-bit accumulator and
// reports whether the product still fits into maxCells.
// Complexity: O(1).
func checkedMul(a, b int) (int, bool) {
	p := int64(a) * int64(b)
	if p < 0 || p > maxCells {
		return 0, false
	}

	return int(p), true
}

// checkedProduct folds checkedMul over factors. The empty product is 1.
// Complexity: O(len(factors)).
func checkedProduct(factors ...int) (int, bool) {
	acc := 1
	var ok bool
	for _, f := range factors {
		if acc, ok = checkedMul(acc, f); !ok {
			return 0, false
		}
	}

	return acc, true
}

// ceilDiv returns ceil(a/b) for a >= 0, b >= 1.
func ceilDiv(a, b int) int {
	if a == 0 {
		return 0
	}

	return (a + b - 1) / b
}

// cloneInts returns an independent copy; nil stays nil.
func cloneInts(src []int) []int {
	if src == nil {
		return nil
	}
	dst := make([]int, len(src))
	copy(dst, src)

	return dst
}

// equalInts reports component-wise equality.
func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// hashInts writes a length-prefixed little-endian encoding of vs into d.
// The tag separates otherwise identical encodings of different value kinds.
func hashInts(d *xxhash.Digest, tag byte, vs ...int) {
	var buf [8]byte
	_, _ = d.Write([]byte{tag})
	binary.LittleEndian.PutUint64(buf[:], uint64(len(vs)))
	_, _ = d.Write(buf[:])
	for _, v := range vs {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		_, _ = d.Write(buf[:])
	}
}

// hash tags, one per hashed kind.
const (
	tagExtent byte = iota + 1
	tagIndex
	tagStride
	tagAffine
	tagIndexed
)
