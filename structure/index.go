// SPDX-License-Identifier: MIT

package structure

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Index is an immutable N-d coordinate. Its dimensionality is fixed at
// construction; "mutating" methods return a new Index.
type Index struct {
	c []int
}

// NewIndex builds an Index from components. The slice is copied.
func NewIndex(c ...int) Index { return Index{c: cloneInts(c)} }

// ZeroIndex returns the origin of an n-dimensional space.
func ZeroIndex(n int) Index { return Index{c: make([]int, n)} }

// Dimensionality returns the number of components.
func (x Index) Dimensionality() int { return len(x.c) }

// At returns component i.
func (x Index) At(i int) int { return x.c[i] }

// Components returns a copy of the components.
func (x Index) Components() []int { return cloneInts(x.c) }

// With returns a copy of x where component dim is set to v.
func (x Index) With(dim, v int) Index {
	c := cloneInts(x.c)
	c[dim] = v

	return Index{c: c}
}

// Add returns the component-wise sum.
// Errors: ErrDimensionalityMismatch.
func (x Index) Add(o Index) (Index, error) {
	if len(x.c) != len(o.c) {
		return Index{}, opErrorf("Index.Add", o, ErrDimensionalityMismatch)
	}
	c := make([]int, len(x.c))
	for i := range c {
		c[i] = x.c[i] + o.c[i]
	}

	return Index{c: c}, nil
}

// Equal reports component-wise equality.
func (x Index) Equal(o Index) bool { return equalInts(x.c, o.c) }

// Hash returns a structural xxhash of the coordinate.
func (x Index) Hash() uint64 {
	d := xxhash.New()
	hashInts(d, tagIndex, x.c...)

	return d.Sum64()
}

// String renders "(1,2)".
func (x Index) String() string { return tupleString(x.c) }

func tupleString(vs []int) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(')')

	return b.String()
}

// Stride is an immutable per-dimension step in buffer-offset units. Every
// component is >= 1; negative or zero strides are not representable, reverse
// traversal is done by backward iterators instead.
type Stride struct {
	s []int
}

// NewStride validates and builds a Stride.
// Errors: ErrInvalidShape when any component is < 1.
func NewStride(s ...int) (Stride, error) {
	if len(s) == 0 {
		return Stride{}, opErrorf("NewStride", s, ErrInvalidShape)
	}
	for _, v := range s {
		if v < 1 {
			return Stride{}, opErrorf("NewStride", s, ErrInvalidShape)
		}
	}

	return Stride{s: cloneInts(s)}, nil
}

// UnitStride returns the all-ones stride of rank n.
func UnitStride(n int) Stride {
	s := make([]int, n)
	for i := range s {
		s[i] = 1
	}

	return Stride{s: s}
}

// Dimensionality returns the rank.
func (s Stride) Dimensionality() int { return len(s.s) }

// At returns component i.
func (s Stride) At(i int) int { return s.s[i] }

// Components returns a copy of the components.
func (s Stride) Components() []int { return cloneInts(s.s) }

// Scale multiplies component-wise by k.
// Errors: ErrDimensionalityMismatch, ErrInvalidShape on int32 overflow.
func (s Stride) Scale(k Stride) (Stride, error) {
	if len(s.s) != len(k.s) {
		return Stride{}, opErrorf("Stride.Scale", k, ErrDimensionalityMismatch)
	}
	out := make([]int, len(s.s))
	var ok bool
	for i := range out {
		if out[i], ok = checkedMul(s.s[i], k.s[i]); !ok {
			return Stride{}, opErrorf("Stride.Scale", k, ErrInvalidShape)
		}
	}

	return Stride{s: out}, nil
}

// Equal reports component-wise equality.
func (s Stride) Equal(o Stride) bool { return equalInts(s.s, o.s) }

// Hash returns a structural xxhash of the stride.
func (s Stride) Hash() uint64 {
	d := xxhash.New()
	hashInts(d, tagStride, s.s...)

	return d.Sum64()
}

// String renders "(4,1)".
func (s Stride) String() string { return tupleString(s.s) }
