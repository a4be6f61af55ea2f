// SPDX-License-Identifier: MIT

package structure

import "cmp"

// Precedence is a permutation of dimensions ordering traversal and comparison.
// Dimensions are listed from highest precedence (slowest varying, compared
// first) to lowest (fastest varying).
//
//	LastFastest(3)  = [0 1 2]   // C order, matches DefaultLayout
//	FirstFastest(3) = [2 1 0]   // Fortran order
type Precedence struct {
	major []int
}

// NewPrecedence validates that major is a full permutation of [0, len(major)).
// Errors: ErrInvalidPrecedence.
func NewPrecedence(major ...int) (Precedence, error) {
	if len(major) == 0 {
		return Precedence{}, opErrorf("NewPrecedence", major, ErrInvalidPrecedence)
	}
	seen := make([]bool, len(major))
	for _, d := range major {
		if d < 0 || d >= len(major) || seen[d] {
			return Precedence{}, opErrorf("NewPrecedence", major, ErrInvalidPrecedence)
		}
		seen[d] = true
	}

	return Precedence{major: cloneInts(major)}, nil
}

// LastFastest is the lexicographic (row-major) precedence of rank n.
func LastFastest(n int) Precedence {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return Precedence{major: p}
}

// FirstFastest is the reverse of LastFastest (column-major).
func FirstFastest(n int) Precedence {
	p := make([]int, n)
	for i := range p {
		p[i] = n - 1 - i
	}

	return Precedence{major: p}
}

// Dimensionality returns the rank the precedence orders.
func (p Precedence) Dimensionality() int { return len(p.major) }

// Major returns dimensions from highest to lowest precedence.
func (p Precedence) Major() []int { return cloneInts(p.major) }

// Minor returns dimensions from lowest to highest precedence, i.e. the order
// an odometer increments them.
func (p Precedence) Minor() []int {
	m := make([]int, len(p.major))
	for i, d := range p.major {
		m[len(m)-1-i] = d
	}

	return m
}

// Compare orders two coordinates: it compares from the highest-precedence
// dimension down and returns the first non-zero result (-1, 0, +1).
// Errors: ErrDimensionalityMismatch when a, b and p disagree in rank.
func (p Precedence) Compare(a, b Index) (int, error) {
	if a.Dimensionality() != len(p.major) || b.Dimensionality() != len(p.major) {
		return 0, opErrorf("Precedence.Compare", []Index{a, b}, ErrDimensionalityMismatch)
	}
	for _, d := range p.major {
		if c := cmp.Compare(a.c[d], b.c[d]); c != 0 {
			return c, nil
		}
	}

	return 0, nil
}

// Equal reports whether both precedences list the same order.
func (p Precedence) Equal(o Precedence) bool { return equalInts(p.major, o.major) }

// String renders the major order, e.g. "(0,1,2)".
func (p Precedence) String() string { return tupleString(p.major) }
