// Package structure_test contains unit tests for Range, Precedence and the
// odometer Iterator.
package structure_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/ndstruct/structure"
	"github.com/stretchr/testify/require"
)

// TestIterator_SizeLaw checks count == elements, no duplicates, all in bounds.
func TestIterator_SizeLaw(t *testing.T) {
	shapes := [][]int{{5}, {3, 4}, {2, 3, 4}, {1, 1, 1}, {0, 5}, {2, 0, 3}, {2, 2, 2, 2, 2}}
	for _, sizes := range shapes {
		e := MustExtent(t, sizes...)
		seen := make(map[string]bool)
		for x := range structure.RangeOf(e).Forward() {
			require.True(t, e.Contains(x.Components()...), "%v outside %v", x, e)
			require.False(t, seen[x.String()], "duplicate %v", x)
			seen[x.String()] = true
		}
		require.Len(t, seen, e.Elements(), "extent %v", e)
	}
}

// TestIterator_Orders checks the two canonical precedences on 2×3.
func TestIterator_Orders(t *testing.T) {
	r := structure.RangeOf(MustExtent(t, 2, 3))

	wantC := [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	if diff := cmp.Diff(wantC, Collect(r.All(structure.LastFastest(2), structure.Forward))); diff != "" {
		t.Errorf("LastFastest (-want +got):\n%s", diff)
	}

	wantF := [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}}
	if diff := cmp.Diff(wantF, Collect(r.All(structure.FirstFastest(2), structure.Forward))); diff != "" {
		t.Errorf("FirstFastest (-want +got):\n%s", diff)
	}
}

// TestIterator_OffsetStart iterates a range that does not start at the origin.
func TestIterator_OffsetStart(t *testing.T) {
	r := MustRange(t, []int{1, 2}, 2, 2)
	want := [][]int{{1, 2}, {1, 3}, {2, 2}, {2, 3}}
	require.Equal(t, want, Collect(r.Forward()))
	require.Equal(t, []int{3, 4}, r.End().Components())
	require.True(t, r.Contains(structure.NewIndex(2, 3)))
	require.False(t, r.Contains(structure.NewIndex(3, 3)))
}

// TestIterator_BackwardIsReverse checks forward/backward symmetry for several
// shapes and precedences.
func TestIterator_BackwardIsReverse(t *testing.T) {
	custom, err := structure.NewPrecedence(1, 2, 0)
	require.NoError(t, err)
	cases := []struct {
		name string
		r    structure.Range
		p    structure.Precedence
	}{
		{"C2D", structure.RangeOf(MustExtent(t, 3, 4)), structure.LastFastest(2)},
		{"F2D", structure.RangeOf(MustExtent(t, 3, 4)), structure.FirstFastest(2)},
		{"Custom3D", MustRange(t, []int{1, 0, 2}, 2, 3, 2), custom},
		{"Vector", structure.RangeOf(MustExtent(t, 7)), structure.LastFastest(1)},
		{"Empty", structure.RangeOf(MustExtent(t, 2, 0, 3)), custom},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fwd := Collect(tc.r.All(tc.p, structure.Forward))
			bwd := Collect(tc.r.All(tc.p, structure.Backward))
			if diff := cmp.Diff(Reversed(fwd), bwd); diff != "" {
				t.Errorf("backward != reverse(forward) (-want +got):\n%s", diff)
			}
			require.Len(t, fwd, tc.r.Extent().Elements())
		})
	}
}

// TestIterator_OrderMatchesComparator checks that forward iteration is strictly
// increasing under the same precedence's comparator.
func TestIterator_OrderMatchesComparator(t *testing.T) {
	p, err := structure.NewPrecedence(2, 0, 1)
	require.NoError(t, err)
	r := structure.RangeOf(MustExtent(t, 2, 3, 2))

	var prev structure.Index
	first := true
	for x := range r.All(p, structure.Forward) {
		if !first {
			c, err := p.Compare(prev, x)
			require.NoError(t, err)
			require.Equal(t, -1, c, "%v should precede %v", prev, x)
		}
		prev, first = x, false
	}
}

// TestIterator_Protocol exercises Next/HasNext/NextInto/Reset directly.
func TestIterator_Protocol(t *testing.T) {
	it, err := structure.NewIterator(structure.RangeOf(MustExtent(t, 1, 2)), structure.LastFastest(2), structure.Forward)
	require.NoError(t, err)

	x, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, []int{0, 0}, x.Components())

	dst := make([]int, 2)
	require.True(t, it.NextInto(dst))
	require.Equal(t, []int{0, 1}, dst)
	require.False(t, it.HasNext())
	_, ok = it.Next()
	require.False(t, ok)
	require.False(t, it.NextInto(dst))

	it.Reset()
	require.True(t, it.HasNext())
	x, _ = it.Next()
	require.Equal(t, []int{0, 0}, x.Components())
	require.Equal(t, "forward", structure.Forward.String())
	require.Equal(t, "backward", structure.Backward.String())
}

// TestIterator_Empty yields nothing for an empty extent.
func TestIterator_Empty(t *testing.T) {
	it, err := structure.NewIterator(structure.RangeOf(MustExtent(t, 0, 5)), structure.LastFastest(2), structure.Backward)
	require.NoError(t, err)
	require.False(t, it.HasNext())
	require.Empty(t, Collect(structure.RangeOf(MustExtent(t, 0, 5)).Forward()))
}

// TestIterator_Errors checks rank and direction validation.
func TestIterator_Errors(t *testing.T) {
	r := structure.RangeOf(MustExtent(t, 2, 2))
	_, err := structure.NewIterator(r, structure.LastFastest(3), structure.Forward)
	require.ErrorIs(t, err, structure.ErrDimensionalityMismatch)
	_, err = structure.NewIterator(r, structure.LastFastest(2), structure.Direction(7))
	require.ErrorIs(t, err, structure.ErrInvalidPrecedence)
	require.Empty(t, Collect(r.All(structure.LastFastest(3), structure.Forward)))
}

// TestRange_EarlyBreak stops a range-over-func loop mid-way.
func TestRange_EarlyBreak(t *testing.T) {
	n := 0
	for range structure.RangeOf(MustExtent(t, 10, 10)).Forward() {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}

// TestRange_Within checks sub-range containment and construction errors.
func TestRange_Within(t *testing.T) {
	e := MustExtent(t, 3, 4)
	require.True(t, MustRange(t, []int{1, 1}, 2, 3).Within(e))
	require.False(t, MustRange(t, []int{1, 2}, 2, 3).Within(e))
	require.False(t, MustRange(t, []int{0}, 1).Within(e))

	_, err := structure.NewRange(structure.NewIndex(0), e)
	require.ErrorIs(t, err, structure.ErrDimensionalityMismatch)
	require.Equal(t, "[(1,1) +2x3)", MustRange(t, []int{1, 1}, 2, 3).String())
}

// TestPrecedence_Validation rejects anything but a full permutation.
func TestPrecedence_Validation(t *testing.T) {
	for _, bad := range [][]int{nil, {0, 0}, {1, 2}, {-1, 0}, {0, 2, 2}} {
		_, err := structure.NewPrecedence(bad...)
		require.ErrorIs(t, err, structure.ErrInvalidPrecedence, "order %v", bad)
	}
	p, err := structure.NewPrecedence(1, 2, 0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 0}, p.Major())
	require.Equal(t, []int{0, 2, 1}, p.Minor())
	require.True(t, structure.FirstFastest(3).Equal(mustPrecedence(t, 2, 1, 0)))
}

// TestPrecedence_Compare checks the total order in both canonical precedences.
func TestPrecedence_Compare(t *testing.T) {
	a, b := structure.NewIndex(0, 5), structure.NewIndex(1, 0)

	c, err := structure.LastFastest(2).Compare(a, b)
	require.NoError(t, err)
	require.Equal(t, -1, c)

	c, err = structure.FirstFastest(2).Compare(a, b)
	require.NoError(t, err)
	require.Equal(t, 1, c)

	c, err = structure.LastFastest(2).Compare(a, a)
	require.NoError(t, err)
	require.Zero(t, c)

	_, err = structure.LastFastest(2).Compare(a, structure.NewIndex(1))
	require.ErrorIs(t, err, structure.ErrDimensionalityMismatch)
}

func mustPrecedence(t *testing.T, major ...int) structure.Precedence {
	t.Helper()
	p, err := structure.NewPrecedence(major...)
	require.NoError(t, err)

	return p
}

// TestIterator_ZeroValueRange rejects a rank-0 range instead of yielding one
// empty coordinate.
func TestIterator_ZeroValueRange(t *testing.T) {
	_, err := structure.NewIterator(structure.Range{}, structure.Precedence{}, structure.Forward)
	require.ErrorIs(t, err, structure.ErrDimensionalityMismatch)
	require.Empty(t, Collect(structure.Range{}.Forward()))
}
