package loop_test

import (
	"testing"

	"github.com/katalvlaran/ndstruct/loop"
	"github.com/katalvlaran/ndstruct/structure"
	"github.com/stretchr/testify/require"
)

type visit struct {
	coord []int
	off   int
}

func walkAll(t *testing.T, s structure.Structure, o loop.Order, dir structure.Direction) []visit {
	t.Helper()
	var out []visit
	err := loop.Walk(s, o, dir, func(c []int, off int) bool {
		out = append(out, visit{coord: append([]int(nil), c...), off: off})
		return true
	})
	require.NoError(t, err)

	return out
}

// TestWalk_ViewOffsets checks the fused fast path on the 3×4 window scenario.
func TestWalk_ViewOffsets(t *testing.T) {
	e, err := structure.NewExtent(3, 4)
	require.NoError(t, err)
	v, err := structure.Of(e).View(mustRange(t, []int{1, 1}, 2, 2))
	require.NoError(t, err)

	var offs []int
	for _, x := range walkAll(t, v, loop.RowMajor, structure.Forward) {
		offs = append(offs, x.off)
	}
	require.Equal(t, []int{5, 6, 9, 10}, offs)

	offs = offs[:0]
	for _, x := range walkAll(t, v, loop.ColumnMajor, structure.Backward) {
		offs = append(offs, x.off)
	}
	require.Equal(t, []int{10, 6, 9, 5}, offs)
}

// TestWalk_AgreesWithOffset checks fast and fallback paths against Structure.Offset.
func TestWalk_AgreesWithOffset(t *testing.T) {
	e1, _ := structure.NewExtent(6)
	e3, _ := structure.NewBandedExtent(2, 2, 3, 2)
	e4, _ := structure.NewExtent(2, 1, 3, 2)
	e2, _ := structure.NewExtent(4, 3)
	induced, err := structure.Of(e2).Induced([]int{3, 1})
	require.NoError(t, err)

	for name, s := range map[string]structure.Structure{
		"Rank1":   structure.Of(e1),
		"Rank3":   structure.Of(e3),
		"Rank4":   structure.Of(e4),
		"Induced": induced,
	} {
		t.Run(name, func(t *testing.T) {
			n := 0
			for _, o := range orders {
				for _, dir := range directions {
					for _, x := range walkAll(t, s, o, dir) {
						want, err := s.Offset(x.coord...)
						require.NoError(t, err)
						require.Equal(t, want, x.off, "coord %v", x.coord)
						n++
					}
				}
			}
			require.Equal(t, 4*s.Extent().Elements(), n)
		})
	}
}

// TestWalk_EarlyStop stops after the first visit.
func TestWalk_EarlyStop(t *testing.T) {
	e, _ := structure.NewExtent(2, 2, 2, 2)
	calls := 0
	err := loop.Walk(structure.Of(e), loop.RowMajor, structure.Forward, func([]int, int) bool {
		calls++
		return false
	})
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	err = loop.Walk(structure.Of(e), loop.Order(3), structure.Forward, func([]int, int) bool { return true })
	require.ErrorIs(t, err, structure.ErrInvalidPrecedence)
}

// TestWalk_ZeroValueStructure reports an error and never calls fn.
func TestWalk_ZeroValueStructure(t *testing.T) {
	calls := 0
	err := loop.Walk(structure.Structure{}, loop.RowMajor, structure.Forward, func([]int, int) bool {
		calls++
		return true
	})
	require.ErrorIs(t, err, structure.ErrDimensionalityMismatch)
	require.Zero(t, calls)
}
