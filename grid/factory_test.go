// SPDX-License-Identifier: MIT

package grid_test

import (
	"testing"

	"github.com/katalvlaran/ndstruct/grid"
	"github.com/katalvlaran/ndstruct/structure"
	"github.com/stretchr/testify/require"
)

// image is a caller-defined wrapper that keeps its own type across views.
type image struct {
	*grid.Grid[float32]
}

func newImage(s structure.Structure, b grid.Buffer[float32]) image {
	g, err := grid.Wrap(s, b)
	if err != nil {
		panic(err)
	}

	return image{Grid: g}
}

func (im image) crop(r structure.Range) (image, error) {
	return grid.Derive(im.Grid, func(s structure.Structure) (structure.Structure, error) {
		return s.View(r)
	}, newImage)
}

func TestDerive_KeepsWrapperType(t *testing.T) {
	e, err := structure.NewExtent(4, 4)
	require.NoError(t, err)
	im := image{Grid: grid.New[float32](e)}
	require.NoError(t, im.Fill(1))

	c, err := im.crop(mustRange(t, []int{1, 1}, 2, 2))
	require.NoError(t, err)
	require.Equal(t, 4, c.Extent().Elements())

	require.NoError(t, c.Fill(7))
	v, err := im.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, float32(7), v)
	v, err = im.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, float32(1), v)

	_, err = im.crop(mustRange(t, []int{3, 3}, 2, 2))
	require.ErrorIs(t, err, structure.ErrIndexOutOfBounds)
}
