package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgcore "ndca/pkg/core"
)

func TestNewGridErrors(t *testing.T) {
	cases := []struct {
		name string
		dims []int
	}{
		{"NoAxes", nil},
		{"Zero", []int{4, 0}},
		{"Negative", []int{-1, 3, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(tc.dims...)
			require.Nil(t, g)
			require.True(t, errors.Is(err, ErrInvalidDimension), "got %v", err)
		})
	}
}

func TestNewGridStrides(t *testing.T) {
	g, err := NewGrid(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{12, 4, 1}, g.Strides())
	assert.Equal(t, 24, g.Len())
	assert.Equal(t, 3, g.Rank())
	assert.Equal(t, 0, g.Population())
	assert.Equal(t, 23, g.Index([]int{1, 2, 3}))
}

func TestCoordInvertsIndex(t *testing.T) {
	g, err := NewGrid(3, 5, 2)
	require.NoError(t, err)
	var buf []int
	for idx := 0; idx < g.Len(); idx++ {
		buf = g.Coord(idx, buf)
		require.Equal(t, idx, g.Index(buf))
	}
}

func TestIndexPanicsOnRankMismatch(t *testing.T) {
	g, err := NewGrid(4, 4)
	require.NoError(t, err)
	require.Panics(t, func() { g.Index([]int{1}) })
	require.Panics(t, func() { g.Wrap([]int{1, 2, 3}) })
}

func TestWrapIdempotentAndInRange(t *testing.T) {
	g, err := NewGrid(5, 7, 3)
	require.NoError(t, err)
	coords := [][]int{
		{0, 0, 0},
		{-1, -1, -1},
		{5, 7, 3},
		{-13, 22, -4},
		{104, -71, 9},
	}
	dims := g.Dimensions()
	for _, c := range coords {
		w := g.Wrap(c)
		require.Equal(t, w, g.Wrap(w), "wrap of %v not idempotent", c)
		for i, v := range w {
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, dims[i])
		}
	}
	assert.Equal(t, []int{4, 6, 2}, g.Wrap([]int{-1, -1, -1}))
	assert.Equal(t, []int{-1, -1, -1}, coords[1], "wrap must not mutate its input")
}

func TestGetSetWrapAround(t *testing.T) {
	g, err := NewGrid(4, 4)
	require.NoError(t, err)
	g.Set([]int{-1, 4}, 1)
	assert.Equal(t, uint8(1), g.Get([]int{3, 0}))
	assert.Equal(t, 1, g.Population())
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)
	g.Set([]int{1, 1}, 1)
	c := g.Clone()
	require.True(t, g.Equal(c))
	c.Set([]int{0, 0}, 1)
	assert.False(t, g.Equal(c))
	assert.Equal(t, 1, g.Population())
	assert.Equal(t, 2, c.Population())
}

func TestGridFromCells(t *testing.T) {
	g, err := GridFromCells([]int{2, 2}, []uint8{1, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Population())

	_, err = GridFromCells([]int{2, 2}, []uint8{1})
	require.ErrorIs(t, err, ErrCellCount)
}

func TestRandomizeDeterministic(t *testing.T) {
	a, _ := NewGrid(16, 16)
	b, _ := NewGrid(16, 16)
	require.NoError(t, Randomize(a, pkgcore.NewRNG(9), 0.4))
	require.NoError(t, Randomize(b, pkgcore.NewRNG(9), 0.4))
	require.True(t, a.Equal(b))
	require.Greater(t, a.Population(), 0)
	require.Less(t, a.Population(), a.Len())

	require.ErrorIs(t, Randomize(a, pkgcore.NewRNG(1), 1.5), ErrInvalidDensity)
}

func TestPlaceWraps(t *testing.T) {
	g, _ := NewGrid(5, 5)
	Place(g, []int{4, 4}, [][]int{{0, 0}, {0, 1}, {1, 0}})
	assert.Equal(t, uint8(1), g.Get([]int{4, 4}))
	assert.Equal(t, uint8(1), g.Get([]int{4, 0}))
	assert.Equal(t, uint8(1), g.Get([]int{0, 4}))
	assert.Equal(t, 3, g.Population())
}
