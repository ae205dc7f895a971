package core

import (
	"bytes"
	"fmt"
	"slices"
)

// Grid stores an N-dimensional toroidal grid of byte-sized cell values in
// row-major order (the last axis varies fastest).
type Grid struct {
	dims    []int
	strides []int
	data    []uint8
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(dims ...int) (*Grid, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: at least one axis is required", ErrInvalidDimension)
	}
	size := 1
	for axis, d := range dims {
		if d <= 0 {
			return nil, fmt.Errorf("%w: axis %d has size %d", ErrInvalidDimension, axis, d)
		}
		size *= d
	}
	g := &Grid{
		dims:    slices.Clone(dims),
		strides: make([]int, len(dims)),
		data:    make([]uint8, size),
	}
	stride := 1
	for i := len(dims) - 1; i >= 0; i-- {
		g.strides[i] = stride
		stride *= dims[i]
	}
	return g, nil
}

// GridFromCells rebuilds a grid from its dimensions and a flat cell buffer,
// as captured by a snapshot. The buffer is copied.
func GridFromCells(dims []int, cells []uint8) (*Grid, error) {
	g, err := NewGrid(dims...)
	if err != nil {
		return nil, err
	}
	if len(cells) != len(g.data) {
		return nil, fmt.Errorf("%w: got %d cells, dimensions %v need %d", ErrCellCount, len(cells), dims, len(g.data))
	}
	copy(g.data, cells)
	return g, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Dimensions returns a copy of the axis sizes.
func (g *Grid) Dimensions() []int { return slices.Clone(g.dims) }

// Strides returns a copy of the per-axis strides.
func (g *Grid) Strides() []int { return slices.Clone(g.strides) }

// Rank reports the number of axes.
func (g *Grid) Rank() int { return len(g.dims) }

// Len reports the total number of cells.
func (g *Grid) Len() int { return len(g.data) }

// Index returns the flat slice index for an already wrapped coordinate.
// It panics if the coordinate rank does not match the grid.
func (g *Grid) Index(coord []int) int {
	if len(coord) != len(g.dims) {
		panic(fmt.Sprintf("core: coordinate %v has rank %d, grid has rank %d", coord, len(coord), len(g.dims)))
	}
	idx := 0
	for i, c := range coord {
		idx += c * g.strides[i]
	}
	return idx
}

// Wrap applies toroidal wrapping to the provided coordinate and returns a new
// coordinate with every component in [0, dimension).
func (g *Grid) Wrap(coord []int) []int {
	if len(coord) != len(g.dims) {
		panic(fmt.Sprintf("core: coordinate %v has rank %d, grid has rank %d", coord, len(coord), len(g.dims)))
	}
	out := make([]int, len(coord))
	for i, c := range coord {
		out[i] = WrapAxis(c, g.dims[i])
	}
	return out
}

// WrapAxis reduces c modulo d, correcting for negative values.
func WrapAxis(c, d int) int {
	return (c%d + d) % d
}

// Coord decomposes a flat index into a coordinate, writing into dst when it
// has the right length.
func (g *Grid) Coord(idx int, dst []int) []int {
	if len(dst) != len(g.dims) {
		dst = make([]int, len(g.dims))
	}
	for i, s := range g.strides {
		dst[i] = idx / s
		idx -= dst[i] * s
	}
	return dst
}

// Get returns the value at coord after wrapping it onto the torus.
func (g *Grid) Get(coord []int) uint8 {
	return g.data[g.Index(g.Wrap(coord))]
}

// Set stores v at coord after wrapping it onto the torus.
func (g *Grid) Set(coord []int, v uint8) {
	g.data[g.Index(g.Wrap(coord))] = v
}

// Clone returns an independent deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{
		dims:    slices.Clone(g.dims),
		strides: slices.Clone(g.strides),
		data:    slices.Clone(g.data),
	}
}

// Population counts the non-zero cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// SameShape reports whether o has identical dimensions.
func (g *Grid) SameShape(o *Grid) bool {
	return slices.Equal(g.dims, o.dims)
}

// Equal reports whether o has the same shape and cell values.
func (g *Grid) Equal(o *Grid) bool {
	return g.SameShape(o) && bytes.Equal(g.data, o.data)
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	clear(g.data)
}
