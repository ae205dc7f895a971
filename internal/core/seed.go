package core

import "fmt"

// Source is a deterministic stream of values in [0, 1).
type Source interface {
	Next() float64
}

// Randomize overwrites every cell, in flat order, with 1 when the next source
// value falls below density and 0 otherwise.
func Randomize(g *Grid, src Source, density float64) error {
	if density < 0 || density > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidDensity, density)
	}
	for i := range g.data {
		if src.Next() < density {
			g.data[i] = 1
			continue
		}
		g.data[i] = 0
	}
	return nil
}

// Place sets every cell at origin+offset to 1, wrapping around the torus.
// Each offset must have the grid's rank.
func Place(g *Grid, origin []int, pattern [][]int) {
	coord := make([]int, len(origin))
	for _, off := range pattern {
		for i := range coord {
			coord[i] = origin[i] + off[i]
		}
		g.Set(coord, 1)
	}
}
