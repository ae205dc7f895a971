// Package stepper advances a grid one generation at a time under a totalistic
// rule and reports per-step statistics.
//
// A Stepper owns two buffers of identical shape. Each step reads only the
// current buffer and writes only the next one, then the two are swapped by
// reference, so stepping never allocates.
package stepper

import (
	"fmt"

	"ndca/internal/core"
	"ndca/internal/neighborhood"
	"ndca/internal/rule"
)

// Stepper holds the double buffer and the step counter of one evolution.
type Stepper struct {
	cur, next *core.Grid
	rule      rule.Rule
	offsets   neighborhood.Offsets

	dims    []int
	strides []int
	coord   []int
	step    int
	pop     int
}

// New clones initial into the stepper's current buffer. The caller's grid is
// never touched afterwards.
func New(initial *core.Grid, r rule.Rule, offsets neighborhood.Offsets) (*Stepper, error) {
	return Resume(initial, r, offsets, 0)
}

// Resume is New with the step counter primed to step, for continuing an
// evolution restored from a snapshot.
func Resume(grid *core.Grid, r rule.Rule, offsets neighborhood.Offsets, step int) (*Stepper, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if step < 0 {
		return nil, fmt.Errorf("%w: resume step %d", ErrInvalidSteps, step)
	}
	for i, off := range offsets {
		if len(off) != grid.Rank() {
			return nil, fmt.Errorf("%w: offset %d has rank %d, grid has rank %d", ErrRankMismatch, i, len(off), grid.Rank())
		}
	}
	cur := grid.Clone()
	next := grid.Clone()
	next.Clear()
	return &Stepper{
		cur:     cur,
		next:    next,
		rule:    r,
		offsets: offsets,
		dims:    cur.Dimensions(),
		strides: cur.Strides(),
		coord:   make([]int, cur.Rank()),
		step:    step,
		pop:     cur.Population(),
	}, nil
}

// Grid returns the current generation. It is only valid until the next call
// to Step or StepEnhanced and must not be modified.
func (s *Stepper) Grid() *core.Grid { return s.cur }

// Steps reports how many generations have been computed, including any
// offset supplied to Resume.
func (s *Stepper) Steps() int { return s.step }

// Population reports the live cell count of the current generation.
func (s *Stepper) Population() int { return s.pop }

// Step advances one generation and returns its metrics.
func (s *Stepper) Step() Metrics {
	births, deaths, pop := s.advance()
	s.cur, s.next = s.next, s.cur
	s.step++
	s.pop = pop
	size := s.cur.Len()
	return Metrics{
		Step:       s.step,
		Population: s.pop,
		Density:    float64(s.pop) / float64(size),
		Births:     births,
		Deaths:     deaths,
		Delta:      births - deaths,
	}
}

// StepEnhanced advances one generation and additionally reports entropy and
// the fingerprint of the new generation.
func (s *Stepper) StepEnhanced() EnhancedMetrics {
	m := s.Step()
	return EnhancedMetrics{
		Metrics:     m,
		Entropy:     Entropy(m.Population, s.cur.Len()),
		Fingerprint: Fingerprint(s.cur.Cells()),
	}
}

// advance writes the next generation into s.next and tallies the transitions
// against the current one. The population is counted rather than carried so
// that edits made through Grid().Cells() between steps are picked up.
func (s *Stepper) advance() (births, deaths, pop int) {
	cur := s.cur.Cells()
	nxt := s.next.Cells()
	dims, strides, coord := s.dims, s.strides, s.coord
	for idx, state := range cur {
		s.cur.Coord(idx, coord)
		count := 0
		for _, off := range s.offsets {
			j := 0
			for a, c := range coord {
				v := c + off[a]
				if v < 0 || v >= dims[a] {
					v = core.WrapAxis(v, dims[a])
				}
				j += v * strides[a]
			}
			if cur[j] != 0 {
				count++
			}
		}
		var out uint8
		if s.rule.ShouldBeAlive(state, count) {
			out = 1
		}
		nxt[idx] = out
		if out != 0 {
			pop++
		}
		switch {
		case state == 0 && out != 0:
			births++
		case state != 0 && out == 0:
			deaths++
		}
	}
	return births, deaths, pop
}
