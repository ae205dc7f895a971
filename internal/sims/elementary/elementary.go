// Package elementary registers a one-dimensional totalistic automaton drawn
// as a space-time diagram: the newest generation is the top row and older
// generations scroll downwards.
package elementary

import (
	"strconv"

	"ndca/internal/automaton"
	"ndca/internal/core"
	"ndca/internal/experiment"
)

// Defaults run B1/S1 at range 1, which is Wolfram rule 90, from a single
// live cell.
var Defaults = map[string]string{
	"dims":    "256",
	"range":   "1",
	"rule":    "B1/S1",
	"density": "0",
}

// Elementary embeds a 1D automaton and keeps the last h generations.
type Elementary struct {
	*automaton.Automaton
	w, h int
	cur  []uint8
}

// New builds the preset with cfg applied over Defaults. The "h" key sets how
// many generations are kept on screen.
func New(cfg map[string]string) (*Elementary, error) {
	merged := experiment.Overlay(Defaults, cfg)
	h := 256
	if v, ok := merged["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, &experiment.ConfigError{Field: "h", Value: v, Err: experiment.ErrNonPositiveDimension}
		}
		h = parsed
		delete(merged, "h")
	}
	c, err := experiment.FromMap(merged)
	if err != nil {
		return nil, err
	}
	if len(c.Dimensions) != 1 {
		return nil, &experiment.ConfigError{Field: "dims", Value: merged["dims"], Err: errNotLine}
	}
	a, err := automaton.New("elementary", c)
	if err != nil {
		return nil, err
	}
	e := &Elementary{Automaton: a, w: c.Dimensions[0], h: h, cur: make([]uint8, c.Dimensions[0]*h)}
	e.Reset(c.Seed)
	return e, nil
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the space-time diagram dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.cur }

// Reset reseeds the line and clears the diagram. With zero density the line
// starts from a single live cell in the middle.
func (e *Elementary) Reset(seed int64) {
	e.Automaton.Reset(seed)
	line := e.Automaton.Cells()
	if e.Config().Density == 0 {
		line[e.w/2] = 1
		e.Refresh()
	}
	clear(e.cur)
	copy(e.cur, line)
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	e.Automaton.Step()
	copy(e.cur[e.w:], e.cur[:e.w*(e.h-1)])
	copy(e.cur, e.Automaton.Cells())
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Sim, error) {
		return New(cfg)
	})
}
