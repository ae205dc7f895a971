// Package life registers Conway's Game of Life on a 2D torus.
package life

import (
	"ndca/internal/automaton"
	"ndca/internal/core"
	"ndca/internal/experiment"
)

// Defaults are the preset's config keys; caller keys override them.
var Defaults = map[string]string{
	"dims":     "128x128",
	"topology": "moore",
	"range":    "1",
	"rule":     "B3/S23",
	"density":  "0.35",
}

// New builds the preset with cfg applied over Defaults.
func New(cfg map[string]string) (*automaton.Automaton, error) {
	c, err := experiment.FromMap(experiment.Overlay(Defaults, cfg))
	if err != nil {
		return nil, err
	}
	return automaton.New("life", c)
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return New(cfg)
	})
}
