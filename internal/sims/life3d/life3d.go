// Package life3d registers a 3D totalistic Life variant whose thresholds are
// fractions of the 26-cell Moore neighborhood, so they rescale with range.
package life3d

import (
	"ndca/internal/automaton"
	"ndca/internal/core"
	"ndca/internal/experiment"
)

// Defaults resolve to B5/S45 at range 1.
var Defaults = map[string]string{
	"dims":     "32x32x32",
	"topology": "moore",
	"range":    "1",
	"birth":    "0.2",
	"survival": "0.15,0.2",
	"density":  "0.2",
}

// New builds the preset with cfg applied over Defaults.
func New(cfg map[string]string) (*automaton.Automaton, error) {
	c, err := experiment.FromMap(experiment.Overlay(Defaults, cfg))
	if err != nil {
		return nil, err
	}
	return automaton.New("life3d", c)
}

func init() {
	core.Register("life3d", func(cfg map[string]string) (core.Sim, error) {
		return New(cfg)
	})
}
