package app

import (
	"ndca/internal/core"
	"ndca/internal/ui"
)

// WindowSize is the logical screen size for a slab drawn at scale with a HUD
// panel of hudWidth pixels to its right.
func WindowSize(slab core.Size, scale, hudWidth int) (int, int) {
	w, h := slab.W*scale, slab.H*scale
	if hudWidth > 0 {
		w += hudWidth
		h = ui.PanelHeight(slab.H, scale)
	}
	return w, h
}
