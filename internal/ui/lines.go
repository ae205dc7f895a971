package ui

import "ndca/internal/core"

// Line is one row of HUD text. Headers start a parameter group.
type Line struct {
	Text   string
	Header bool
}

// Lines lays out a parameter snapshot top to bottom, with a blank row between
// groups and status appended as a final group when non-empty.
func Lines(snap core.ParameterSnapshot, status ...string) []Line {
	var out []Line
	for i, group := range snap.Groups {
		if i > 0 {
			out = append(out, Line{})
		}
		out = append(out, Line{Text: group.Name, Header: true})
		for _, p := range group.Params {
			out = append(out, Line{Text: p.Label + ": " + p.Value})
		}
	}
	if len(status) > 0 {
		if len(out) > 0 {
			out = append(out, Line{})
		}
		for _, s := range status {
			out = append(out, Line{Text: s})
		}
	}
	return out
}

// MinPanelHeight keeps the panel readable next to small slabs.
const MinPanelHeight = 480

// PanelHeight is the HUD panel height beside a slab of slabHeight cells drawn
// at scale.
func PanelHeight(slabHeight, scale int) int {
	return max(slabHeight*scale, MinPanelHeight)
}
