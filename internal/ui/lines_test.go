package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ndca/internal/core"
)

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Automaton", Params: []core.Parameter{core.StringParam("rule", "Rule", "B3/S23")}},
		{Name: "Metrics", Params: []core.Parameter{core.IntParam("step", "Step", 12), core.IntParam("population", "Population", 40)}},
	}}

	got := Lines(snap, "paused")
	assert.Equal(t, []Line{
		{Text: "Automaton", Header: true},
		{Text: "Rule: B3/S23"},
		{},
		{Text: "Metrics", Header: true},
		{Text: "Step: 12"},
		{Text: "Population: 40"},
		{},
		{Text: "paused"},
	}, got)
}

func TestLinesEmpty(t *testing.T) {
	assert.Empty(t, Lines(core.ParameterSnapshot{}))
	assert.Equal(t, []Line{{Text: "running"}}, Lines(core.ParameterSnapshot{}, "running"))
}

func TestPanelHeight(t *testing.T) {
	assert.Equal(t, MinPanelHeight, PanelHeight(10, 4))
	assert.Equal(t, MinPanelHeight, PanelHeight(120, 4))
	assert.Equal(t, 484, PanelHeight(121, 4))
}
