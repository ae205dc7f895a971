// Package automaton exposes a running N-dimensional automaton through the
// core.Sim contract so the viewer can drive it frame by frame.
//
// The viewer draws one 2D slab at a time: the last two axes form the slab
// (width is the last axis), and every leading axis is flattened into a layer
// index. A 1D grid is shown as a single row.
package automaton

import (
	"fmt"
	"strconv"

	"ndca/internal/classify"
	"ndca/internal/core"
	"ndca/internal/experiment"
	"ndca/internal/rule"
	"ndca/internal/stepper"
)

// maxHistory bounds the samples kept for on-demand classification; the
// oldest samples are dropped first.
const maxHistory = 4096

// Automaton is a live, steppable experiment.
type Automaton struct {
	name string
	cfg  experiment.Config
	rule rule.Rule

	stepper *stepper.Stepper
	last    stepper.EnhancedMetrics
	history []stepper.EnhancedMetrics

	w, h   int
	layers int
	layer  int

	classification classify.Result
	classified     bool
}

// New validates cfg and builds the automaton seeded with cfg.Seed.
func New(name string, cfg experiment.Config) (*Automaton, error) {
	a := &Automaton{name: name, cfg: cfg}
	if err := a.rebuild(); err != nil {
		return nil, err
	}
	dims := cfg.Dimensions
	switch len(dims) {
	case 1:
		a.w, a.h, a.layers = dims[0], 1, 1
	default:
		a.w, a.h = dims[len(dims)-1], dims[len(dims)-2]
		a.layers = 1
		for _, d := range dims[:len(dims)-2] {
			a.layers *= d
		}
	}
	return a, nil
}

func (a *Automaton) rebuild() error {
	setup, err := experiment.Build(a.cfg)
	if err != nil {
		return err
	}
	s, err := stepper.New(setup.Grid, setup.Rule, setup.Offsets)
	if err != nil {
		return err
	}
	a.rule = setup.Rule
	a.stepper = s
	a.last = stepper.EnhancedMetrics{}
	a.Refresh()
	a.history = nil
	a.classified = false
	return nil
}

// Refresh recomputes the latest metrics from the grid as it stands. Call it
// after editing cells directly. The step counter and transition counts are
// kept.
func (a *Automaton) Refresh() {
	g := a.stepper.Grid()
	pop := g.Population()
	a.last.Population = pop
	a.last.Density = float64(pop) / float64(g.Len())
	a.last.Entropy = stepper.Entropy(pop, g.Len())
	a.last.Fingerprint = stepper.Fingerprint(g.Cells())
}

// Name returns the registered preset name.
func (a *Automaton) Name() string { return a.name }

// Size returns the dimensions of one slab.
func (a *Automaton) Size() core.Size { return core.Size{W: a.w, H: a.h} }

// Reset reseeds the grid and clears the history. The current layer is kept.
func (a *Automaton) Reset(seed int64) {
	a.cfg.Seed = seed
	if err := a.rebuild(); err != nil {
		// the config was validated by New and only the seed changed
		panic(fmt.Sprintf("automaton: rebuild after reset: %v", err))
	}
}

// Step advances one generation.
func (a *Automaton) Step() {
	m := a.stepper.StepEnhanced()
	a.last = m
	if m.Step%a.cfg.Interval != 0 {
		return
	}
	if len(a.history) == maxHistory {
		copy(a.history, a.history[1:])
		a.history = a.history[:maxHistory-1]
	}
	a.history = append(a.history, m)
}

// Cells returns the selected slab. The slice aliases the live grid and is
// only valid until the next Step.
func (a *Automaton) Cells() []uint8 {
	n := a.w * a.h
	start := a.layer * n
	return a.stepper.Grid().Cells()[start : start+n]
}

// Layers is the number of slabs the grid is cut into.
func (a *Automaton) Layers() int { return a.layers }

// Layer is the index of the slab Cells returns.
func (a *Automaton) Layer() int { return a.layer }

// SetLayer selects a slab, wrapping out of range indices.
func (a *Automaton) SetLayer(i int) {
	a.layer = core.WrapAxis(i, a.layers)
}

// Grid exposes the full live grid.
func (a *Automaton) Grid() *core.Grid { return a.stepper.Grid() }

// Config returns the configuration the automaton was built from, with the
// current seed.
func (a *Automaton) Config() experiment.Config { return a.cfg }

// Rule returns the resolved rule.
func (a *Automaton) Rule() rule.Rule { return a.rule }

// Metrics returns the statistics of the latest generation.
func (a *Automaton) Metrics() stepper.EnhancedMetrics { return a.last }

// History returns the sampled metrics since the last reset.
func (a *Automaton) History() []stepper.EnhancedMetrics { return a.history }

// Classify labels the run so far and caches the result for Parameters.
func (a *Automaton) Classify() classify.Result {
	a.classification = classify.Classify(a.history)
	a.classified = true
	return a.classification
}

// Classification returns the last result of Classify, if any since reset.
func (a *Automaton) Classification() (classify.Result, bool) {
	return a.classification, a.classified
}

// Parameters describes the automaton for the HUD.
func (a *Automaton) Parameters() core.ParameterSnapshot {
	setup := core.ParameterGroup{
		Name: "Automaton",
		Params: []core.Parameter{
			core.StringParam("dims", "Dims", experiment.FormatDims(a.cfg.Dimensions)),
			core.StringParam("rule", "Rule", a.rule.String()),
			core.StringParam("topology", "Topology", string(a.cfg.Topology)),
			core.IntParam("range", "Range", a.cfg.Range),
			core.FloatParam("density", "Seed density", a.cfg.Density),
			core.StringParam("seed", "Seed", strconv.FormatInt(a.cfg.Seed, 10)),
			core.StringParam("layer", "Layer", fmt.Sprintf("%d/%d", a.layer+1, a.layers)),
		},
	}
	m := a.last
	metrics := core.ParameterGroup{
		Name: "Metrics",
		Params: []core.Parameter{
			core.IntParam("step", "Step", m.Step),
			core.IntParam("population", "Population", m.Population),
			core.StringParam("density_now", "Density", strconv.FormatFloat(m.Density, 'f', 4, 64)),
			core.IntParam("births", "Births", m.Births),
			core.IntParam("deaths", "Deaths", m.Deaths),
			core.StringParam("entropy", "Entropy", strconv.FormatFloat(m.Entropy, 'f', 4, 64)),
			core.StringParam("fingerprint", "Fingerprint", fmt.Sprintf("%08x", m.Fingerprint)),
		},
	}
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{setup, metrics}}
	if a.classified {
		c := a.classification
		snap.Groups = append(snap.Groups, core.ParameterGroup{
			Name: "Classification",
			Params: []core.Parameter{
				core.StringParam("outcome", "Outcome", string(c.Outcome)),
				core.StringParam("class", "Class", string(c.Class)),
				core.StringParam("confidence", "Confidence", strconv.FormatFloat(c.Confidence, 'f', 2, 64)),
			},
		})
	}
	return snap
}
