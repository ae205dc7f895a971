package experiment

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"ndca/internal/neighborhood"
	"ndca/internal/rule"
)

// Config describes one automaton run: the grid shape, the dynamics and how
// long to evolve.
type Config struct {
	Dimensions []int
	Topology   neighborhood.Topology
	Range      int

	Birth    rule.ThresholdSpec
	Survival rule.ThresholdSpec

	Density float64
	Seed    int64

	Steps    int
	Interval int
}

// DefaultConfig returns Conway's Life on a 64x64 torus.
func DefaultConfig() Config {
	return Config{
		Dimensions: []int{64, 64},
		Topology:   neighborhood.Moore,
		Range:      1,
		Birth:      rule.Absolute(3),
		Survival:   rule.Absolute(2, 3),
		Density:    0.35,
		Seed:       1337,
		Steps:      200,
		Interval:   1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Missing keys keep their defaults. A malformed value is reported as a
// *ConfigError naming the key.
//
// "rule" takes B/S notation and sets both sets at once; "birth" and
// "survival" are applied after it and win when both are given.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["dims"]; ok {
		dims, err := ParseDims(v)
		if err != nil {
			return c, configErr("dims", v, err)
		}
		c.Dimensions = dims
	}
	if v, ok := cfg["topology"]; ok {
		t, err := neighborhood.ParseTopology(v)
		if err != nil {
			return c, configErr("topology", v, err)
		}
		c.Topology = t
	}
	if v, ok := cfg["range"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, configErr("range", v, err)
		}
		c.Range = parsed
	}
	if v, ok := cfg["rule"]; ok {
		birth, survival, err := rule.ParseNotation(v)
		if err != nil {
			return c, configErr("rule", v, err)
		}
		c.Birth, c.Survival = birth, survival
	}
	if v, ok := cfg["birth"]; ok {
		spec, err := rule.ParseThresholds(v)
		if err != nil {
			return c, configErr("birth", v, err)
		}
		c.Birth = spec
	}
	if v, ok := cfg["survival"]; ok {
		spec, err := rule.ParseThresholds(v)
		if err != nil {
			return c, configErr("survival", v, err)
		}
		c.Survival = spec
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, configErr("density", v, err)
		}
		c.Density = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, configErr("seed", v, err)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["steps"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, configErr("steps", v, err)
		}
		c.Steps = parsed
	}
	if v, ok := cfg["interval"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, configErr("interval", v, err)
		}
		c.Interval = parsed
	}
	return c, c.Validate()
}

// Overlay merges overrides onto a copy of defaults. An override "rule"
// replaces both threshold sets, so default "birth" and "survival" keys are
// dropped rather than being applied over it.
func Overlay(defaults, overrides map[string]string) map[string]string {
	merged := maps.Clone(defaults)
	if merged == nil {
		merged = map[string]string{}
	}
	if _, ok := overrides["rule"]; ok {
		delete(merged, "birth")
		delete(merged, "survival")
	}
	maps.Copy(merged, overrides)
	return merged
}

// ToMap is the inverse of FromMap. It always writes birth and survival, never
// rule, so relative thresholds survive the round trip.
func (c Config) ToMap() map[string]string {
	return map[string]string{
		"dims":     FormatDims(c.Dimensions),
		"topology": string(c.Topology),
		"range":    strconv.Itoa(c.Range),
		"birth":    c.Birth.String(),
		"survival": c.Survival.String(),
		"density":  strconv.FormatFloat(c.Density, 'g', -1, 64),
		"seed":     strconv.FormatInt(c.Seed, 10),
		"steps":    strconv.Itoa(c.Steps),
		"interval": strconv.Itoa(c.Interval),
	}
}

// Validate checks the fields that can be judged without building the grid.
// Threshold ranges depend on the neighbor count and are checked by Build.
func (c Config) Validate() error {
	if len(c.Dimensions) == 0 {
		return configErr("dims", FormatDims(c.Dimensions), ErrNoDimensions)
	}
	for _, d := range c.Dimensions {
		if d <= 0 {
			return configErr("dims", FormatDims(c.Dimensions), ErrNonPositiveDimension)
		}
	}
	if _, err := neighborhood.ParseTopology(string(c.Topology)); err != nil {
		return configErr("topology", string(c.Topology), err)
	}
	if c.Range < 1 {
		return configErr("range", strconv.Itoa(c.Range), neighborhood.ErrInvalidRange)
	}
	if c.Density < 0 || c.Density > 1 {
		return configErr("density", strconv.FormatFloat(c.Density, 'g', -1, 64), ErrDensityRange)
	}
	if c.Steps < 0 {
		return configErr("steps", strconv.Itoa(c.Steps), ErrNegativeSteps)
	}
	if c.Interval < 1 {
		return configErr("interval", strconv.Itoa(c.Interval), ErrInterval)
	}
	return nil
}

// ParseDims reads a shape such as "64x64" or "16x16x16".
func ParseDims(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrNoDimensions
	}
	parts := strings.Split(strings.ToLower(s), "x")
	dims := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", len(dims), err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("axis %d: %w", len(dims), ErrNonPositiveDimension)
		}
		dims = append(dims, d)
	}
	return dims, nil
}

// FormatDims is the inverse of ParseDims.
func FormatDims(dims []int) string {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "x")
}
