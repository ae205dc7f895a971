package experiment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndca/internal/neighborhood"
	"ndca/internal/rule"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestFromMapNilKeepsDefaults(t *testing.T) {
	c, err := FromMap(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestConfigMapRoundTrip(t *testing.T) {
	cases := map[string]Config{
		"default": DefaultConfig(),
		"relative 3d": {
			Dimensions: []int{12, 10, 8},
			Topology:   neighborhood.VonNeumann,
			Range:      2,
			Birth:      rule.Relative(0.3),
			Survival:   rule.Relative(0.15, 0.3),
			Density:    0.125,
			Seed:       -42,
			Steps:      17,
			Interval:   3,
		},
		"empty survival": {
			Dimensions: []int{5},
			Topology:   neighborhood.Moore,
			Range:      1,
			Birth:      rule.Absolute(1),
			Survival:   rule.Absolute(),
			Density:    1,
			Seed:       0,
			Steps:      0,
			Interval:   1,
		},
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := FromMap(want.ToMap())
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestFromMapRuleNotation(t *testing.T) {
	c, err := FromMap(map[string]string{"rule": "B36/S23", "dims": "16x16x4"})
	require.NoError(t, err)
	assert.Equal(t, rule.Absolute(3, 6), c.Birth)
	assert.Equal(t, rule.Absolute(2, 3), c.Survival)
	assert.Equal(t, []int{16, 16, 4}, c.Dimensions)

	c, err = FromMap(map[string]string{"rule": "B36/S23", "birth": "0.25"})
	require.NoError(t, err)
	assert.Equal(t, rule.Relative(0.25), c.Birth, "birth overrides the notation")
	assert.Equal(t, rule.Absolute(2, 3), c.Survival)
}

func TestFromMapErrorsNameTheKey(t *testing.T) {
	cases := []struct {
		key, value string
		sentinel   error
	}{
		{"dims", "64xfoo", nil},
		{"dims", "0x4", ErrNonPositiveDimension},
		{"topology", "hex", neighborhood.ErrUnknownTopology},
		{"range", "0", neighborhood.ErrInvalidRange},
		{"rule", "X3/S23", rule.ErrNotation},
		{"birth", "3,0.5", rule.ErrMixedThresholds},
		{"density", "1.5", ErrDensityRange},
		{"seed", "abc", nil},
		{"steps", "-1", ErrNegativeSteps},
		{"interval", "0", ErrInterval},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			_, err := FromMap(map[string]string{tc.key: tc.value})
			require.Error(t, err)
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "got %T", err)
			assert.Equal(t, tc.key, cfgErr.Field)
			if tc.sentinel != nil {
				assert.ErrorIs(t, err, tc.sentinel)
			}
		})
	}
}

func TestParseDims(t *testing.T) {
	dims, err := ParseDims("16X8x 4")
	require.NoError(t, err)
	assert.Equal(t, []int{16, 8, 4}, dims)
	assert.Equal(t, "16x8x4", FormatDims(dims))

	_, err = ParseDims("")
	assert.ErrorIs(t, err, ErrNoDimensions)
	_, err = ParseDims("8x-1")
	assert.ErrorIs(t, err, ErrNonPositiveDimension)
}

func TestOverlayRuleDropsDefaultThresholds(t *testing.T) {
	defaults := map[string]string{"dims": "8x8", "birth": "0.2", "survival": "0.15"}

	merged := Overlay(defaults, map[string]string{"rule": "B3/S23"})
	assert.Equal(t, map[string]string{"dims": "8x8", "rule": "B3/S23"}, merged)
	assert.Equal(t, "0.2", defaults["birth"], "defaults are not modified")

	merged = Overlay(defaults, map[string]string{"birth": "0.3"})
	assert.Equal(t, "0.3", merged["birth"])
	assert.Equal(t, "0.15", merged["survival"])

	assert.Equal(t, map[string]string{"seed": "4"}, Overlay(nil, map[string]string{"seed": "4"}))
}
