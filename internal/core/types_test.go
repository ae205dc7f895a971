package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type stubSim struct{ name string }

func (s stubSim) Name() string   { return s.name }
func (s stubSim) Size() Size     { return Size{W: 1, H: 1} }
func (s stubSim) Reset(int64)    {}
func (s stubSim) Step()          {}
func (s stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) (Sim, error) { return stubSim{}, nil })
	Register("nil-factory", nil)
	_, ok := Sims()["nil-factory"]
	require.False(t, ok)

	Register("zz-stub", func(map[string]string) (Sim, error) { return stubSim{name: "zz-stub"}, nil })
	t.Cleanup(func() { delete(sims, "zz-stub") })

	sim, err := NewSim("zz-stub", nil)
	require.NoError(t, err)
	require.Equal(t, "zz-stub", sim.Name())
	require.Contains(t, SimNames(), "zz-stub")

	_, err = NewSim("missing", nil)
	require.Error(t, err)
}
