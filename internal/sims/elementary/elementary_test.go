package elementary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndca/internal/experiment"
	"ndca/internal/stepper"
)

func TestRule90FromSingleCell(t *testing.T) {
	e, err := New(map[string]string{"dims": "9", "h": "4"})
	require.NoError(t, err)

	e.Step()
	e.Step()
	e.Step()

	want := []uint8{
		0, 1, 0, 1, 0, 1, 0, 1, 0, // generation 3
		0, 0, 1, 0, 0, 0, 1, 0, 0, // generation 2
		0, 0, 0, 1, 0, 1, 0, 0, 0, // generation 1
		0, 0, 0, 0, 1, 0, 0, 0, 0, // seed
	}
	assert.Equal(t, want, e.Cells())
	assert.Equal(t, 3, e.Metrics().Step)
}

func TestResetClearsDiagram(t *testing.T) {
	e, err := New(map[string]string{"dims": "16", "h": "3"})
	require.NoError(t, err)
	e.Step()
	e.Reset(1)

	cells := e.Cells()
	assert.Equal(t, uint8(1), cells[8])
	for i, v := range cells {
		if i != 8 {
			assert.Zero(t, v, "cell %d", i)
		}
	}
}

func TestRejectsNonLineGrid(t *testing.T) {
	_, err := New(map[string]string{"dims": "8x8"})
	var cfgErr *experiment.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "dims", cfgErr.Field)

	_, err = New(map[string]string{"h": "0"})
	assert.ErrorIs(t, err, experiment.ErrNonPositiveDimension)
}

func TestSeededCellCountsInMetrics(t *testing.T) {
	e, err := New(map[string]string{"dims": "16", "h": "2"})
	require.NoError(t, err)
	m := e.Metrics()
	assert.Equal(t, 1, m.Population)
	assert.Equal(t, stepper.Fingerprint(e.Grid().Cells()), m.Fingerprint)

	e.Step()
	e.Reset(5)
	assert.Equal(t, 1, e.Metrics().Population)
	assert.Zero(t, e.Metrics().Step)
}
