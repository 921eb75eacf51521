package plotutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLossCurveWritesFile(t *testing.T) {
	history := []float64{10, 5, 2.5, 1.2, 0.6, 0.3}
	path := filepath.Join(t.TempDir(), "loss.png")

	require.NoError(t, LossCurve(history, Window{}, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestLossCurveWindow(t *testing.T) {
	history := []float64{100, 10, 1, 0.1}
	path := filepath.Join(t.TempDir(), "tail.png")

	assert.NoError(t, LossCurve(history, Window{Start: 2}, path))
	assert.NoError(t, LossCurve(history, Window{Start: 1, End: 3}, path))
}

func TestLossCurveValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loss.png")

	assert.ErrorIs(t, LossCurve(nil, Window{}, path), ErrInvalidArgument)

	history := []float64{1, 2, 3}
	assert.ErrorIs(t, LossCurve(history, Window{Start: -1}, path), ErrInvalidArgument)
	assert.ErrorIs(t, LossCurve(history, Window{Start: 2, End: 2}, path), ErrInvalidArgument)
	assert.ErrorIs(t, LossCurve(history, Window{End: 4}, path), ErrInvalidArgument)
}
