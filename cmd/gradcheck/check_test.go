package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gradtensor/autodiff"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_Default(t *testing.T) {
	res, err := run(defaultConfig(), discardLogger())
	require.NoError(t, err)
	assert.InDelta(t, res.Analytic, res.Numerical, 1e-4)
	assert.Greater(t, res.Loss, 0.0, "inputs are drawn from [0, 1)")
}

func TestRun_EveryEntryBothStrategies(t *testing.T) {
	for _, s := range []autodiff.Strategy{autodiff.Recursive, autodiff.Topological} {
		cfg := defaultConfig()
		cfg.Batch, cfg.In, cfg.Out = 4, 3, 5
		cfg.Backward.Strategy = s

		for row := 0; row < cfg.In; row++ {
			for col := 0; col < cfg.Out; col++ {
				cfg.Row, cfg.Col = row, col
				_, err := run(cfg, discardLogger())
				require.NoError(t, err, "strategy %v entry (%d,%d)", s, row, col)
			}
		}
	}
}

func TestRun_EntryOutOfRange(t *testing.T) {
	cfg := defaultConfig()
	cfg.Row = cfg.In
	_, err := run(cfg, discardLogger())
	require.Error(t, err)
}

func TestRun_Deterministic(t *testing.T) {
	a, err := run(defaultConfig(), discardLogger())
	require.NoError(t, err)
	b, err := run(defaultConfig(), discardLogger())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_TightToleranceFails(t *testing.T) {
	cfg := defaultConfig()
	cfg.Delta = 1e-1
	cfg.Tolerance = -1 // any difference, even zero, fails
	_, err := run(cfg, discardLogger())
	require.ErrorIs(t, err, errGradientMismatch)
}

func TestRun_Descent(t *testing.T) {
	cfg := defaultConfig()
	cfg.Steps = 5
	cfg.LR = 0.1

	res, err := run(cfg, discardLogger())
	require.NoError(t, err)
	require.Len(t, res.Descent, 5)
	assert.Equal(t, res.Loss, res.Descent[0])
	for i := 1; i < len(res.Descent); i++ {
		assert.Less(t, res.Descent[i], res.Descent[i-1], "loss must decrease at step %d", i)
	}
}
