package logging

import (
	"testing"

	"github.com/rgehrsitz/firecalc/internal/calculation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ calculation.Logger = (*Adapter)(nil)

func TestAdapter_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	a := NewAdapter(zap.New(core))

	a.Debugf("debug %d", 1)
	a.Infof("info %s", "two")
	a.Warnf("warn")
	a.Errorf("error %v", true)

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "debug 1", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "info two", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "error true", entries[3].Message)
}

func TestAdapter_NilLogger(t *testing.T) {
	a := NewAdapter(nil)
	assert.NotPanics(t, func() { a.Warnf("dropped %d", 1) })
}

func TestAdapter_EngineWarnsOnNonConvergence(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	engine := calculation.NewEngine()
	engine.Solver.MaxIterations = 1
	engine.SetLogger(NewAdapter(zap.New(core)))

	solution, err := engine.SolveGrossIncome(decimal.NewFromInt(5000))
	require.NoError(t, err)
	assert.False(t, solution.Converged)
	assert.Equal(t, 1, logs.FilterMessageSnippet("did not converge").Len())
}

func TestNew(t *testing.T) {
	logger, err := New(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = New(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
