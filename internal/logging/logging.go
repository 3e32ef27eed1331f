// Package logging adapts zap to the calculation.Logger interface.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production zap logger. debug lowers the level to Debug.
func New(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Adapter satisfies calculation.Logger on top of a zap SugaredLogger
type Adapter struct {
	sugar *zap.SugaredLogger
}

// NewAdapter wraps a zap logger. A nil logger yields zap.NewNop.
func NewAdapter(logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{sugar: logger.Sugar()}
}

func (a *Adapter) Debugf(format string, args ...interface{}) { a.sugar.Debugf(format, args...) }
func (a *Adapter) Infof(format string, args ...interface{})  { a.sugar.Infof(format, args...) }
func (a *Adapter) Warnf(format string, args ...interface{})  { a.sugar.Warnf(format, args...) }
func (a *Adapter) Errorf(format string, args ...interface{}) { a.sugar.Errorf(format, args...) }
