package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggingConfig configures logger construction.
type LoggingConfig struct {
	// Verbose switches to a development logger at debug level.
	Verbose bool
}

// NewLogger constructs the process logger. CLI runs default to a
// production logger writing to stderr so flag output on stdout stays
// machine-readable.
func NewLogger(cfg LoggingConfig) (*zap.Logger, error) {
	if cfg.Verbose {
		dev := zap.NewDevelopmentConfig()
		dev.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return dev.Build()
	}
	prod := zap.NewProductionConfig()
	prod.OutputPaths = []string{"stderr"}
	return prod.Build()
}
