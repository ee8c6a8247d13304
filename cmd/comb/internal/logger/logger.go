// Package logger implements an interface behind which a third party,
// levelled logger can sit, so the rest of the CLI depends on the interface
// rather than zap directly.
//
// Grounded on FollowTheProcess-spok's logger/logger.go (same Logger
// interface shape, same zap.NewDevelopmentConfig()-backed ZapLogger).
package logger

import "go.uber.org/zap"

// Logger is the interface behind which a debug logger can sit.
type Logger interface {
	// Sync flushes the logs to stderr.
	Sync() error
	// Debug outputs a debug level log line.
	Debug(format string, args ...any)
}

// ZapLogger is a Logger that uses zap under the hood.
type ZapLogger struct {
	inner *zap.SugaredLogger
}

// NewZapLogger builds and returns a ZapLogger. Debug level is only enabled
// when verbose is true.
func NewZapLogger(verbose bool) (*ZapLogger, error) {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	built, err := cfg.Build(zap.IncreaseLevel(level))
	if err != nil {
		return nil, err
	}

	return &ZapLogger{inner: built.Sugar()}, nil
}

// Sync flushes the logs.
func (z *ZapLogger) Sync() error {
	return z.inner.Sync()
}

// Debug outputs a debug level log line.
func (z *ZapLogger) Debug(format string, args ...any) {
	z.inner.Debugf(format, args...)
}
