package perf

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package logger. It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs l as the package logger. Call once at process
// startup, before any tracing starts.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Log is a Tracer that emits debug-level events through the package
// logger.
type Log struct{}

func (Log) Begin(name string) {
	Logger().Debug("module lookup", zap.String("module", name))
}

func (Log) CacheHit(name string) {
	Logger().Debug("module cache hit", zap.String("module", name))
}

func (Log) ResolveStart(name string) {
	Logger().Debug("module resolve start", zap.String("module", name))
}

func (Log) ResolveEnd(name string) {
	Logger().Debug("module resolve end", zap.String("module", name))
}
