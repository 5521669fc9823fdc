package logging

import (
	"sync/atomic"

	"github.com/katalvlaran/modcore/appconf"
)

// defaultLogger is the process-wide instance behind the package-level
// Init/Log/Shutdown helpers.
var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// Default returns the process-wide Logger.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide Logger. A nil argument is ignored.
// Meant for wiring a custom output writer, mostly in tests.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// Init activates the process-wide Logger with cfg.
func Init(cfg appconf.Config) {
	Default().Init(cfg)
}

// Log records one message through the process-wide Logger.
func Log(level Level, message string) error {
	return Default().Log(level, message)
}

// Shutdown retires the process-wide Logger.
func Shutdown() {
	Default().Shutdown()
}
