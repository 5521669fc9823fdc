package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/modcore/appconf"
)

// stage tracks the Logger lifecycle: Unset → Active → Shutdown.
type stage int

const (
	stageUnset stage = iota
	stageActive
	stageShutdown
)

// consoleNames maps zerolog's wire level tags onto the fixed positional
// names of Level; ConsoleWriter hands us the wire tag, not our Level.
var consoleNames = map[string]string{
	zerolog.LevelDebugValue: "DEBUG",
	zerolog.LevelInfoValue:  "INFO",
	zerolog.LevelWarnValue:  "WARNING",
	zerolog.LevelErrorValue: "ERROR",
}

// Option configures a Logger before creation.
type Option func(*Logger)

// WithOutput redirects emitted records to w (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(l *Logger) { l.out = w }
}

// Logger is the staged process logger.
//
// It starts Unset; Init moves it to Active and snapshots the given
// appconf.Config; Shutdown retires it. Log outside the Active stage is a
// silent no-op. All methods are safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	stage stage
	cfg   appconf.Config
	out   io.Writer
	emit  zerolog.Logger
}

// New creates an Unset Logger writing to os.Stdout unless WithOutput says
// otherwise.
// Complexity: O(1)
func New(opts ...Option) *Logger {
	l := &Logger{out: os.Stdout}
	for _, opt := range opts {
		opt(l)
	}
	l.emit = newEmitter(l.out)

	return l
}

// newEmitter builds the zerolog backend pinned to the "[LEVEL] message"
// line layout: no timestamp, no colors, level first.
func newEmitter(out io.Writer) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:     out,
		NoColor: true,
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FormatLevel: func(i interface{}) string {
			if tag, ok := i.(string); ok {
				if name, known := consoleNames[tag]; known {
					return "[" + name + "]"
				}
			}

			return "[UNKNOWN]"
		},
		FormatMessage: func(i interface{}) string {
			return fmt.Sprint(i)
		},
	}

	return zerolog.New(cw)
}

// Init registers cfg and moves the Logger to the Active stage, then emits
// one INFO record ("Logger initialized"). The Config is copied by value, so
// the caller's instance is free to go out of scope afterwards.
func (l *Logger) Init(cfg appconf.Config) {
	l.mu.Lock()
	l.cfg = cfg
	l.stage = stageActive
	l.mu.Unlock()

	_ = l.Log(Info, "Logger initialized")
}

// Log emits one "[LEVEL] message" line when the Logger is Active and the
// registered Config has debug enabled. Outside the Active stage the call is
// a silent no-op. An out-of-range level fails with ErrInvalidLevel before
// any stage check.
func (l *Logger) Log(level Level, message string) error {
	if !level.Valid() {
		return ErrInvalidLevel
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stage != stageActive || !l.cfg.Debug() {
		return nil
	}
	l.emit.WithLevel(level.zero()).Msg(message)

	return nil
}

// Shutdown emits one final INFO record ("Logger shutting down"), then clears
// the Config snapshot and retires the Logger. Subsequent Log calls are
// no-ops; a later Init may reactivate the Logger.
func (l *Logger) Shutdown() {
	_ = l.Log(Info, "Logger shutting down")

	l.mu.Lock()
	l.cfg = appconf.Config{}
	l.stage = stageShutdown
	l.mu.Unlock()
}
