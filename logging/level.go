package logging

import (
	"errors"

	"github.com/rs/zerolog"
)

// ErrInvalidLevel indicates a Level outside the fixed DEBUG..ERROR set.
var ErrInvalidLevel = errors.New("logging: invalid log level")

// Level selects the severity tag attached to a record.
// The set is fixed and positional: Debug is 0, Error is 3.
type Level int

const (
	// Debug tags fine-grained diagnostic records.
	Debug Level = iota
	// Info tags lifecycle and progress records.
	Info
	// Warning tags records about suspicious but recoverable situations.
	Warning
	// Error tags records about failed operations.
	Error
)

// levelNames is indexed by Level; order must match the constants above.
var levelNames = [...]string{"DEBUG", "INFO", "WARNING", "ERROR"}

// Valid reports whether l is one of the four defined levels.
func (l Level) Valid() bool {
	return l >= Debug && l <= Error
}

// String returns the positional level name (Debug → "DEBUG").
// Invalid levels render as "UNKNOWN".
func (l Level) String() string {
	if !l.Valid() {
		return "UNKNOWN"
	}

	return levelNames[l]
}

// zero maps l onto the zerolog level used by the emit backend.
func (l Level) zero() zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Info:
		return zerolog.InfoLevel
	case Warning:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
