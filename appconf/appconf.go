// Package appconf defines types, options, and defaults
// for the application configuration of github.com/katalvlaran/modcore.
package appconf

// Default values applied by New before options run.
const (
	// DefaultName is the application name used when WithName is not given.
	DefaultName = "TestApp"
	// DefaultVersion is the configuration schema version.
	DefaultVersion = 1
)

// Option configures a Config before creation.
type Option func(*Config)

// WithName overrides the application name.
func WithName(name string) Option {
	return func(c *Config) { c.name = name }
}

// WithVersion overrides the configuration schema version.
func WithVersion(version int) Option {
	return func(c *Config) { c.version = version }
}

// WithDebug toggles debug output for the whole process.
func WithDebug(enabled bool) Option {
	return func(c *Config) { c.debug = enabled }
}

// Config carries the application identity and the debug switch.
// It is a plain immutable value: construct once with New, copy freely.
// There is no destructor and no setter, so a stale or double-released
// configuration cannot be expressed.
type Config struct {
	name    string
	version int
	debug   bool
}

// New creates a Config with defaults applied, then the given options.
// Defaults: name=DefaultName, version=DefaultVersion, debug enabled.
// Complexity: O(len(opts))
func New(opts ...Option) Config {
	cfg := Config{
		name:    DefaultName,
		version: DefaultVersion,
		debug:   true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Name returns the application name.
func (c Config) Name() string { return c.name }

// Version returns the configuration schema version.
func (c Config) Version() int { return c.version }

// Debug reports whether debug output is enabled.
func (c Config) Debug() bool { return c.debug }
