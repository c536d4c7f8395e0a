package staticfsm

import "github.com/amp-labs/staticfsm/optional"

// Config carries per-instance construction settings for a generated machine.
// Generated constructors build one from their variadic options; user code
// never constructs a Config directly.
type Config struct {
	observer     Observer
	initialEntry optional.Value[bool]
}

// Option configures a generated machine at construction time.
type Option func(*Config)

// NewConfig applies options over the defaults (no observer, initial-entry
// policy taken from the machine's declaration).
func NewConfig(opts ...Option) Config {
	var cfg Config

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithObserver attaches a step observer to the machine instance. Observers
// are diagnostics only; a machine without one pays no observation cost.
func WithObserver(o Observer) Option {
	return func(c *Config) {
		c.observer = o
	}
}

// WithInitialEntry overrides the declaration's runInitialEntry policy for
// this instance: whether OnEntry of the initial state runs on the first Step.
// Construction itself never invokes OnEntry.
func WithInitialEntry(run bool) Option {
	return func(c *Config) {
		c.initialEntry = optional.Some(run)
	}
}

// Observer returns the configured observer, or nil.
func (c Config) Observer() Observer {
	return c.observer
}

// InitialEntry resolves the initial-entry policy: the per-instance override
// if set, otherwise the declaration default passed by the generated
// constructor.
func (c Config) InitialEntry(declared bool) bool {
	return c.initialEntry.GetOrElse(declared)
}
