package slip

import "time"

// Option is a betting slip tool specific option.
type Option func(*Config)

// WithRegistry injects the player registry the tool resolves players from.
// The registry is a run dependency: it is never part of the tool schema and
// never reaches the language model.
func WithRegistry(registry Registry) Option {
	return func(c *Config) {
		c.registry = registry
	}
}

// WithPlayer sets the player the slip is issued for. Like the registry this
// is injected per run, not supplied by the model.
func WithPlayer(name string) Option {
	return func(c *Config) {
		c.player = name
	}
}

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(c *Config) {
		c.now = now
	}
}
