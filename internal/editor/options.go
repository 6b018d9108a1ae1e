package editor

import "github.com/BlockstreamResearch/simplicity-webide/internal/logging"

// Option configures a Bridge.
type Option func(*config)

type config struct {
	widgetConfig Config
	logger       *logging.Logger
}

// WithConfig sets the widget construction options used by Init.
func WithConfig(cfg Config) Option {
	return func(c *config) {
		c.widgetConfig = cfg
	}
}

// WithLogger sets the logger for the bridge.
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
