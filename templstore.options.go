package templstore

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring Templates, Resolver and
// PartialStore instances.
type Option func(*optionConfig)

type optionConfig struct {
	logger *zap.Logger
}

func newOptionConfig(opts []Option) *optionConfig {
	config := &optionConfig{}
	for _, opt := range opts {
		opt(config)
	}
	if config.logger == nil {
		config.logger = zap.NewNop()
	}
	return config
}

// WithLogger sets the logger.
// Default: no logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *optionConfig) {
		c.logger = logger
	}
}
