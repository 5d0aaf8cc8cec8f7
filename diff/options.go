package diff

import "log/slog"

// options holds configuration for Compute.
type options struct {
	logger *slog.Logger
}

// Option is a functional option for configuring Compute.
type Option func(*options)

// WithLogger sends diagnostics about the computation to logger.
// If logger is nil, diagnostics are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func applyOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
