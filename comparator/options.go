package comparator

import (
	"log/slog"

	"github.com/amp-labs/numstring/numstr"
)

// Options configures comparators and registries.
type Options struct {
	// TextOrder orders non-numeric parts. Defaults to numstr.Collated.
	TextOrder numstr.TextOrder

	// Logger receives registry diagnostics. Defaults to slog.Default().
	// Comparisons never log.
	Logger *slog.Logger
}

// Option is a functional option for configuring comparators.
type Option func(*Options)

// WithTextOrder sets how non-numeric parts are ordered.
func WithTextOrder(order numstr.TextOrder) Option {
	return func(o *Options) {
		o.TextOrder = order
	}
}

// WithLogger sets the logger used by a Registry.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func newOptions(opts []Option) Options {
	options := Options{
		TextOrder: numstr.Collated,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return options
}
