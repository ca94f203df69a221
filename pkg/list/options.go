package list

import "log/slog"

// options holds the configuration for a new List.
type options struct {
	format string
	level  int
	logger *slog.Logger
}

// Option defines a functional option for New and CreateSubList.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		format: FormatDecimal,
	}
}

// WithFormat selects the numbering format name (e.g. "decimal", "bullet").
// Unknown names fall back to abstract numbering definition 2.
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithLevel sets the nesting depth of the list. Negative values are clamped to 0.
func WithLevel(level int) Option {
	return func(o *options) {
		if level < 0 {
			level = 0
		}
		o.level = level
	}
}

// WithLogger sets the logger used to report unknown formats.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
