package partition

import "log/slog"

// Option configures an Allocator.
type Option func(*options)

type options struct {
	logger          *slog.Logger
	allowDuplicates bool
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger used for allocation and release events.
// A nil logger keeps the default, which discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// AllowDuplicates lets one process id occupy several partitions at once.
// Release then frees only the first of them in scan order and leaves the
// rest occupied.
func AllowDuplicates() Option {
	return func(o *options) {
		o.allowDuplicates = true
	}
}
