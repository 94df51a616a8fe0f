package plotconfig

import (
	"log/slog"
)

// Option configures a ConfigBuilder.
type Option func(*ConfigBuilder)

// WithLogger sets the logger used for debug output. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(b *ConfigBuilder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func ptr[T any](v T) *T {
	return &v
}

// clonePtr returns a fresh pointer holding *p, or nil.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
