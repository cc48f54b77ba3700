package goi18n

import (
	"log/slog"
	"slices"
)

// Option is a function that configures a Renderer instance.
type Option func(*Renderer)

// WithLanguages sets the preferred languages in order of priority. Each
// entry is parsed like an Accept-Language value, so both "fr" and
// "fr-CH, fr;q=0.9, en;q=0.8" work. Unmatched languages fall back to the
// bundle's default.
func WithLanguages(langs ...string) Option {
	return func(r *Renderer) {
		if len(langs) == 0 {
			return
		}
		r.languages = slices.Clone(langs)
	}
}

// WithDateLayout sets the layout used to format time values passed as
// message parameters. Default is time.DateOnly.
func WithDateLayout(layout string) Option {
	return func(r *Renderer) {
		if layout != "" {
			r.dateLayout = layout
		}
	}
}

// WithLogger provides a logger for unresolved keys, reported at debug
// level. If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
