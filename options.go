package zodi18n

import "slices"

// Option configures a Mapper.
type Option func(*Mapper)

// WithRenderer sets the translation backend. Without one, every lookup
// resolves to its default, so messages degrade to their fallbacks instead
// of failing.
func WithRenderer(r Renderer) Option {
	return func(m *Mapper) {
		if r != nil {
			m.renderer = r
		}
	}
}

// WithNamespace sets the catalog namespaces searched for message keys,
// in order. Defaults to DefaultNamespace.
func WithNamespace(ns ...string) Option {
	return func(m *Mapper) {
		if len(ns) > 0 {
			m.namespaces = slices.Clone(ns)
		}
	}
}

// WithPathContext sets the key-variant tag used when an issue carries a
// field path. Defaults to DefaultPathContext.
func WithPathContext(tag string) Option {
	return func(m *Mapper) {
		if tag != "" {
			m.pathContext = tag
		}
	}
}

// WithPathNamespace sets the namespaces searched when resolving field
// paths, in order. Defaults to the mapper's namespaces.
func WithPathNamespace(ns ...string) Option {
	return func(m *Mapper) {
		if len(ns) > 0 {
			m.pathNamespaces = slices.Clone(ns)
		}
	}
}

// WithPathKeyPrefix prepends a prefix to path lookup keys, so the path
// "user.email" resolves through e.g. "form.user.email". The fallback stays
// the unprefixed dotted path.
func WithPathKeyPrefix(prefix string) Option {
	return func(m *Mapper) {
		m.pathKeyPrefix = prefix
	}
}

// WithoutPathResolution disables path handling entirely: no path lookup,
// no context variant, no "path" parameter.
func WithoutPathResolution() Option {
	return func(m *Mapper) {
		m.pathEnabled = false
	}
}

// WithFallback sets the function deriving the render default from an
// issue. The default implementation returns the issue's baseline message,
// or a generic "Invalid value" when that is empty.
func WithFallback(fn func(Issue) string) Option {
	return func(m *Mapper) {
		if fn != nil {
			m.fallback = fn
		}
	}
}
