package zodi18n

// Renderer resolves a translation key against a locale catalog and
// interpolates the parameters into the resulting template.
//
// Implementations must be total: a missing catalog entry renders the
// Default template instead, and Render never panics or reports an error.
// For a fixed catalog state the result must be deterministic. The renderer
// carries its own locale; the mapper never passes one.
type Renderer interface {
	Render(key string, params RenderParams) string
}

// RenderFunc adapts a plain function to the Renderer interface.
type RenderFunc func(key string, params RenderParams) string

func (f RenderFunc) Render(key string, params RenderParams) string {
	return f(key, params)
}

// RenderParams carries everything a renderer needs besides the key itself.
type RenderParams struct {
	// Namespaces are the catalog partitions to search, in order. Empty
	// means the key is looked up as-is.
	Namespaces []string

	// Default is the template rendered when no catalog entry resolves.
	// It is never empty for mapper-issued calls.
	Default string

	// Context selects a key variant: renderers try "<key>_<context>"
	// before the bare key. The mapper sets it to its path context tag
	// when a field path is present.
	Context string

	// Count selects a plural form when non-nil. It is also available to
	// templates as the "count" parameter.
	Count any

	// Data holds the template parameters.
	Data map[string]any
}
