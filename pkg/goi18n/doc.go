// Package goi18n renders validation messages through go-i18n message
// catalogs. It implements the zodi18n.Renderer contract on top of
// i18n.Bundle, ships embedded English, French and Japanese catalogs for
// every issue code, and wires locale detection into net/http services.
//
// The package allows you to:
//
//   - Resolve namespaced translation keys with i18next-style context
//     variants, so "errors.custom_with_path" wins over "errors.custom"
//     when a field path is known.
//   - Pluralize messages with CLDR rules driven by the mapper's count
//     parameter.
//   - Load additional catalogs from JSON, TOML or YAML files, embedded
//     or on disk, on top of the built-in ones.
//   - Bind a request-scoped mapper to the client's locale through
//     middleware that checks a cookie, a query parameter and the
//     Accept-Language header.
//
// # Architecture
//
// A Renderer wraps an i18n.Bundle and a preferred-language list. Every
// Render call builds the ordered candidate message IDs for the requested
// key (namespace prefixes, context variant before base key) and returns
// the first one the bundle resolves. Unresolved keys fall back to the
// caller's default text, which is interpolated with the same parameters
// so placeholders keep working without a catalog entry.
//
// The bundle itself stays caller-owned: DefaultBundle returns a fresh
// bundle preloaded with the embedded catalogs, and NewBundle returns an
// empty one with the JSON, TOML and YAML unmarshalers registered.
//
// # Usage
//
// Mapping issues with the embedded catalogs:
//
//	mapper := goi18n.Default()
//	msg := mapper.Map(issue)
//
// A French mapper over the same catalogs:
//
//	renderer := goi18n.New(goi18n.DefaultBundle(), goi18n.WithLanguages("fr"))
//	mapper := zodi18n.New(zodi18n.WithRenderer(renderer))
//
// # HTTP Middleware
//
// The middleware stores a mapper bound to the request locale in the
// context:
//
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		mapper := goi18n.MapperFromContext(r.Context())
//		if messages, ok := mapper.MapAll(err); ok {
//			// render messages
//		}
//	})
//
//	http.Handle("/", goi18n.Middleware(goi18n.DefaultBundle())(handler))
package goi18n
