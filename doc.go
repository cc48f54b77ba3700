// Package zodi18n maps structured schema-validation issues to localized,
// human-readable messages. It is the glue between a validation layer that
// reports what went wrong (issue codes, expected types, bounds, field paths)
// and a translation catalog that knows how to say it in the user's language.
//
// The package does not validate anything and does not interpolate templates
// itself. A validation layer produces Issue values; a Renderer resolves
// translation keys against a catalog. This package classifies each issue
// into a message key plus a parameter bag, hands both to the renderer, and
// guarantees a usable message comes back even when the catalog has gaps.
//
// # Architecture
//
// The Mapper is a configured classifier. Map inspects one issue, selects a
// key such as "errors.too_small.string.inclusive", assembles the template
// parameters (bounds, allowed values, type names), and calls the renderer
// with a fallback message derived from the issue itself. Field paths get a
// secondary lookup: "user.email" is first resolved through the catalog so
// locales can phrase individual fields, falling back to the literal dotted
// path. Type tags and format names are resolved the same way through the
// "types." and "validations." catalog sections.
//
// Renderers are pluggable. Any implementation of the Renderer interface
// works; pkg/goi18n provides one backed by go-i18n message bundles with
// embedded catalogs for English, French and Japanese.
//
// # Usage
//
//	mapper := zodi18n.New(
//		zodi18n.WithRenderer(renderer),
//	)
//
//	msg := mapper.Map(zodi18n.Issue{
//		Code:      zodi18n.CodeTooSmall,
//		Origin:    zodi18n.OriginString,
//		Minimum:   8,
//		Inclusive: true,
//		Path:      zodi18n.PathOf("user", "password"),
//	})
//	// msg == "String must contain at least 8 characters"
//
// Validation failures travel as *Error values. The helpers unpack them:
//
//	if messages, ok := mapper.MapAll(err); ok {
//		// one localized message per issue
//	}
//
// # Error Handling
//
// Mapping never fails. An unrecognized issue code passes the fallback
// message through unchanged, and a renderer is contractually required to
// render the supplied default when a key has no catalog entry. The only
// error this package reports is ErrNoIssues, returned by FirstMessage and
// CatchMessage when asked to extract a message from an error that carries
// none; that signals caller misuse, not a validation outcome.
package zodi18n
