package goi18n

import (
	"sync"

	"github.com/dmitrymomot/zodi18n"
)

var defaultMapper = sync.OnceValue(func() *zodi18n.Mapper {
	return zodi18n.New(zodi18n.WithRenderer(New(DefaultBundle())))
})

// Default returns the process-wide mapper over the embedded catalogs in
// the bundle's default language, built lazily on first use. It is safe
// for concurrent use; per-locale mappers come from New plus
// WithLanguages, or from the middleware.
func Default() *zodi18n.Mapper {
	return defaultMapper()
}
