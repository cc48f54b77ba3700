package goi18n

import (
	"context"

	"github.com/dmitrymomot/zodi18n"
)

// mapperContextKey is the key for storing a request-scoped mapper in context.
type mapperContextKey struct{}

// WithMapper stores a mapper in the context.
func WithMapper(ctx context.Context, mapper *zodi18n.Mapper) context.Context {
	return context.WithValue(ctx, mapperContextKey{}, mapper)
}

// MapperFromContext returns the mapper stored by the middleware. Without
// one it returns the shared default mapper, so handlers can call it
// unconditionally.
func MapperFromContext(ctx context.Context) *zodi18n.Mapper {
	if mapper, ok := ctx.Value(mapperContextKey{}).(*zodi18n.Mapper); ok && mapper != nil {
		return mapper
	}
	return Default()
}
