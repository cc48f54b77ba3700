package goi18n

import (
	"net/http"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/dmitrymomot/zodi18n"
)

type middlewareConfig struct {
	cookieName   string
	queryParam   string
	mapperOpts   []zodi18n.Option
	rendererOpts []Option
}

// MiddlewareOption configures the locale middleware.
type MiddlewareOption func(*middlewareConfig)

// WithCookieName sets the cookie checked for the locale. Default is "lang".
func WithCookieName(name string) MiddlewareOption {
	return func(c *middlewareConfig) {
		if name != "" {
			c.cookieName = name
		}
	}
}

// WithQueryParam sets the query parameter checked for the locale.
// Default is "lang".
func WithQueryParam(name string) MiddlewareOption {
	return func(c *middlewareConfig) {
		if name != "" {
			c.queryParam = name
		}
	}
}

// WithMapperOptions adds options applied to every request-scoped mapper.
func WithMapperOptions(opts ...zodi18n.Option) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.mapperOpts = append(c.mapperOpts, opts...)
	}
}

// WithRendererOptions adds options applied to every request-scoped renderer.
func WithRendererOptions(opts ...Option) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.rendererOpts = append(c.rendererOpts, opts...)
	}
}

// Middleware resolves the request locale and stores a mapper bound to it
// in the request context. Sources are checked in priority order: the
// locale cookie, the query parameter, then the Accept-Language header.
// Handlers retrieve the mapper with MapperFromContext.
func Middleware(bundle *i18n.Bundle, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	config := &middlewareConfig{
		cookieName: "lang",
		queryParam: "lang",
	}
	for _, opt := range opts {
		opt(config)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rendererOpts := config.rendererOpts
			if locale := requestLocale(r, config); locale != "" {
				// Clip keeps the append from sharing the configured
				// options array across requests.
				rendererOpts = append(slices.Clip(config.rendererOpts), WithLanguages(locale))
			}
			mapperOpts := append(slices.Clip(config.mapperOpts),
				zodi18n.WithRenderer(New(bundle, rendererOpts...)))

			mapper := zodi18n.New(mapperOpts...)
			next.ServeHTTP(w, r.WithContext(WithMapper(r.Context(), mapper)))
		})
	}
}

// requestLocale picks the first locale source present on the request.
// The raw Accept-Language value passes through untouched; the localizer
// understands quality-ordered lists natively.
func requestLocale(r *http.Request, config *middlewareConfig) string {
	if cookie, err := r.Cookie(config.cookieName); err == nil {
		if lang := strings.TrimSpace(cookie.Value); lang != "" {
			return lang
		}
	}
	if lang := strings.TrimSpace(r.URL.Query().Get(config.queryParam)); lang != "" {
		return lang
	}
	return strings.TrimSpace(r.Header.Get("Accept-Language"))
}
