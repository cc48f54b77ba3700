package goi18n

import (
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/dmitrymomot/zodi18n"
)

// Ensure the go-i18n backend satisfies the mapper's renderer contract.
var _ zodi18n.Renderer = (*Renderer)(nil)

// Renderer resolves translation keys against a go-i18n bundle for a fixed
// preferred-language list. It is stateless apart from configuration, so
// one instance per locale can be shared across goroutines.
type Renderer struct {
	bundle     *i18n.Bundle
	languages  []string
	dateLayout string
	logger     *slog.Logger
}

// New builds a renderer over the given bundle. Without WithLanguages,
// lookups use the bundle's default language.
func New(bundle *i18n.Bundle, opts ...Option) *Renderer {
	r := &Renderer{
		bundle:     bundle,
		dateLayout: time.DateOnly,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render resolves key against the catalog, trying the namespaced context
// variant first and falling back to the base key, the next namespace, and
// finally the interpolated default text. It never fails: a renderer with
// no bundle or no matching entry still produces the default.
func (r *Renderer) Render(key string, params zodi18n.RenderParams) string {
	if r.bundle == nil {
		return params.Default
	}

	localizer := i18n.NewLocalizer(r.bundle, r.languages...)
	data := r.templateData(params)
	ids := candidateIDs(key, params)

	for _, id := range ids {
		cfg := &i18n.LocalizeConfig{
			MessageID:    id,
			TemplateData: data,
		}
		if params.Count != nil {
			cfg.PluralCount = pluralCount(params.Count)
		}
		// A fallback-language hit returns both a message and an error;
		// any non-empty message counts as resolved.
		if msg, _ := localizer.Localize(cfg); msg != "" {
			return msg
		}
	}

	r.logger.Debug("no catalog entry", "key", key, "candidates", ids)
	return r.renderDefault(localizer, ids[0], params, data)
}

// renderDefault interpolates the caller's default text so placeholders
// keep working when the catalog has no entry for the key.
func (r *Renderer) renderDefault(localizer *i18n.Localizer, id string, params zodi18n.RenderParams, data map[string]any) string {
	if params.Default == "" {
		return ""
	}
	cfg := &i18n.LocalizeConfig{
		TemplateData: data,
		DefaultMessage: &i18n.Message{
			ID:    id,
			Other: params.Default,
		},
	}
	if params.Count != nil {
		cfg.PluralCount = pluralCount(params.Count)
	}
	msg, err := localizer.Localize(cfg)
	if msg == "" {
		r.logger.Debug("default text failed to render", "key", id, "error", err)
		return params.Default
	}
	return msg
}

// templateData clones the parameter bag, formats time values with the
// configured layout and makes the plural count addressable as {{.count}}.
// The caller's map is never mutated.
func (r *Renderer) templateData(params zodi18n.RenderParams) map[string]any {
	if len(params.Data) == 0 && params.Count == nil {
		return nil
	}
	data := make(map[string]any, len(params.Data)+1)
	for k, v := range params.Data {
		switch t := v.(type) {
		case time.Time:
			v = t.Format(r.dateLayout)
		case *time.Time:
			if t != nil {
				v = t.Format(r.dateLayout)
			}
		}
		data[k] = v
	}
	if params.Count != nil {
		if _, ok := data["count"]; !ok {
			data["count"] = params.Count
		}
	}
	return data
}

// pluralCount shapes a count for go-i18n, which accepts integers and
// formatted strings but rejects raw floats. Template data keeps the raw
// value; only the plural selector sees the formatted form.
func pluralCount(count any) any {
	switch c := count.(type) {
	case float32:
		return strconv.FormatFloat(float64(c), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	}
	return count
}

// candidateIDs expands a key into the ordered message IDs to try: for
// each namespace the context variant comes before the base key, so a
// specialized entry wins and a missing one falls back naturally.
func candidateIDs(key string, params zodi18n.RenderParams) []string {
	bases := []string{key}
	if len(params.Namespaces) > 0 {
		bases = make([]string, len(params.Namespaces))
		for i, ns := range params.Namespaces {
			bases[i] = ns + "." + key
		}
	}
	if params.Context == "" {
		return bases
	}
	ids := make([]string, 0, len(bases)*2)
	for _, base := range bases {
		ids = append(ids, base+"_"+params.Context, base)
	}
	return ids
}
