package zodi18n

import (
	"fmt"
	"maps"
	"math"
	"strings"
	"time"
)

const (
	// DefaultNamespace is the catalog partition searched for issue
	// messages when no other namespace is configured.
	DefaultNamespace = "zod"

	// DefaultPathContext is the key-variant tag selecting message
	// phrasings that include a field path.
	DefaultPathContext = "with_path"

	genericMessage = "Invalid value"
)

// Mapper turns validation issues into localized messages. It is immutable
// after New and safe for concurrent use; Map never mutates the issue and
// never panics.
type Mapper struct {
	renderer       Renderer
	namespaces     []string
	pathEnabled    bool
	pathContext    string
	pathNamespaces []string
	pathKeyPrefix  string
	fallback       func(Issue) string
}

// New builds a Mapper from the given options. The defaults follow the
// catalog conventions: namespace "zod", path handling enabled with the
// "with_path" context, fallback derived from the issue's own message.
func New(opts ...Option) *Mapper {
	m := &Mapper{
		namespaces:  []string{DefaultNamespace},
		pathEnabled: true,
		pathContext: DefaultPathContext,
		fallback:    defaultFallback,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.pathNamespaces == nil {
		m.pathNamespaces = m.namespaces
	}
	return m
}

func defaultFallback(issue Issue) string {
	if issue.Message != "" {
		return issue.Message
	}
	return genericMessage
}

// Map returns the localized message for one issue. An unrecognized issue
// code yields the fallback message unchanged.
func (m *Mapper) Map(issue Issue) string {
	fallback := m.fallback(issue)

	key, data, count := m.classify(issue)
	if key == "" {
		return fallback
	}

	params := RenderParams{
		Namespaces: m.namespaces,
		Default:    fallback,
		Count:      count,
		Data:       data,
	}
	if rendered, ok := m.resolvePath(issue.Path); ok {
		params.Context = m.pathContext
		if params.Data == nil {
			params.Data = make(map[string]any, 1)
		}
		params.Data["path"] = rendered
	}
	return m.render(key, params)
}

// MapAll extracts the issues from err and maps each one, preserving order.
// It reports false when err is not a validation failure.
func (m *Mapper) MapAll(err error) ([]string, bool) {
	verr, ok := AsError(err)
	if !ok {
		return nil, false
	}
	messages := make([]string, len(verr.Issues))
	for i, issue := range verr.Issues {
		messages[i] = m.Map(issue)
	}
	return messages, true
}

// FieldMessages maps every issue in err and groups the messages by the
// dot-joined field path. Issues on the whole input group under "".
// It reports false when err is not a validation failure.
func (m *Mapper) FieldMessages(err error) (map[string][]string, bool) {
	verr, ok := AsError(err)
	if !ok {
		return nil, false
	}
	fields := make(map[string][]string, len(verr.Issues))
	for _, issue := range verr.Issues {
		field := issue.Path.String()
		fields[field] = append(fields[field], m.Map(issue))
	}
	return fields, true
}

// classify selects the message key, template parameters and plural count
// for one issue. An empty key means the code has no mapping.
func (m *Mapper) classify(issue Issue) (string, map[string]any, any) {
	switch issue.Code {
	case CodeInvalidType:
		return m.classifyInvalidType(issue)

	case CodeInvalidValue:
		if issue.ValueKind == ValueEnum {
			return "errors.invalid_enum_value", map[string]any{
				"options":  joinValues(issue.Values, " | "),
				"received": issue.Input,
			}, nil
		}
		return "errors.invalid_literal", map[string]any{
			"expected": joinValues(issue.Values, " | "),
		}, nil

	case CodeUnrecognizedKeys:
		keys := make([]any, len(issue.Keys))
		for i, k := range issue.Keys {
			keys[i] = k
		}
		n := len(issue.Keys)
		return "errors.unrecognized_keys", map[string]any{
			"keys":  joinValues(keys, ", "),
			"count": n,
		}, n

	case CodeInvalidUnion:
		// The discriminated shape is a narrower case of the same code
		// and must win over the plain union message.
		if issue.UnionKind == UnionDiscriminated {
			return "errors.invalid_union_discriminator", map[string]any{
				"options": joinValues(issue.Values, " | "),
			}, nil
		}
		return "errors.invalid_union", nil, nil

	case CodeInvalidFormat:
		return m.classifyInvalidFormat(issue)

	case CodeTooSmall:
		return m.classifyBound(issue, "errors.too_small", "minimum", issue.Minimum)

	case CodeTooBig:
		return m.classifyBound(issue, "errors.too_big", "maximum", issue.Maximum)

	case CodeNotMultipleOf:
		return "errors.not_multiple_of", map[string]any{
			"multipleOf": issue.Divisor,
		}, nil

	case CodeCustom:
		return m.classifyCustom(issue)
	}
	return "", nil, nil
}

func (m *Mapper) classifyInvalidType(issue Issue) (string, map[string]any, any) {
	received := ParsedTypeOf(issue.Input)
	switch {
	case received == ParsedTypeUndefined:
		return "errors.invalid_type_received_undefined", nil, nil
	case received == ParsedTypeNull:
		return "errors.invalid_type_received_null", nil, nil
	case isInfinite(issue.Input):
		return "errors.not_finite", nil, nil
	case isMalformedDate(issue.Input):
		return "errors.invalid_date", nil, nil
	}
	return "errors.invalid_type", map[string]any{
		"expected": m.typeName(issue.Expected),
		"received": m.typeName(received),
	}, nil
}

func (m *Mapper) classifyInvalidFormat(issue Issue) (string, map[string]any, any) {
	switch issue.Format {
	case "date":
		return "errors.invalid_date", nil, nil
	case "starts_with":
		return "errors.invalid_string.startsWith", map[string]any{
			"startsWith": issue.Prefix,
		}, nil
	case "ends_with":
		return "errors.invalid_string.endsWith", map[string]any{
			"endsWith": issue.Suffix,
		}, nil
	}
	name := m.render("validations."+issue.Format, RenderParams{
		Namespaces: m.namespaces,
		Default:    issue.Format,
	})
	return "errors.invalid_string." + issue.Format, map[string]any{
		"validation": name,
	}, nil
}

func (m *Mapper) classifyBound(issue Issue, prefix, name string, bound any) (string, map[string]any, any) {
	variant := "not_inclusive"
	switch {
	case issue.Exact:
		variant = "exact"
	case issue.Inclusive:
		variant = "inclusive"
	}

	if issue.Origin == OriginDate {
		bound = dateBound(bound)
	}
	data := map[string]any{name: bound}

	var count any
	if isNumber(bound) {
		data["count"] = bound
		count = bound
	}
	return prefix + "." + string(issue.Origin) + "." + variant, data, count
}

func (m *Mapper) classifyCustom(issue Issue) (string, map[string]any, any) {
	key, values := customKeyAndValues(issue.Params["i18n"])
	if len(values) == 0 {
		return key, nil, nil
	}
	data := make(map[string]any, len(values))
	maps.Copy(data, values)
	return key, data, data["count"]
}

// customKeyAndValues reads the translation override of a custom issue.
// Accepted shapes: a bare key string, a CustomI18n value, or a decoded
// map carrying "key" and "values" entries.
func customKeyAndValues(param any) (string, map[string]any) {
	const defaultKey = "errors.custom"
	switch p := param.(type) {
	case string:
		if p != "" {
			return p, nil
		}
	case CustomI18n:
		if p.Key != "" {
			return p.Key, p.Values
		}
		return defaultKey, p.Values
	case *CustomI18n:
		if p == nil {
			break
		}
		if p.Key != "" {
			return p.Key, p.Values
		}
		return defaultKey, p.Values
	case map[string]any:
		key := defaultKey
		if k, ok := p["key"].(string); ok && k != "" {
			key = k
		}
		values, _ := p["values"].(map[string]any)
		return key, values
	}
	return defaultKey, nil
}

// resolvePath renders the issue path through the catalog so locales can
// phrase specific fields, falling back to the literal dot-joined path.
func (m *Mapper) resolvePath(path Path) (string, bool) {
	if !m.pathEnabled || len(path) == 0 {
		return "", false
	}
	joined := path.String()
	lookup := joined
	if m.pathKeyPrefix != "" {
		lookup = m.pathKeyPrefix + "." + joined
	}
	return m.render(lookup, RenderParams{
		Namespaces: m.pathNamespaces,
		Default:    joined,
	}), true
}

// typeName resolves a type tag through the "types." catalog section, with
// the raw tag as fallback.
func (m *Mapper) typeName(t ParsedType) string {
	return m.render("types."+string(t), RenderParams{
		Namespaces: m.namespaces,
		Default:    string(t),
	})
}

func (m *Mapper) render(key string, params RenderParams) string {
	if m.renderer == nil {
		return params.Default
	}
	return m.renderer.Render(key, params)
}

// joinValues formats a value list the way catalogs expect: strings
// single-quoted, everything else in its natural form.
func joinValues(values []any, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		if s, ok := v.(string); ok {
			parts[i] = "'" + s + "'"
		} else {
			parts[i] = fmt.Sprint(v)
		}
	}
	return strings.Join(parts, sep)
}

func isInfinite(v any) bool {
	switch f := v.(type) {
	case float32:
		return math.IsInf(float64(f), 0)
	case float64:
		return math.IsInf(f, 0)
	}
	return false
}

func isMalformedDate(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return t.IsZero()
	case *time.Time:
		return t != nil && t.IsZero()
	}
	return false
}

// dateBound converts an epoch-milliseconds bound into a time.Time. Bounds
// that already are times pass through.
func dateBound(v any) any {
	switch b := v.(type) {
	case time.Time:
		return b
	case *time.Time:
		if b != nil {
			return *b
		}
	case int:
		return time.UnixMilli(int64(b))
	case int64:
		return time.UnixMilli(b)
	case float64:
		return time.UnixMilli(int64(b))
	}
	return v
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}
