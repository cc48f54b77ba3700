package zodi18n

// Code identifies the kind of validation failure an issue describes.
type Code string

const (
	CodeInvalidType      Code = "invalid_type"
	CodeInvalidValue     Code = "invalid_value"
	CodeUnrecognizedKeys Code = "unrecognized_keys"
	CodeInvalidUnion     Code = "invalid_union"
	CodeInvalidFormat    Code = "invalid_format"
	CodeTooSmall         Code = "too_small"
	CodeTooBig           Code = "too_big"
	CodeNotMultipleOf    Code = "not_multiple_of"
	CodeCustom           Code = "custom"
)

// ValueKind narrows an invalid_value issue: a fixed literal or an enum.
type ValueKind uint8

const (
	ValueLiteral ValueKind = iota
	ValueEnum
)

// UnionKind narrows an invalid_union issue. Discriminated unions carry the
// allowed discriminator values and get their own message.
type UnionKind uint8

const (
	UnionPlain UnionKind = iota
	UnionDiscriminated
)

// Origin is the data kind a size bound applies to. It selects the
// sub-template for too_small and too_big messages.
type Origin string

const (
	OriginString Origin = "string"
	OriginNumber Origin = "number"
	OriginInt    Origin = "int"
	OriginFloat  Origin = "float"
	OriginDate   Origin = "date"
	OriginArray  Origin = "array"
	OriginSet    Origin = "set"
	OriginFile   Origin = "file"
)

type undefinedValue struct{}

func (undefinedValue) String() string { return "undefined" }

// Undefined marks an absent input value. Assign it to Issue.Input to say
// "no value was provided", as opposed to an explicit null, which is a plain
// nil. The distinction selects between the required-field messages.
var Undefined any = undefinedValue{}

// Issue is one structured description of a single validation failure.
// Code selects the variant; the remaining fields are read only where the
// variant defines them and are ignored otherwise. Validation layers build
// issues at their boundary, tagging the variant explicitly instead of
// leaving the mapper to probe shapes.
type Issue struct {
	Code Code

	// Path locates the failing value. Empty means the whole input.
	Path Path

	// Message is the baseline, non-localized message supplied by the
	// validation layer. It becomes the render fallback.
	Message string

	// Input is the offending value. Use Undefined for an absent value;
	// nil means an explicit null.
	Input any

	// Expected is the type tag an invalid_type issue wanted.
	Expected ParsedType

	// ValueKind narrows invalid_value issues.
	ValueKind ValueKind

	// Values holds the allowed values of an invalid_value issue, or the
	// discriminator values of a discriminated invalid_union issue.
	Values []any

	// Keys lists the offending keys of an unrecognized_keys issue.
	Keys []string

	// UnionKind narrows invalid_union issues.
	UnionKind UnionKind

	// Format tags invalid_format issues: "email", "url", "date",
	// "starts_with", "ends_with", or any other validation name.
	Format string

	// Prefix and Suffix carry the expected affixes of starts_with and
	// ends_with format issues.
	Prefix string
	Suffix string

	// Origin, Minimum, Maximum, Inclusive and Exact describe size bounds
	// for too_small and too_big issues. A date bound may be a time.Time
	// or epoch milliseconds.
	Origin    Origin
	Minimum   any
	Maximum   any
	Inclusive bool
	Exact     bool

	// Divisor is the required factor of a not_multiple_of issue.
	Divisor float64

	// Params is the free-form bag of a custom issue. A "i18n" entry
	// overrides the translation key and values, see CustomI18n.
	Params map[string]any
}

// CustomI18n overrides the translation of a custom issue. Store one under
// Params["i18n"]; a bare key string or a decoded map with "key" and
// "values" entries works too.
type CustomI18n struct {
	Key    string
	Values map[string]any
}
