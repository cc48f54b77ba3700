package zodi18n

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"
	"time"
)

// ParsedType is the classified type tag of an input value, lower-cased for
// catalog lookups under the "types." section.
type ParsedType string

const (
	ParsedTypeString    ParsedType = "string"
	ParsedTypeNumber    ParsedType = "number"
	ParsedTypeInteger   ParsedType = "integer"
	ParsedTypeFloat     ParsedType = "float"
	ParsedTypeNaN       ParsedType = "nan"
	ParsedTypeBoolean   ParsedType = "boolean"
	ParsedTypeDate      ParsedType = "date"
	ParsedTypeNull      ParsedType = "null"
	ParsedTypeUndefined ParsedType = "undefined"
	ParsedTypeArray     ParsedType = "array"
	ParsedTypeObject    ParsedType = "object"
	ParsedTypeMap       ParsedType = "map"
	ParsedTypeSet       ParsedType = "set"
	ParsedTypeFunction  ParsedType = "function"
	ParsedTypeUnknown   ParsedType = "unknown"
)

// ParsedTypeOf classifies a value for the "received" parameter of
// invalid_type messages. Integral floats classify as integer, NaN gets its
// own tag, named struct types report their lower-cased type name, and
// anything without a better bucket falls back to its lower-cased kind.
func ParsedTypeOf(v any) ParsedType {
	if v == nil {
		return ParsedTypeNull
	}
	switch t := v.(type) {
	case undefinedValue:
		return ParsedTypeUndefined
	case bool:
		return ParsedTypeBoolean
	case string:
		return ParsedTypeString
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return ParsedTypeInteger
	case float32:
		return floatParsedType(float64(t))
	case float64:
		return floatParsedType(t)
	case json.Number:
		if _, err := t.Int64(); err == nil {
			return ParsedTypeInteger
		}
		if f, err := t.Float64(); err == nil {
			return floatParsedType(f)
		}
		return ParsedTypeNaN
	case time.Time, *time.Time:
		return ParsedTypeDate
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return ParsedTypeArray
	case reflect.Map:
		return ParsedTypeMap
	case reflect.Func:
		return ParsedTypeFunction
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ParsedTypeNull
		}
		return ParsedTypeOf(rv.Elem().Interface())
	case reflect.Struct:
		if name := rv.Type().Name(); name != "" {
			return ParsedType(strings.ToLower(name))
		}
		return ParsedTypeObject
	default:
		return ParsedType(strings.ToLower(rv.Kind().String()))
	}
}

func floatParsedType(f float64) ParsedType {
	switch {
	case math.IsNaN(f):
		return ParsedTypeNaN
	case math.IsInf(f, 0):
		return ParsedTypeFloat
	case f == math.Trunc(f):
		return ParsedTypeInteger
	default:
		return ParsedTypeFloat
	}
}
