package zodi18n_test

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/zodi18n"
)

type loginForm struct {
	Email string
}

func TestParsedTypeOf(t *testing.T) {
	now := time.Now()
	var nilInt *int

	tests := []struct {
		name  string
		input any
		want  zodi18n.ParsedType
	}{
		{"nil is null", nil, zodi18n.ParsedTypeNull},
		{"undefined sentinel", zodi18n.Undefined, zodi18n.ParsedTypeUndefined},
		{"bool", true, zodi18n.ParsedTypeBoolean},
		{"string", "hello", zodi18n.ParsedTypeString},
		{"int", 42, zodi18n.ParsedTypeInteger},
		{"negative int", -7, zodi18n.ParsedTypeInteger},
		{"uint8", uint8(255), zodi18n.ParsedTypeInteger},
		{"fractional float", 3.14, zodi18n.ParsedTypeFloat},
		{"integral float", float64(5), zodi18n.ParsedTypeInteger},
		{"float32", float32(2.5), zodi18n.ParsedTypeFloat},
		{"nan", math.NaN(), zodi18n.ParsedTypeNaN},
		{"positive infinity", math.Inf(1), zodi18n.ParsedTypeFloat},
		{"json integer", json.Number("42"), zodi18n.ParsedTypeInteger},
		{"json fraction", json.Number("3.5"), zodi18n.ParsedTypeFloat},
		{"json garbage", json.Number("zz"), zodi18n.ParsedTypeNaN},
		{"time value", now, zodi18n.ParsedTypeDate},
		{"time pointer", &now, zodi18n.ParsedTypeDate},
		{"slice", []int{1, 2}, zodi18n.ParsedTypeArray},
		{"array", [2]string{"a", "b"}, zodi18n.ParsedTypeArray},
		{"map", map[string]int{"a": 1}, zodi18n.ParsedTypeMap},
		{"function", func() {}, zodi18n.ParsedTypeFunction},
		{"anonymous struct", struct{ X int }{}, zodi18n.ParsedTypeObject},
		{"named struct", loginForm{}, zodi18n.ParsedType("loginform")},
		{"pointer to named struct", &loginForm{}, zodi18n.ParsedType("loginform")},
		{"nil typed pointer", nilInt, zodi18n.ParsedTypeNull},
		{"pointer to int", new(int), zodi18n.ParsedTypeInteger},
		{"channel", make(chan int), zodi18n.ParsedType("chan")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, zodi18n.ParsedTypeOf(tt.input))
		})
	}
}

func TestUndefinedString(t *testing.T) {
	t.Run("prints as undefined", func(t *testing.T) {
		assert.Equal(t, "undefined", fmt.Sprint(zodi18n.Undefined))
	})
}
