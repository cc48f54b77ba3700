package zodi18n_test

import (
	"testing"

	"github.com/dmitrymomot/zodi18n"
)

func BenchmarkMap(b *testing.B) {
	renderer := zodi18n.RenderFunc(func(key string, params zodi18n.RenderParams) string {
		return params.Default
	})
	mapper := zodi18n.New(zodi18n.WithRenderer(renderer))
	issue := zodi18n.Issue{
		Code:      zodi18n.CodeTooSmall,
		Origin:    zodi18n.OriginString,
		Minimum:   5,
		Inclusive: true,
		Message:   "String must contain at least 5 character(s)",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if msg := mapper.Map(issue); msg == "" {
			b.Fatal("expected a message")
		}
	}
}

func BenchmarkMapWithPath(b *testing.B) {
	renderer := zodi18n.RenderFunc(func(key string, params zodi18n.RenderParams) string {
		return params.Default
	})
	mapper := zodi18n.New(zodi18n.WithRenderer(renderer))
	issue := zodi18n.Issue{
		Code:    zodi18n.CodeInvalidType,
		Input:   zodi18n.Undefined,
		Path:    zodi18n.PathOf("user", "profile", "email"),
		Message: "Required",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if msg := mapper.Map(issue); msg == "" {
			b.Fatal("expected a message")
		}
	}
}

func BenchmarkMapFallbackOnly(b *testing.B) {
	mapper := zodi18n.New()
	issue := zodi18n.Issue{Code: zodi18n.Code("unknown"), Message: "baseline"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if msg := mapper.Map(issue); msg != "baseline" {
			b.Fatalf("expected baseline, got %s", msg)
		}
	}
}
