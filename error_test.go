package zodi18n_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/zodi18n"
)

func TestErrorError(t *testing.T) {
	t.Run("no issues", func(t *testing.T) {
		assert.Equal(t, "validation failed", zodi18n.NewError().Error())
	})

	t.Run("single issue with path", func(t *testing.T) {
		err := zodi18n.NewError(zodi18n.Issue{
			Code: zodi18n.CodeInvalidType,
			Path: zodi18n.PathOf("user", "email"),
		})

		assert.Equal(t, "validation failed: invalid_type at user.email", err.Error())
	})

	t.Run("issue on the whole input", func(t *testing.T) {
		err := zodi18n.NewError(zodi18n.Issue{Code: zodi18n.CodeInvalidUnion})

		assert.Equal(t, "validation failed: invalid_union at (root)", err.Error())
	})

	t.Run("long issue lists are truncated", func(t *testing.T) {
		err := zodi18n.NewError(
			zodi18n.Issue{Code: zodi18n.CodeTooSmall, Path: zodi18n.PathOf("a")},
			zodi18n.Issue{Code: zodi18n.CodeTooBig, Path: zodi18n.PathOf("b")},
			zodi18n.Issue{Code: zodi18n.CodeCustom, Path: zodi18n.PathOf("c")},
			zodi18n.Issue{Code: zodi18n.CodeInvalidType, Path: zodi18n.PathOf("d")},
			zodi18n.Issue{Code: zodi18n.CodeInvalidValue, Path: zodi18n.PathOf("e")},
		)

		assert.Equal(t,
			"validation failed: too_small at a; too_big at b; custom at c; ... (total 5)",
			err.Error(),
		)
	})
}

func TestAsError(t *testing.T) {
	t.Run("direct value", func(t *testing.T) {
		err := zodi18n.NewError(zodi18n.Issue{Code: zodi18n.CodeCustom})

		verr, ok := zodi18n.AsError(err)

		require.True(t, ok)
		assert.Len(t, verr.Issues, 1)
	})

	t.Run("wrapped value", func(t *testing.T) {
		err := fmt.Errorf("parse request: %w", zodi18n.NewError(zodi18n.Issue{Code: zodi18n.CodeCustom}))

		_, ok := zodi18n.AsError(err)

		assert.True(t, ok)
	})

	t.Run("nil error", func(t *testing.T) {
		_, ok := zodi18n.AsError(nil)

		assert.False(t, ok)
	})

	t.Run("foreign error", func(t *testing.T) {
		_, ok := zodi18n.AsError(assert.AnError)

		assert.False(t, ok)
	})
}

func TestFirstMessage(t *testing.T) {
	t.Run("returns the first issue's message", func(t *testing.T) {
		err := zodi18n.NewError(
			zodi18n.Issue{Code: zodi18n.CodeTooSmall, Message: "Too short"},
			zodi18n.Issue{Code: zodi18n.CodeTooBig, Message: "Too long"},
		)

		msg, ferr := zodi18n.FirstMessage(err)

		require.NoError(t, ferr)
		assert.Equal(t, "Too short", msg)
	})

	t.Run("substitutes the generic message", func(t *testing.T) {
		err := zodi18n.NewError(zodi18n.Issue{Code: zodi18n.CodeTooSmall})

		msg, ferr := zodi18n.FirstMessage(err)

		require.NoError(t, ferr)
		assert.Equal(t, "Invalid value", msg)
	})

	t.Run("foreign error reports misuse", func(t *testing.T) {
		_, ferr := zodi18n.FirstMessage(assert.AnError)

		assert.ErrorIs(t, ferr, zodi18n.ErrNoIssues)
	})

	t.Run("empty issue list reports misuse", func(t *testing.T) {
		_, ferr := zodi18n.FirstMessage(zodi18n.NewError())

		assert.ErrorIs(t, ferr, zodi18n.ErrNoIssues)
	})

	t.Run("nil error reports misuse", func(t *testing.T) {
		_, ferr := zodi18n.FirstMessage(nil)

		assert.ErrorIs(t, ferr, zodi18n.ErrNoIssues)
	})
}

func TestCatchMessage(t *testing.T) {
	t.Run("nil result passes through", func(t *testing.T) {
		msg, err := zodi18n.CatchMessage(func() error { return nil })

		require.NoError(t, err)
		assert.Empty(t, msg)
	})

	t.Run("validation failure becomes a message", func(t *testing.T) {
		msg, err := zodi18n.CatchMessage(func() error {
			return zodi18n.NewError(zodi18n.Issue{Code: zodi18n.CodeCustom, Message: "Invalid coupon"})
		})

		require.NoError(t, err)
		assert.Equal(t, "Invalid coupon", msg)
	})

	t.Run("wrapped validation failure is still caught", func(t *testing.T) {
		msg, err := zodi18n.CatchMessage(func() error {
			return fmt.Errorf("checkout: %w", zodi18n.NewError(zodi18n.Issue{Message: "Invalid coupon"}))
		})

		require.NoError(t, err)
		assert.Equal(t, "Invalid coupon", msg)
	})

	t.Run("foreign error passes through unchanged", func(t *testing.T) {
		msg, err := zodi18n.CatchMessage(func() error { return assert.AnError })

		assert.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, msg)
	})

	t.Run("empty validation failure reports misuse", func(t *testing.T) {
		_, err := zodi18n.CatchMessage(func() error { return zodi18n.NewError() })

		assert.ErrorIs(t, err, zodi18n.ErrNoIssues)
	})
}
