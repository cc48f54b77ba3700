package zodi18n

import (
	"errors"
	"fmt"
	"strings"
)

// Error is a validation failure carrying every issue found in one run.
// Validation layers return it; the helpers here and on Mapper unpack it.
type Error struct {
	Issues []Issue
}

// NewError builds an Error from the given issues.
func NewError(issues ...Issue) *Error {
	return &Error{Issues: issues}
}

// Error summarizes up to three issues as "code at path" entries.
func (e *Error) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, 3)
	for i, issue := range e.Issues {
		if i == 3 {
			break
		}
		at := issue.Path.String()
		if at == "" {
			at = "(root)"
		}
		parts = append(parts, fmt.Sprintf("%s at %s", issue.Code, at))
	}
	summary := strings.Join(parts, "; ")
	if len(e.Issues) > 3 {
		summary = fmt.Sprintf("%s; ... (total %d)", summary, len(e.Issues))
	}
	return "validation failed: " + summary
}

// AsError extracts an *Error from an error chain.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// FirstMessage returns the first issue's baseline message, substituting a
// generic one when the issue carries none. It returns ErrNoIssues when err
// is nil, foreign, or holds no issues; that signals caller misuse rather
// than a validation outcome.
func FirstMessage(err error) (string, error) {
	verr, ok := AsError(err)
	if !ok || len(verr.Issues) == 0 {
		return "", ErrNoIssues
	}
	return defaultFallback(verr.Issues[0]), nil
}

// CatchMessage runs fn and converts its validation failure into the first
// issue's message. Any other error passes through unchanged, preserving
// the original chain for unrelated failures.
func CatchMessage(fn func() error) (string, error) {
	err := fn()
	if err == nil {
		return "", nil
	}
	if _, ok := AsError(err); ok {
		return FirstMessage(err)
	}
	return "", err
}
