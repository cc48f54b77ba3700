package zodi18n

import "errors"

var (
	// ErrNoIssues reports that a message-extraction helper was handed an
	// error with no issues to read: nil, a foreign error type, or an
	// empty validation failure.
	ErrNoIssues = errors.New("no validation issues")
)
