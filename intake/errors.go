package intake

import "fmt"

// ArgumentError is the single validation failure kind of the intake pipeline.
// Missing required questions, null values where a value is mandatory,
// duplicate option identifiers and unresolved fallbacks all surface as this
// one type; callers only branch on success vs. ArgumentError.
type ArgumentError struct {
	msg string
}

func (e *ArgumentError) Error() string {
	return e.msg
}

func argErrorf(format string, args ...any) *ArgumentError {
	return &ArgumentError{msg: fmt.Sprintf(format, args...)}
}
