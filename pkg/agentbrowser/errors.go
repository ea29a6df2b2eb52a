package agentbrowser

import "fmt"

// Error is the single error kind returned by this package. Transport
// failures (tool not found), tool-reported failures (success=false in the
// response envelope), and malformed-output failures all use it; they are
// distinguished only by the message text.
type Error struct {
	// Op is the operation that failed (e.g. "click", "batch").
	Op string

	// Message is the human-readable failure reason, taken from the
	// envelope's error field or from the tool's stderr.
	Message string

	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("agent-browser %s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("agent-browser %s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError creates an Error for a tool-reported or protocol failure.
func newError(op, message string) *Error {
	return &Error{Op: op, Message: message}
}

// wrapError creates an Error that wraps an underlying error.
func wrapError(op, message string, err error) *Error {
	return &Error{Op: op, Message: message, Err: err}
}
