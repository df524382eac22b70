package apperr

import "errors"

// Kind classifies a failure for the HTTP layer. The zero value is internal so
// an unclassified error never maps to anything weaker than a 500.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUpstream
)

// Error carries a caller-safe message and a classification. The wrapped
// cause is kept for logs and errors.Is/As, never for response bodies.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation marks a missing or malformed request parameter.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Upstream marks a failure of an external collaborator (completion provider).
func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// Internal marks everything else, persistence failures included.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// Classify extracts the *Error from err. Errors that carry no classification
// collapse to an internal error with a generic message so handlers never
// echo internals back to the caller.
func Classify(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}
