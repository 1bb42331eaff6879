package quote

import (
	"errors"
	"fmt"
)

// QuoteError is the expected, user-facing failure mode of a fetch: empty
// symbol, no data, incomplete data, or a wrapped backend failure. Anything
// else surfacing from Fetch is an unexpected error.
type QuoteError struct {
	Message string
	Cause   error
}

func (e *QuoteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%v)", e.Message, e.Cause)
	}
	return e.Message
}

func (e *QuoteError) Unwrap() error {
	return e.Cause
}

// NewQuoteError creates a QuoteError without an underlying cause.
func NewQuoteError(message string) *QuoteError {
	return &QuoteError{Message: message}
}

// WrapQuoteError preserves the underlying failure detail for diagnosability.
func WrapQuoteError(message string, cause error) *QuoteError {
	return &QuoteError{Message: message, Cause: cause}
}

// IsQuoteError reports whether err is (or wraps) a QuoteError.
func IsQuoteError(err error) bool {
	var qe *QuoteError
	return errors.As(err, &qe)
}
