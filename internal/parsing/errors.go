package parsing

import (
	"errors"
	"fmt"
)

// ErrAnnotatorUnavailable is reported in a document's error field when the
// kit was built without an annotator.
var ErrAnnotatorUnavailable = errors.New("NLP resource unavailable")

// ParseError represents a failure to turn a document into a parsed record
type ParseError struct {
	Message string
	Source  string
	Cause   error
}

func (e *ParseError) Error() string {
	msg := "parse error: " + e.Message
	if e.Source != "" {
		msg = fmt.Sprintf("parse error in %s: %s", e.Source, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
