package docread

import "fmt"

// ReadError represents a document that could not be turned into text
type ReadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("read error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("read error for %s: %s", e.Path, e.Message)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
