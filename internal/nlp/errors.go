package nlp

import "fmt"

// ResourceError represents an annotator resource that could not be loaded
type ResourceError struct {
	Message string
	Cause   error
}

func (e *ResourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("NLP resource unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("NLP resource unavailable: %s", e.Message)
}

func (e *ResourceError) Unwrap() error {
	return e.Cause
}
