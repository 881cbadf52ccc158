package lexicon

import "fmt"

// ResourceError represents a lexical resource that could not be loaded
type ResourceError struct {
	Message string
	Path    string
	Cause   error
}

func (e *ResourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lexicon error: %s (%s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("lexicon error: %s (%s)", e.Message, e.Path)
}

func (e *ResourceError) Unwrap() error {
	return e.Cause
}
