package ranking

import "fmt"

// ScoringError represents an invalid scoring configuration
type ScoringError struct {
	Message string
	Cause   error
}

func (e *ScoringError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scoring error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("scoring error: %s", e.Message)
}

func (e *ScoringError) Unwrap() error {
	return e.Cause
}
