package llm

import "fmt"

// APICallError is returned when a Gemini request fails or yields no text.
type APICallError struct {
	Model   string
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("gemini %s: %s: %v", e.Model, e.Message, e.Cause)
	}
	return fmt.Sprintf("gemini %s: %s", e.Model, e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}
