package config

import "fmt"

// ValidationError reports an out-of-range configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config error: %s %s", e.Field, e.Message)
}
