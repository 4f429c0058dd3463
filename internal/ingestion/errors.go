package ingestion

import "fmt"

// Error reports input text that could not be read or used.
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingestion error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingestion error for %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// UnsupportedFormatError reports a binary document format that must be
// converted to text first.
type UnsupportedFormatError struct {
	Path   string
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q for %s: export the document as plain text or markdown", e.Format, e.Path)
}
