package enrich

import "fmt"

// Error represents a failure to resolve an organization's website.
type Error struct {
	Name    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("enrich error for %q: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("enrich error for %q: %s", e.Name, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
