package thermoinp

import "fmt"

// FormatError reports input that does not match the fixed-column layout or
// the expected marker sequence. It is fatal to the record being parsed;
// the decoder never substitutes defaults for unparseable fields.
type FormatError struct {
	Species string // species name, when known at the point of failure
	Field   string // offending field or structural element
	Err     error  // underlying cause, if any
}

func (e *FormatError) Error() string {
	msg := "thermoinp: malformed " + e.Field
	if e.Species != "" {
		msg = fmt.Sprintf("thermoinp: species %q: malformed %s", e.Species, e.Field)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

func formatErrf(species, field string, err error) *FormatError {
	return &FormatError{Species: species, Field: field, Err: err}
}
