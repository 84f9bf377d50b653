package tabular

import "fmt"

// ParseError reports an upload whose content could not be read as a table.
type ParseError struct {
	// Source is the label of the input.
	Source string
	// Filename is the uploaded file name.
	Filename string
	// Err is the underlying reader error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q: %v", e.Source, e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
