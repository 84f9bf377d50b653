package reconcile

import "fmt"

// ValidationError reports an input that cannot be reconciled: a missing
// required column or an upload rejected before parsing.
type ValidationError struct {
	// Source is the label of the offending input.
	Source string `json:"source"`
	// Field is the missing column, or "file" for upload checks.
	Field string `json:"field"`
	// Reason is a human readable explanation.
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Source, e.Reason)
}

// missingColumn builds the error for an absent required column.
func missingColumn(source, column string) *ValidationError {
	return &ValidationError{
		Source: source,
		Field:  column,
		Reason: fmt.Sprintf("file needs '%s' column", column),
	}
}
