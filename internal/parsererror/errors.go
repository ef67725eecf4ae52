// Package parsererror defines the typed errors raised while reading chart
// input and theme files.
package parsererror

import "fmt"

// ParseError describes a value that could not be parsed. The normalizer never
// returns it to callers: it is attached to the debug log entry that records
// the zero fallback.
type ParseError struct {
	Source string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Source, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a rejected configuration item, such as a custom
// theme with too few colors.
type ValidationError struct {
	Subject string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Subject, e.Reason)
}

// InvalidFormatError represents an input file that does not match the format
// expected by a parser.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	source := e.FilePath
	if source == "" {
		source = "<input>"
	}
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in '%s': %s. Expected: %s. Content snippet: '%s'",
			source, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in '%s': %s. Expected: %s",
		source, e.Msg, e.ExpectedFormat)
}
