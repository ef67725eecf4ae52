package parsererror

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name:     "csv cell",
			err:      &ParseError{Source: "csv", Field: "Sales@2021", Value: "abc", Err: strconv.ErrSyntax},
			expected: "csv: failed to parse Sales@2021='abc': invalid syntax",
		},
		{
			name:     "empty table value",
			err:      &ParseError{Source: "table", Field: "Dataset 1@A", Value: "", Err: errors.New("empty")},
			expected: "table: failed to parse Dataset 1@A='': empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	err := &ParseError{Source: "csv", Field: "x", Value: "y", Err: strconv.ErrSyntax}

	assert.True(t, errors.Is(err, strconv.ErrSyntax))

	var target *ParseError
	assert.True(t, errors.As(error(err), &target))
	assert.Equal(t, "csv", target.Source)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Subject: "theme 'tiny'", Reason: "needs at least 5 colors, got 2"}
	assert.Equal(t, "validation failed for theme 'tiny': needs at least 5 colors, got 2", err.Error())
}

func TestInvalidFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      *InvalidFormatError
		expected string
	}{
		{
			name: "with snippet",
			err: &InvalidFormatError{
				FilePath:             "rows.csv",
				ExpectedFormat:       "series,label,value",
				ActualContentSnippet: "a,b",
				Msg:                  "missing required column 'value'",
			},
			expected: "invalid format in 'rows.csv': missing required column 'value'. Expected: series,label,value. Content snippet: 'a,b'",
		},
		{
			name: "anonymous reader",
			err: &InvalidFormatError{
				ExpectedFormat: "series,label,value",
				Msg:            "no data rows",
			},
			expected: "invalid format in '<input>': no data rows. Expected: series,label,value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}
