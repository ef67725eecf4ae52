package normalizer

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	errNoNumber    = errors.New("no numeric prefix")
	errNonFinite   = errors.New("value is not finite")
	errMissingCell = errors.New("missing cell")
)

// numericPrefix matches the longest leading decimal literal, the same prefix a
// browser's parseFloat would consume.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber reads a user typed value leniently. Leading whitespace is
// skipped and trailing garbage after a numeric prefix is ignored ("12kg" is
// 12). When no number can be read, or the result is not finite, it returns
// (0, false): callers store the zero instead of rejecting the input.
func ParseNumber(text string) (float64, bool) {
	v, err := parseNumber(text)
	return v, err == nil
}

func parseNumber(text string) (float64, error) {
	trimmed := strings.TrimLeft(text, " \t\r\n\f\v")
	match := numericPrefix.FindString(trimmed)
	if match == "" {
		return 0, errNoNumber
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errNonFinite
	}
	return v, nil
}
