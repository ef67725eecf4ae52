// Package parser reads chart input files into a normalizer. Two formats are
// supported: pasted-style CSV text (header row of series names, one row per
// label) and long-format rows files (series,label,value).
package parser

import (
	"io"

	"fjacquet/chart-csv/internal/logging"
	"fjacquet/chart-csv/internal/normalizer"
)

// Parser loads input read from r into n.
type Parser interface {
	// Parse reads the whole input and stores it in the normalizer: either as
	// CSV text or as the table contents. Implementations return
	// *parsererror.InvalidFormatError when the input does not match their
	// format; numeric problems inside well-formed input never fail.
	Parse(r io.Reader, n *normalizer.Normalizer) error
}

// LoggerConfigurable is implemented by parsers whose logger can be replaced.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// FullParser is a Parser whose logger can be replaced.
type FullParser interface {
	Parser
	LoggerConfigurable
}
