package parser

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/chart-csv/internal/logging"
	"fjacquet/chart-csv/internal/normalizer"
	"fjacquet/chart-csv/internal/parsererror"
)

// CSVTextFormat describes the layout CSVTextParser accepts.
const CSVTextFormat = "header row (first cell ignored, then one series name per column) followed by label,value,... rows"

// CSVTextParser loads a whole file as CSV text, exactly as if it had been
// pasted into the CSV input.
type CSVTextParser struct {
	BaseParser
}

// NewCSVTextParser creates a CSVTextParser.
func NewCSVTextParser(logger logging.Logger) *CSVTextParser {
	return &CSVTextParser{BaseParser: NewBaseParser(logger)}
}

// Parse implements Parser.
func (p *CSVTextParser) Parse(r io.Reader, n *normalizer.Normalizer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading CSV text: %w", err)
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return &parsererror.InvalidFormatError{
			ExpectedFormat: CSVTextFormat,
			Msg:            "input is empty",
		}
	}

	n.SetCSVText(text)
	p.logger.Debug("Loaded CSV text",
		logging.Field{Key: logging.FieldFormat, Value: string(CSVText)},
		logging.Field{Key: logging.FieldCount, Value: len(data)})
	return nil
}
