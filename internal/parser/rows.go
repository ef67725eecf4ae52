package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/chart-csv/internal/logging"
	"fjacquet/chart-csv/internal/normalizer"
	"fjacquet/chart-csv/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// RowsFormat describes the layout RowsParser accepts.
const RowsFormat = "header row with series, label and value columns, one observation per row"

var requiredColumns = []string{"series", "label", "value"}

// RowsParser loads a long-format file, one (series, label, value) observation
// per row, into the normalizer's table.
type RowsParser struct {
	BaseParser
	delimiter rune
}

// NewRowsParser creates a RowsParser splitting fields on delimiter. A zero
// delimiter means ','.
func NewRowsParser(logger logging.Logger, delimiter rune) *RowsParser {
	if delimiter == 0 {
		delimiter = ','
	}
	return &RowsParser{BaseParser: NewBaseParser(logger), delimiter: delimiter}
}

// headerReader records the header row while gocsv consumes the input.
type headerReader struct {
	*csv.Reader
	header []string
}

func (h *headerReader) Read() ([]string, error) {
	rec, err := h.Reader.Read()
	if err == nil && h.header == nil {
		h.header = rec
	}
	return rec, err
}

func (h *headerReader) ReadAll() ([][]string, error) {
	recs, err := h.Reader.ReadAll()
	if len(recs) > 0 && h.header == nil {
		h.header = recs[0]
	}
	return recs, err
}

// Parse implements Parser.
func (p *RowsParser) Parse(r io.Reader, n *normalizer.Normalizer) error {
	p.logger.Debug("Parsing rows file",
		logging.Field{Key: logging.FieldDelimiter, Value: string(p.delimiter)})

	reader := csv.NewReader(r)
	reader.Comma = p.delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	hr := &headerReader{Reader: reader}

	var rows []normalizer.Row
	if err := gocsv.UnmarshalCSV(hr, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return &parsererror.InvalidFormatError{ExpectedFormat: RowsFormat, Msg: "input is empty"}
		}
		p.logger.WithError(err).Error("Failed to read rows file")
		return fmt.Errorf("error reading rows file: %w", err)
	}

	if missing := missingColumns(hr.header); len(missing) > 0 {
		return &parsererror.InvalidFormatError{
			ExpectedFormat:       RowsFormat,
			ActualContentSnippet: snippet(strings.Join(hr.header, string(p.delimiter))),
			Msg:                  "missing column(s) " + strings.Join(missing, ", "),
		}
	}
	if len(rows) == 0 {
		return &parsererror.InvalidFormatError{ExpectedFormat: RowsFormat, Msg: "no data rows"}
	}

	if err := n.Table().LoadRows(rows); err != nil {
		return fmt.Errorf("error loading rows: %w", err)
	}
	p.logger.Info("Loaded rows file",
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = true
	}
	var missing []string
	for _, c := range requiredColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	return missing
}
