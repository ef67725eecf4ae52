// Package normalizer turns the two input modes, the editable table and pasted
// CSV text, into the canonical dataset consumed by the chart configuration
// builder. Numeric input is parsed leniently: anything unreadable becomes 0
// and is reported only through debug logging.
package normalizer

import (
	"strings"

	"fjacquet/chart-csv/internal/logging"
	"fjacquet/chart-csv/internal/models"
	"fjacquet/chart-csv/internal/parsererror"
)

// Mode names the input mode a dataset was generated from.
type Mode string

// Input modes
const (
	ModeTable Mode = "table"
	ModeCSV   Mode = "csv"
)

// Normalizer owns the table-mode state and the CSV text buffer and decides
// which one a dataset is generated from.
type Normalizer struct {
	table   *Table
	csvText string
	logger  logging.Logger
}

// New creates a normalizer with a default table and no CSV text.
func New(logger logging.Logger) *Normalizer {
	logger = logging.OrDefault(logger)
	return &Normalizer{
		table:  NewTable(logger),
		logger: logger,
	}
}

// Table returns the editable table.
func (n *Normalizer) Table() *Table {
	return n.table
}

// SetCSVText replaces the CSV text buffer.
func (n *Normalizer) SetCSVText(text string) {
	n.csvText = text
}

// CSVText returns the CSV text buffer as entered.
func (n *Normalizer) CSVText() string {
	return n.csvText
}

// Mode reports which input Generate will use: CSV text wins whenever it holds
// anything besides whitespace.
func (n *Normalizer) Mode() Mode {
	if strings.TrimSpace(n.csvText) != "" {
		return ModeCSV
	}
	return ModeTable
}

// Generate produces the dataset for the current input.
func (n *Normalizer) Generate() models.Dataset {
	mode := n.Mode()
	var ds models.Dataset
	if mode == ModeCSV {
		ds = parseCSV(n.csvText, func(pe *parsererror.ParseError) {
			n.logger.WithError(pe).Debug("Non-numeric CSV value stored as 0")
		})
	} else {
		ds = n.table.Materialize()
	}

	n.logger.Debug("Generated dataset",
		logging.Field{Key: logging.FieldMode, Value: string(mode)},
		logging.Field{Key: logging.FieldLabels, Value: len(ds.Labels)},
		logging.Field{Key: logging.FieldSeries, Value: len(ds.Series)})
	return ds
}

// Clear resets the table, empties the CSV text and returns an empty dataset.
func (n *Normalizer) Clear() models.Dataset {
	n.table.Reset()
	n.csvText = ""
	return models.EmptyDataset()
}
