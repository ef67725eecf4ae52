package normalizer

import (
	"errors"
	"fmt"

	"fjacquet/chart-csv/internal/logging"
	"fjacquet/chart-csv/internal/models"
	"fjacquet/chart-csv/internal/parsererror"
)

// Sentinel errors returned by label edits.
var (
	ErrLabelNotFound = errors.New("label not found")
	ErrLabelExists   = errors.New("label already exists")
	ErrNoRows        = errors.New("no rows to load")
)

// Table is the editable table-mode input: a shared, ordered label set and one
// sparse series per dataset. Every series holds exactly one entry per label.
// At least one label and one series always remain.
type Table struct {
	labels []string
	series []*models.Series
	logger logging.Logger
}

// NewTable returns a table in its default state: one series over the
// default labels, all zero.
func NewTable(logger logging.Logger) *Table {
	t := &Table{logger: logging.OrDefault(logger)}
	t.Reset()
	return t
}

// Reset restores the default state.
func (t *Table) Reset() {
	t.labels = append([]string(nil), models.DefaultLabels...)
	t.series = []*models.Series{models.NewSeries(models.DefaultSeriesName(1), t.labels)}
}

// Labels returns a copy of the label set in order.
func (t *Table) Labels() []string {
	return append([]string(nil), t.labels...)
}

// SeriesCount returns the number of series.
func (t *Table) SeriesCount() int {
	return len(t.series)
}

// SeriesName returns the name of series i, or "" when out of range.
func (t *Table) SeriesName(i int) string {
	if !t.validSeries(i) {
		return ""
	}
	return t.series[i].Name
}

// Value returns the stored value of series i at label.
func (t *Table) Value(i int, label string) (float64, bool) {
	if !t.validSeries(i) {
		return 0, false
	}
	v, ok := t.series[i].Values[label]
	return v, ok
}

// HasLabel reports whether label is part of the label set.
func (t *Table) HasLabel(label string) bool {
	return t.indexOf(label) >= 0
}

// AddLabel appends the next unused letter identifier (A…Z, AA, AB…) and
// gives every series a zero entry for it.
func (t *Table) AddLabel() string {
	label := t.nextLabel()
	t.labels = append(t.labels, label)
	for _, s := range t.series {
		s.Values[label] = 0
	}
	return label
}

// RemoveLabel deletes label from the set and from every series. It refuses
// (returns false) when label is unknown or is the last one left.
func (t *Table) RemoveLabel(label string) bool {
	idx := t.indexOf(label)
	if idx < 0 || len(t.labels) <= 1 {
		return false
	}
	t.labels = append(t.labels[:idx], t.labels[idx+1:]...)
	for _, s := range t.series {
		delete(s.Values, label)
	}
	return true
}

// RenameLabel replaces oldLabel by newLabel in the label set and in every
// series, keeping its position. Renaming a label to itself changes nothing.
func (t *Table) RenameLabel(oldLabel, newLabel string) error {
	idx := t.indexOf(oldLabel)
	if idx < 0 {
		return fmt.Errorf("rename %q: %w", oldLabel, ErrLabelNotFound)
	}
	if oldLabel == newLabel {
		return nil
	}
	if t.HasLabel(newLabel) {
		return fmt.Errorf("rename %q to %q: %w", oldLabel, newLabel, ErrLabelExists)
	}

	t.labels[idx] = newLabel
	for _, s := range t.series {
		v := s.Values[oldLabel]
		delete(s.Values, oldLabel)
		s.Values[newLabel] = v
	}
	return nil
}

// AddSeries appends a series holding zero for every label and returns its
// index. An empty name is replaced by "Dataset N".
func (t *Table) AddSeries(name string) int {
	if name == "" {
		name = models.DefaultSeriesName(len(t.series) + 1)
	}
	t.series = append(t.series, models.NewSeries(name, t.labels))
	return len(t.series) - 1
}

// RemoveSeries deletes series i. It refuses (returns false) when i is out of
// range or the series is the last one left.
func (t *Table) RemoveSeries(i int) bool {
	if !t.validSeries(i) || len(t.series) <= 1 {
		return false
	}
	t.series = append(t.series[:i], t.series[i+1:]...)
	return true
}

// RenameSeries changes the legend name of series i.
func (t *Table) RenameSeries(i int, name string) bool {
	if !t.validSeries(i) {
		return false
	}
	t.series[i].Name = name
	return true
}

// SetValue parses text and stores it for series i at label. Text that is not
// a number stores 0. The stored value is returned; edits addressing an
// unknown series or label are ignored.
func (t *Table) SetValue(i int, label, text string) float64 {
	if !t.validSeries(i) || !t.HasLabel(label) {
		t.logger.Debug("Ignoring edit of unknown cell",
			logging.Field{Key: logging.FieldSeries, Value: i},
			logging.Field{Key: logging.FieldLabel, Value: label})
		return 0
	}

	v, err := parseNumber(text)
	if err != nil {
		t.logger.WithError(&parsererror.ParseError{
			Source: "table",
			Field:  t.series[i].Name + "@" + label,
			Value:  text,
			Err:    err,
		}).Debug("Non-numeric table value stored as 0")
	}
	t.series[i].Values[label] = v
	return v
}

// Materialize returns the canonical dataset: one dense value slice per
// series, aligned to the label order.
func (t *Table) Materialize() models.Dataset {
	ds := models.Dataset{
		Labels: t.Labels(),
		Series: make([]models.DataSeries, len(t.series)),
	}
	for i, s := range t.series {
		ds.Series[i] = models.DataSeries{Name: s.Name, Values: s.Materialize(t.labels)}
	}
	return ds
}

func (t *Table) indexOf(label string) int {
	for i, l := range t.labels {
		if l == label {
			return i
		}
	}
	return -1
}

func (t *Table) validSeries(i int) bool {
	return i >= 0 && i < len(t.series)
}

func (t *Table) nextLabel() string {
	for n := 0; ; n++ {
		if candidate := columnName(n); !t.HasLabel(candidate) {
			return candidate
		}
	}
}

// columnName maps 0→A, 25→Z, 26→AA, the way spreadsheet columns are named.
func columnName(n int) string {
	var b []byte
	for n >= 0 {
		b = append([]byte{byte('A' + n%26)}, b...)
		n = n/26 - 1
	}
	return string(b)
}
