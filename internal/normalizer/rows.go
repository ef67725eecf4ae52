package normalizer

import (
	"strings"

	"fjacquet/chart-csv/internal/logging"
	"fjacquet/chart-csv/internal/models"
	"fjacquet/chart-csv/internal/parsererror"
)

// Row is one long-format observation: the value of Series at Label. Value is
// kept as text so it goes through the same lenient parsing as table edits.
type Row struct {
	Series string `csv:"series" yaml:"series" json:"series"`
	Label  string `csv:"label" yaml:"label" json:"label"`
	Value  string `csv:"value" yaml:"value" json:"value"`
}

// LoadRows replaces the table contents with rows. Series appear in the order
// their name is first seen and labels are the union of every series' labels
// in first-seen order. The first value of a repeated (series, label) pair
// wins; pairs that never occur hold 0. Blank series names become "Dataset N".
// On empty input ErrNoRows is returned and the table is left unchanged.
func (t *Table) LoadRows(rows []Row) error {
	if len(rows) == 0 {
		return ErrNoRows
	}

	var labels []string
	seenLabel := make(map[string]bool)
	var series []*models.Series
	byName := make(map[string]*models.Series)

	for _, r := range rows {
		name := strings.TrimSpace(r.Series)
		if name == "" {
			name = models.DefaultSeriesName(1)
		}
		label := strings.TrimSpace(r.Label)

		s, ok := byName[name]
		if !ok {
			s = &models.Series{Name: name, Values: make(map[string]float64)}
			byName[name] = s
			series = append(series, s)
		}
		if !seenLabel[label] {
			seenLabel[label] = true
			labels = append(labels, label)
		}
		if _, dup := s.Values[label]; dup {
			t.logger.Debug("Ignoring repeated value",
				logging.Field{Key: logging.FieldSeries, Value: name},
				logging.Field{Key: logging.FieldLabel, Value: label},
				logging.Field{Key: logging.FieldValue, Value: r.Value})
			continue
		}

		v, err := parseNumber(r.Value)
		if err != nil {
			t.logger.WithError(&parsererror.ParseError{
				Source: "rows",
				Field:  name + "@" + label,
				Value:  r.Value,
				Err:    err,
			}).Debug("Non-numeric row value stored as 0")
		}
		s.Values[label] = v
	}

	for _, s := range series {
		for _, l := range labels {
			if _, ok := s.Values[l]; !ok {
				s.Values[l] = 0
			}
		}
	}

	t.labels = labels
	t.series = series
	t.logger.Debug("Loaded rows into table",
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
		logging.Field{Key: logging.FieldLabels, Value: len(labels)},
		logging.Field{Key: logging.FieldSeries, Value: len(series)})
	return nil
}
