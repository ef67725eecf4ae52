// Package models holds the value types shared by the normalizer, the chart
// configuration builder and the session: series, canonical datasets and the
// display configuration.
package models

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Series is one named series as edited in table mode. Values is sparse: a
// label missing from the map reads as 0 when materialized.
type Series struct {
	Name   string             `json:"name" yaml:"name"`
	Values map[string]float64 `json:"values" yaml:"values"`
}

// NewSeries creates a series holding 0 for every label.
func NewSeries(name string, labels []string) *Series {
	values := make(map[string]float64, len(labels))
	for _, l := range labels {
		values[l] = 0
	}
	return &Series{Name: name, Values: values}
}

// DefaultSeriesName returns the generated name of the n-th series (1-based).
func DefaultSeriesName(n int) string {
	return fmt.Sprintf("%s %d", DefaultSeriesPrefix, n)
}

// Value returns the value stored for label, or 0 when absent.
func (s *Series) Value(label string) float64 {
	return s.Values[label]
}

// Materialize resolves the sparse values into a dense slice aligned to labels.
func (s *Series) Materialize(labels []string) []float64 {
	out := make([]float64, len(labels))
	for i, l := range labels {
		out[i] = s.Value(l)
	}
	return out
}

// DataSeries is a materialized series: Values[i] belongs to Dataset.Labels[i].
type DataSeries struct {
	Name   string    `json:"name" yaml:"name"`
	Values []float64 `json:"values" yaml:"values"`
}

// Sum returns the exact total of the finite series values. NaN and
// infinities count as 0.
func (d DataSeries) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, v := range d.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total
}

// Dataset is the canonical (labels, series) pair handed to the builder.
type Dataset struct {
	Labels []string     `json:"labels" yaml:"labels"`
	Series []DataSeries `json:"series" yaml:"series"`
}

// EmptyDataset returns a dataset with no labels and no series.
func EmptyDataset() Dataset {
	return Dataset{Labels: []string{}, Series: []DataSeries{}}
}

// IsEmpty reports whether there is nothing to chart.
func (d Dataset) IsEmpty() bool {
	return len(d.Labels) == 0 || len(d.Series) == 0
}

// IsAligned reports whether every series has exactly one value per label.
func (d Dataset) IsAligned() bool {
	for _, s := range d.Series {
		if len(s.Values) != len(d.Labels) {
			return false
		}
	}
	return true
}

// SeriesNames returns the legend entries in series order.
func (d Dataset) SeriesNames() []string {
	names := make([]string, len(d.Series))
	for i, s := range d.Series {
		names[i] = s.Name
	}
	return names
}
