package models

import (
	"fmt"
	"strings"
)

// ChartType selects which of the three encodings the builder applies.
type ChartType string

// Supported chart types
const (
	ChartTypeBar  ChartType = "bar"
	ChartTypeLine ChartType = "line"
	ChartTypePie  ChartType = "pie"
)

// ChartTypes lists every supported chart type in display order.
var ChartTypes = []ChartType{ChartTypeBar, ChartTypeLine, ChartTypePie}

// ParseChartType converts a user supplied identifier into a ChartType.
func ParseChartType(s string) (ChartType, error) {
	ct := ChartType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ChartTypes {
		if ct == known {
			return ct, nil
		}
	}
	return "", fmt.Errorf("unknown chart type %q (expected bar, line or pie)", s)
}

// HasAxes reports whether the chart type is drawn on cartesian axes.
func (c ChartType) HasAxes() bool {
	return c == ChartTypeBar || c == ChartTypeLine
}

// LegendPosition is the side of the chart the legend is drawn on.
type LegendPosition string

// Legend positions understood by the rendering collaborator
const (
	LegendTop       LegendPosition = "top"
	LegendBottom    LegendPosition = "bottom"
	LegendLeft      LegendPosition = "left"
	LegendRight     LegendPosition = "right"
	LegendCenter    LegendPosition = "center"
	LegendChartArea LegendPosition = "chartArea"
)

// LegendPositions lists every legend position.
var LegendPositions = []LegendPosition{
	LegendTop, LegendBottom, LegendLeft, LegendRight, LegendCenter, LegendChartArea,
}

// ParseLegendPosition converts a user supplied identifier into a LegendPosition.
// Matching is case-insensitive so "chartarea" resolves to LegendChartArea.
func ParseLegendPosition(s string) (LegendPosition, error) {
	trimmed := strings.TrimSpace(s)
	for _, known := range LegendPositions {
		if strings.EqualFold(trimmed, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown legend position %q", s)
}

// Font size bounds for the two size knobs.
const (
	MinTitleFontSize = 16
	MaxTitleFontSize = 48
	MinAxisFontSize  = 10
	MaxAxisFontSize  = 24
)

// Table defaults
const (
	DefaultSeriesPrefix = "Dataset"
)

// DefaultLabels is the label set of a freshly reset table.
var DefaultLabels = []string{"A", "B", "C", "D", "E"}
