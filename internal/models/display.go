package models

// DisplayConfig holds every user toggle that shapes the render configuration.
// It is a plain value: the session mutates it through explicit setters and
// the builder only reads it.
type DisplayConfig struct {
	ChartType      ChartType      `json:"chart_type" yaml:"chart_type" mapstructure:"type"`
	ShowLegend     bool           `json:"show_legend" yaml:"show_legend" mapstructure:"show_legend"`
	LegendPosition LegendPosition `json:"legend_position" yaml:"legend_position" mapstructure:"legend_position"`
	ShowGridlines  bool           `json:"show_gridlines" yaml:"show_gridlines" mapstructure:"show_gridlines"`
	ShowDataLabels bool           `json:"show_data_labels" yaml:"show_data_labels" mapstructure:"show_data_labels"`
	Title          string         `json:"title" yaml:"title" mapstructure:"title"`
	XAxisLabel     string         `json:"x_axis_label" yaml:"x_axis_label" mapstructure:"x_axis_label"`
	YAxisLabel     string         `json:"y_axis_label" yaml:"y_axis_label" mapstructure:"y_axis_label"`
	TitleFontSize  int            `json:"title_font_size" yaml:"title_font_size" mapstructure:"title_font_size"`
	AxisFontSize   int            `json:"axis_font_size" yaml:"axis_font_size" mapstructure:"axis_font_size"`
}

// DefaultDisplayConfig mirrors the initial state of the chart editor.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		ChartType:      ChartTypeLine,
		ShowLegend:     true,
		LegendPosition: LegendTop,
		ShowGridlines:  true,
		ShowDataLabels: false,
		TitleFontSize:  20,
		AxisFontSize:   12,
	}
}

// ClampTitleFontSize bounds size to the title slider range.
func ClampTitleFontSize(size int) int {
	return clamp(size, MinTitleFontSize, MaxTitleFontSize)
}

// ClampAxisFontSize bounds size to the axis slider range.
func ClampAxisFontSize(size int) int {
	return clamp(size, MinAxisFontSize, MaxAxisFontSize)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
