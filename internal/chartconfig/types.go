package chartconfig

import "fjacquet/chart-csv/internal/models"

// Kind discriminates the render configuration variants.
type Kind string

// Render configuration kinds
const (
	KindBar    Kind = "bar"
	KindLine   Kind = "line"
	KindPie    Kind = "pie"
	KindNoData Kind = "no_data"
)

// RenderConfig is what the builder hands to the rendering collaborator. The
// concrete type is one of *BarConfig, *LineConfig, *PieConfig or *NoData.
type RenderConfig interface {
	Kind() Kind
}

// Font carries a font size in pixels.
type Font struct {
	Size int `json:"size" yaml:"size"`
}

// Title is the chart heading.
type Title struct {
	Display bool   `json:"display" yaml:"display"`
	Text    string `json:"text" yaml:"text"`
	Font    Font   `json:"font" yaml:"font"`
}

// Legend places the series (or slice) legend. It is absent when hidden.
type Legend struct {
	Position  models.LegendPosition `json:"position" yaml:"position"`
	TextColor string                `json:"text_color,omitempty" yaml:"text_color,omitempty"`
	Font      Font                  `json:"font" yaml:"font"`
}

// Tooltip holds the pre-formatted hover text: Texts[s][i] belongs to
// dataset s at label i.
type Tooltip struct {
	Font  Font       `json:"font" yaml:"font"`
	Texts [][]string `json:"texts" yaml:"texts"`
}

// DataLabels are the value labels drawn on the chart itself. They use the
// same text as the tooltip.
type DataLabels struct {
	Font  Font       `json:"font" yaml:"font"`
	Texts [][]string `json:"texts" yaml:"texts"`
}

// Axis is one cartesian axis.
type Axis struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	ShowTitle   bool   `json:"show_title" yaml:"show_title"`
	TitleFont   Font   `json:"title_font" yaml:"title_font"`
	TickFont    Font   `json:"tick_font" yaml:"tick_font"`
	ShowGrid    bool   `json:"show_grid" yaml:"show_grid"`
	BeginAtZero bool   `json:"begin_at_zero" yaml:"begin_at_zero"`
}

// Axes groups the category (X) and value (Y) axes of bar and line charts.
type Axes struct {
	X Axis `json:"x" yaml:"x"`
	Y Axis `json:"y" yaml:"y"`
}

// Chart is the part of a render configuration shared by every chart type.
type Chart struct {
	Type       Kind        `json:"kind" yaml:"kind"`
	Theme      string      `json:"theme" yaml:"theme"`
	Labels     []string    `json:"labels" yaml:"labels"`
	Title      Title       `json:"title" yaml:"title"`
	Legend     *Legend     `json:"legend,omitempty" yaml:"legend,omitempty"`
	Tooltip    Tooltip     `json:"tooltip" yaml:"tooltip"`
	DataLabels *DataLabels `json:"data_labels,omitempty" yaml:"data_labels,omitempty"`
}

// BarDataset is one series drawn as solid bars.
type BarDataset struct {
	Label           string    `json:"label" yaml:"label"`
	Data            []float64 `json:"data" yaml:"data"`
	BackgroundColor string    `json:"background_color" yaml:"background_color"`
	BorderWidth     int       `json:"border_width" yaml:"border_width"`
}

// LineDataset is one series drawn as a smoothed line over a translucent area.
type LineDataset struct {
	Label                string    `json:"label" yaml:"label"`
	Data                 []float64 `json:"data" yaml:"data"`
	BorderColor          string    `json:"border_color" yaml:"border_color"`
	BackgroundColor      string    `json:"background_color" yaml:"background_color"`
	Fill                 bool      `json:"fill" yaml:"fill"`
	Tension              float64   `json:"tension" yaml:"tension"`
	PointBackgroundColor string    `json:"point_background_color" yaml:"point_background_color"`
	PointBorderColor     string    `json:"point_border_color" yaml:"point_border_color"`
	PointRadius          int       `json:"point_radius" yaml:"point_radius"`
	PointHoverRadius     int       `json:"point_hover_radius" yaml:"point_hover_radius"`
	BorderWidth          int       `json:"border_width" yaml:"border_width"`
}

// PieDataset is one series drawn as slices, colored per category.
type PieDataset struct {
	Label            string    `json:"label" yaml:"label"`
	Data             []float64 `json:"data" yaml:"data"`
	BackgroundColors []string  `json:"background_colors" yaml:"background_colors"`
	BorderColor      string    `json:"border_color" yaml:"border_color"`
	BorderWidth      int       `json:"border_width" yaml:"border_width"`
	HoverOffset      int       `json:"hover_offset" yaml:"hover_offset"`
}

// BarConfig renders a bar chart.
type BarConfig struct {
	Chart    `yaml:",inline"`
	Datasets []BarDataset `json:"datasets" yaml:"datasets"`
	Axes     Axes         `json:"axes" yaml:"axes"`
}

// Kind implements RenderConfig.
func (*BarConfig) Kind() Kind { return KindBar }

// LineConfig renders a line chart.
type LineConfig struct {
	Chart    `yaml:",inline"`
	Datasets []LineDataset `json:"datasets" yaml:"datasets"`
	Axes     Axes          `json:"axes" yaml:"axes"`
}

// Kind implements RenderConfig.
func (*LineConfig) Kind() Kind { return KindLine }

// PieConfig renders a pie chart. Pie charts have no axes.
type PieConfig struct {
	Chart    `yaml:",inline"`
	Datasets []PieDataset `json:"datasets" yaml:"datasets"`
}

// Kind implements RenderConfig.
func (*PieConfig) Kind() Kind { return KindPie }

// NoData is returned instead of a chart when there is nothing to plot. The
// renderer shows Message as a placeholder.
type NoData struct {
	Type    Kind   `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
	Hint    string `json:"hint" yaml:"hint"`
}

// Kind implements RenderConfig.
func (*NoData) Kind() Kind { return KindNoData }

// NewNoData returns the empty-state sentinel.
func NewNoData() *NoData {
	return &NoData{
		Type:    KindNoData,
		Message: "No data to display",
		Hint:    "Please input your data to see the visualization",
	}
}
