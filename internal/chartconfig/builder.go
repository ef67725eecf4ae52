// Package chartconfig derives a complete, serializable render configuration
// from a canonical dataset, a theme and the display toggles. Building is pure
// and total: the same inputs always yield the same configuration and no input
// makes it fail.
package chartconfig

import (
	"fjacquet/chart-csv/internal/logging"
	"fjacquet/chart-csv/internal/models"
	"fjacquet/chart-csv/internal/theme"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Visual encoding constants.
const (
	LineTension          = 0.4
	LineFillAlpha        = 0.2
	LineBorderWidth      = 2
	LinePointRadius      = 4
	LinePointHoverRadius = 6
	PieBorderWidth       = 2
	PieHoverOffset       = 8
)

// Builder turns datasets into render configurations.
type Builder struct {
	printer *message.Printer
	logger  logging.Logger
}

// NewBuilder creates a builder whose bar and line value text is grouped
// according to lang.
func NewBuilder(lang language.Tag, logger logging.Logger) *Builder {
	return &Builder{
		printer: message.NewPrinter(lang),
		logger:  logging.OrDefault(logger),
	}
}

// Build produces the render configuration for ds. An empty dataset yields
// *NoData. Unknown chart types are drawn as bars.
func (b *Builder) Build(ds models.Dataset, th theme.Theme, dc models.DisplayConfig) RenderConfig {
	if ds.IsEmpty() {
		b.logger.Debug("Nothing to chart, returning empty state",
			logging.Field{Key: logging.FieldLabels, Value: len(ds.Labels)},
			logging.Field{Key: logging.FieldSeries, Value: len(ds.Series)})
		return NewNoData()
	}

	if !ds.IsAligned() {
		b.logger.Debug("Dataset is not aligned, padding series to the label count",
			logging.Field{Key: logging.FieldLabels, Value: len(ds.Labels)})
	}

	if !dc.ChartType.HasAxes() && (dc.XAxisLabel != "" || dc.YAxisLabel != "") {
		b.logger.Debug("Axis titles are ignored for this chart type",
			logging.Field{Key: logging.FieldChartType, Value: string(dc.ChartType)})
	}

	data := dense(ds)
	var cfg RenderConfig
	switch dc.ChartType {
	case models.ChartTypePie:
		cfg = b.pie(ds, data, th, dc)
	case models.ChartTypeLine:
		cfg = b.line(ds, data, th, dc)
	default:
		cfg = b.bar(ds, data, th, dc)
	}

	b.logger.Debug("Built render configuration",
		logging.Field{Key: logging.FieldChartType, Value: string(cfg.Kind())},
		logging.Field{Key: logging.FieldTheme, Value: th.ID},
		logging.Field{Key: logging.FieldSeries, Value: len(ds.Series)})
	return cfg
}

func (b *Builder) bar(ds models.Dataset, data []models.DataSeries, th theme.Theme, dc models.DisplayConfig) *BarConfig {
	cfg := &BarConfig{
		Chart:    b.chart(KindBar, ds, th, dc, b.valueTexts(data)),
		Datasets: make([]BarDataset, len(ds.Series)),
		Axes:     axes(dc),
	}
	for i, s := range data {
		cfg.Datasets[i] = BarDataset{
			Label:           s.Name,
			Data:            s.Values,
			BackgroundColor: th.Color(i),
			BorderWidth:     0,
		}
	}
	return cfg
}

func (b *Builder) line(ds models.Dataset, data []models.DataSeries, th theme.Theme, dc models.DisplayConfig) *LineConfig {
	cfg := &LineConfig{
		Chart:    b.chart(KindLine, ds, th, dc, b.valueTexts(data)),
		Datasets: make([]LineDataset, len(ds.Series)),
		Axes:     axes(dc),
	}
	for i, s := range data {
		color := th.Color(i)
		cfg.Datasets[i] = LineDataset{
			Label:                s.Name,
			Data:                 s.Values,
			BorderColor:          color,
			BackgroundColor:      theme.WithAlpha(color, LineFillAlpha),
			Fill:                 true,
			Tension:              LineTension,
			PointBackgroundColor: theme.White,
			PointBorderColor:     color,
			PointRadius:          LinePointRadius,
			PointHoverRadius:     LinePointHoverRadius,
			BorderWidth:          LineBorderWidth,
		}
	}
	return cfg
}

func (b *Builder) pie(ds models.Dataset, data []models.DataSeries, th theme.Theme, dc models.DisplayConfig) *PieConfig {
	texts := make([][]string, len(data))
	for i, s := range data {
		total := s.Sum()
		texts[i] = make([]string, len(s.Values))
		for j, v := range s.Values {
			texts[i][j] = pieText(b.printer, v, total)
		}
	}

	cfg := &PieConfig{
		Chart:    b.chart(KindPie, ds, th, dc, texts),
		Datasets: make([]PieDataset, len(ds.Series)),
	}
	for i, s := range data {
		cfg.Datasets[i] = PieDataset{
			Label:            s.Name,
			Data:             s.Values,
			BackgroundColors: th.Cycle(len(ds.Labels)),
			BorderColor:      theme.White,
			BorderWidth:      PieBorderWidth,
			HoverOffset:      PieHoverOffset,
		}
	}
	return cfg
}

// chart assembles the layout shared by every chart type.
func (b *Builder) chart(kind Kind, ds models.Dataset, th theme.Theme, dc models.DisplayConfig, texts [][]string) Chart {
	body := Font{Size: dc.AxisFontSize}
	c := Chart{
		Type:   kind,
		Theme:  th.ID,
		Labels: append([]string(nil), ds.Labels...),
		Title: Title{
			Display: dc.Title != "",
			Text:    dc.Title,
			Font:    Font{Size: dc.TitleFontSize},
		},
		Tooltip: Tooltip{Font: body, Texts: texts},
	}
	if dc.ShowLegend {
		c.Legend = &Legend{
			Position:  dc.LegendPosition,
			TextColor: th.LegendTextColor(),
			Font:      body,
		}
	}
	if dc.ShowDataLabels {
		c.DataLabels = &DataLabels{Font: body, Texts: texts}
	}
	return c
}

func (b *Builder) valueTexts(data []models.DataSeries) [][]string {
	texts := make([][]string, len(data))
	for i, s := range data {
		texts[i] = make([]string, len(s.Values))
		for j, v := range s.Values {
			texts[i][j] = formatValue(b.printer, v)
		}
	}
	return texts
}

func axes(dc models.DisplayConfig) Axes {
	font := Font{Size: dc.AxisFontSize}
	return Axes{
		X: Axis{
			Title:     dc.XAxisLabel,
			ShowTitle: dc.XAxisLabel != "",
			TitleFont: font,
			TickFont:  font,
			ShowGrid:  dc.ShowGridlines,
		},
		Y: Axis{
			Title:       dc.YAxisLabel,
			ShowTitle:   dc.YAxisLabel != "",
			TitleFont:   font,
			TickFont:    font,
			ShowGrid:    dc.ShowGridlines,
			BeginAtZero: true,
		},
	}
}

// dense returns a copy of the series, padded or cut to the label count with
// non-finite values replaced by 0.
func dense(ds models.Dataset) []models.DataSeries {
	out := make([]models.DataSeries, len(ds.Series))
	for i, s := range ds.Series {
		values := make([]float64, len(ds.Labels))
		for j := range values {
			if j < len(s.Values) {
				values[j] = finite(s.Values[j])
			}
		}
		out[i] = models.DataSeries{Name: s.Name, Values: values}
	}
	return out
}
