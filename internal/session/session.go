// Package session holds the chart editor state: the input normalizer, the
// current dataset, the display toggles and the selected theme. Every
// mutation returns a freshly built render configuration.
//
// A Session is not safe for concurrent use.
package session

import (
	"fjacquet/chart-csv/internal/chartconfig"
	"fjacquet/chart-csv/internal/logging"
	"fjacquet/chart-csv/internal/models"
	"fjacquet/chart-csv/internal/normalizer"
	"fjacquet/chart-csv/internal/theme"
)

// Session is the single owner of the editor state.
type Session struct {
	normalizer *normalizer.Normalizer
	builder    *chartconfig.Builder
	registry   *theme.Registry
	logger     logging.Logger

	dataset models.Dataset
	display models.DisplayConfig
	themeID string
}

// New creates a session with an empty dataset. Font sizes in display are
// clamped to their allowed ranges.
func New(builder *chartconfig.Builder, registry *theme.Registry, display models.DisplayConfig, themeID string, logger logging.Logger) *Session {
	logger = logging.OrDefault(logger)
	display.TitleFontSize = models.ClampTitleFontSize(display.TitleFontSize)
	display.AxisFontSize = models.ClampAxisFontSize(display.AxisFontSize)
	return &Session{
		normalizer: normalizer.New(logger),
		builder:    builder,
		registry:   registry,
		logger:     logger,
		dataset:    models.EmptyDataset(),
		display:    display,
		themeID:    themeID,
	}
}

// Normalizer returns the input normalizer.
func (s *Session) Normalizer() *normalizer.Normalizer { return s.normalizer }

// Table returns the editable table.
func (s *Session) Table() *normalizer.Table { return s.normalizer.Table() }

// SetCSVText replaces the CSV input. It takes effect on the next Generate.
func (s *Session) SetCSVText(text string) { s.normalizer.SetCSVText(text) }

// Dataset returns the dataset the last Generate produced.
func (s *Session) Dataset() models.Dataset { return s.dataset }

// Display returns the current display configuration.
func (s *Session) Display() models.DisplayConfig { return s.display }

// Theme returns the selected theme, or the registry fallback when the
// selected identifier is unknown.
func (s *Session) Theme() theme.Theme { return s.registry.Resolve(s.themeID) }

// Generate rebuilds the dataset from the current input.
func (s *Session) Generate() chartconfig.RenderConfig {
	s.dataset = s.normalizer.Generate()
	return s.Render()
}

// Clear resets every input and empties the dataset.
func (s *Session) Clear() chartconfig.RenderConfig {
	s.dataset = s.normalizer.Clear()
	return s.Render()
}

// Render builds the configuration for the current state.
func (s *Session) Render() chartconfig.RenderConfig {
	return s.builder.Build(s.dataset, s.Theme(), s.display)
}

// SetChartType selects the chart encoding.
func (s *Session) SetChartType(ct models.ChartType) chartconfig.RenderConfig {
	s.display.ChartType = ct
	return s.Render()
}

// SetTheme selects a theme by identifier.
func (s *Session) SetTheme(id string) chartconfig.RenderConfig {
	if _, ok := s.registry.Get(id); !ok {
		s.logger.Debug("Unknown theme, using fallback",
			logging.Field{Key: logging.FieldTheme, Value: id})
	}
	s.themeID = id
	return s.Render()
}

// SetShowLegend toggles the legend.
func (s *Session) SetShowLegend(show bool) chartconfig.RenderConfig {
	s.display.ShowLegend = show
	return s.Render()
}

// SetLegendPosition moves the legend.
func (s *Session) SetLegendPosition(p models.LegendPosition) chartconfig.RenderConfig {
	s.display.LegendPosition = p
	return s.Render()
}

// SetShowGridlines toggles the axis grid.
func (s *Session) SetShowGridlines(show bool) chartconfig.RenderConfig {
	s.display.ShowGridlines = show
	return s.Render()
}

// SetShowDataLabels toggles the value labels.
func (s *Session) SetShowDataLabels(show bool) chartconfig.RenderConfig {
	s.display.ShowDataLabels = show
	return s.Render()
}

// SetTitle sets the chart title.
func (s *Session) SetTitle(title string) chartconfig.RenderConfig {
	s.display.Title = title
	return s.Render()
}

// SetXAxisLabel sets the category axis title.
func (s *Session) SetXAxisLabel(label string) chartconfig.RenderConfig {
	s.display.XAxisLabel = label
	return s.Render()
}

// SetYAxisLabel sets the value axis title.
func (s *Session) SetYAxisLabel(label string) chartconfig.RenderConfig {
	s.display.YAxisLabel = label
	return s.Render()
}

// SetTitleFontSize sets the title size, clamped to 16–48.
func (s *Session) SetTitleFontSize(size int) chartconfig.RenderConfig {
	s.display.TitleFontSize = models.ClampTitleFontSize(size)
	return s.Render()
}

// SetAxisFontSize sets the body text size, clamped to 10–24.
func (s *Session) SetAxisFontSize(size int) chartconfig.RenderConfig {
	s.display.AxisFontSize = models.ClampAxisFontSize(size)
	return s.Render()
}
