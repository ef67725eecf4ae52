// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/chart-csv/internal/chartconfig"
	"fjacquet/chart-csv/internal/container"
	"fjacquet/chart-csv/internal/logging"
	"fjacquet/chart-csv/internal/models"
	"fjacquet/chart-csv/internal/parser"
	"fjacquet/chart-csv/internal/session"

	"github.com/spf13/cobra"
)

// DisplayFlags holds the chart display options a command accepts.
type DisplayFlags struct {
	ChartType      string
	Theme          string
	Title          string
	XAxisLabel     string
	YAxisLabel     string
	LegendPosition string
	ShowLegend     bool
	ShowGridlines  bool
	ShowDataLabels bool
	TitleFontSize  int
	AxisFontSize   int
}

// AddDisplayFlags registers the display flags on cmd.
func AddDisplayFlags(cmd *cobra.Command, f *DisplayFlags) {
	flags := cmd.Flags()
	flags.StringVarP(&f.ChartType, "type", "t", "", "Chart type (bar, line, pie)")
	flags.StringVar(&f.Theme, "theme", "", "Color theme identifier")
	flags.StringVar(&f.Title, "title", "", "Chart title")
	flags.StringVar(&f.XAxisLabel, "x-label", "", "Category axis title")
	flags.StringVar(&f.YAxisLabel, "y-label", "", "Value axis title")
	flags.StringVar(&f.LegendPosition, "legend-position", "", "Legend position (top, bottom, left, right, center, chartArea)")
	flags.BoolVar(&f.ShowLegend, "legend", true, "Show the legend")
	flags.BoolVar(&f.ShowGridlines, "gridlines", true, "Show axis gridlines")
	flags.BoolVar(&f.ShowDataLabels, "data-labels", false, "Show value labels")
	flags.IntVar(&f.TitleFontSize, "title-size", 0, "Title font size (16-48)")
	flags.IntVar(&f.AxisFontSize, "axis-size", 0, "Axis and body font size (10-24)")
}

// ApplyDisplayFlags pushes every flag the user set explicitly into the
// session. Flags left at their default keep the configured value.
func ApplyDisplayFlags(cmd *cobra.Command, f *DisplayFlags, s *session.Session) error {
	changed := cmd.Flags().Changed

	if changed("type") {
		ct, err := models.ParseChartType(f.ChartType)
		if err != nil {
			return err
		}
		s.SetChartType(ct)
	}
	if changed("legend-position") {
		p, err := models.ParseLegendPosition(f.LegendPosition)
		if err != nil {
			return err
		}
		s.SetLegendPosition(p)
	}
	if changed("theme") {
		s.SetTheme(f.Theme)
	}
	if changed("title") {
		s.SetTitle(f.Title)
	}
	if changed("x-label") {
		s.SetXAxisLabel(f.XAxisLabel)
	}
	if changed("y-label") {
		s.SetYAxisLabel(f.YAxisLabel)
	}
	if changed("legend") {
		s.SetShowLegend(f.ShowLegend)
	}
	if changed("gridlines") {
		s.SetShowGridlines(f.ShowGridlines)
	}
	if changed("data-labels") {
		s.SetShowDataLabels(f.ShowDataLabels)
	}
	if changed("title-size") {
		s.SetTitleFontSize(f.TitleFontSize)
	}
	if changed("axis-size") {
		s.SetAxisFontSize(f.AxisFontSize)
	}
	return nil
}

// OpenInput opens the named file, or returns stdin wrapped in a no-op
// closer when path is empty or "-".
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening input file: %w", err)
	}
	return f, nil
}

// LoadSession creates a session from the container and feeds r through the
// parser registered for format. The dataset is not generated yet.
func LoadSession(c *container.Container, r io.Reader, format string) (*session.Session, error) {
	pt, err := parser.ParseParserType(format)
	if err != nil {
		return nil, err
	}
	p, err := c.GetParser(pt)
	if err != nil {
		return nil, err
	}

	s := c.NewSession()
	if err := p.Parse(r, s.Normalizer()); err != nil {
		return nil, err
	}
	c.GetLogger().Debug("Input loaded",
		logging.Field{Key: logging.FieldFormat, Value: string(pt)},
		logging.Field{Key: logging.FieldMode, Value: string(s.Normalizer().Mode())})
	return s, nil
}

// WriteOutput calls write with the named file, creating parent
// directories as needed, or with stdout when path is empty or "-".
func WriteOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(stdout)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// BuildConfig loads r into a new session, applies the display flags and
// generates the render configuration.
func BuildConfig(cmd *cobra.Command, c *container.Container, r io.Reader, format string, f *DisplayFlags) (chartconfig.RenderConfig, *session.Session, error) {
	s, err := LoadSession(c, r, format)
	if err != nil {
		return nil, nil, err
	}
	if err := ApplyDisplayFlags(cmd, f, s); err != nil {
		return nil, nil, err
	}
	return s.Generate(), s, nil
}
