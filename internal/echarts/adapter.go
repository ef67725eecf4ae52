// Package echarts hands render configurations to go-echarts, which renders
// them as a standalone HTML page.
package echarts

import (
	"fmt"
	"io"

	"fjacquet/chart-csv/internal/chartconfig"
	"fjacquet/chart-csv/internal/logging"
	"fjacquet/chart-csv/internal/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Page size of the rendered chart.
const (
	Width  = "100%"
	Height = "500px"
)

// pieRadius is the outer radius of the pie as a percentage of the canvas.
const pieRadius = 70.0

// Renderer writes a chart page.
type Renderer interface {
	Render(w io.Writer) error
}

// Adapter translates render configurations into go-echarts charts.
type Adapter struct {
	logger logging.Logger
}

// NewAdapter creates an Adapter.
func NewAdapter(logger logging.Logger) *Adapter {
	return &Adapter{logger: logging.OrDefault(logger)}
}

// Chart returns the go-echarts chart for cfg. The empty state becomes a page
// showing only the placeholder text.
func (a *Adapter) Chart(cfg chartconfig.RenderConfig) (Renderer, error) {
	switch c := cfg.(type) {
	case *chartconfig.BarConfig:
		return a.bar(c)
	case *chartconfig.LineConfig:
		return a.line(c)
	case *chartconfig.PieConfig:
		return a.pie(c)
	case *chartconfig.NoData:
		return placeholder(c), nil
	default:
		return nil, fmt.Errorf("unsupported render configuration %T", cfg)
	}
}

func (a *Adapter) bar(c *chartconfig.BarConfig) (*charts.Bar, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(c.Chart, &c.Axes, "axis")...)
	bar.SetXAxis(c.Labels)

	for _, ds := range c.Datasets {
		data := make([]opts.BarData, len(ds.Data))
		for i, v := range ds.Data {
			data[i] = opts.BarData{Value: v}
		}
		bar.AddSeries(ds.Label, data,
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color:       ds.BackgroundColor,
				BorderWidth: float32(ds.BorderWidth),
			}))
	}

	if err := applyOverlay(bar, newOverlay(c.Chart, &c.Axes)); err != nil {
		return nil, err
	}
	a.logger.Debug("Rendering bar chart", logging.Field{Key: logging.FieldSeries, Value: len(c.Datasets)})
	return bar, nil
}

func (a *Adapter) line(c *chartconfig.LineConfig) (*charts.Line, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOpts(c.Chart, &c.Axes, "axis")...)
	line.SetXAxis(c.Labels)

	markers := make([]string, len(c.Datasets))
	for n, ds := range c.Datasets {
		markers[n] = ds.BorderColor
		data := make([]opts.LineData, len(ds.Data))
		for i, v := range ds.Data {
			data[i] = opts.LineData{Value: v}
		}
		seriesOpts := []charts.SeriesOpts{
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color:       ds.PointBackgroundColor,
				BorderColor: ds.PointBorderColor,
				BorderWidth: float32(ds.BorderWidth),
			}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: ds.BorderColor, Width: float32(ds.BorderWidth)}),
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:     opts.Bool(ds.Tension > 0),
				ShowSymbol: opts.Bool(true),
				Symbol:     "circle",
				SymbolSize: 2 * ds.PointRadius,
			}),
		}
		if ds.Fill {
			seriesOpts = append(seriesOpts, charts.WithAreaStyleOpts(opts.AreaStyle{
				Color:   ds.BorderColor,
				Opacity: float32(chartconfig.LineFillAlpha),
			}))
		}
		line.AddSeries(ds.Label, data, seriesOpts...)
	}

	o := newOverlay(c.Chart, &c.Axes)
	o.Markers = markers
	if err := applyOverlay(line, o); err != nil {
		return nil, err
	}
	a.logger.Debug("Rendering line chart", logging.Field{Key: logging.FieldSeries, Value: len(c.Datasets)})
	return line, nil
}

func (a *Adapter) pie(c *chartconfig.PieConfig) (*charts.Pie, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(globalOpts(c.Chart, nil, "item")...)

	for n, ds := range c.Datasets {
		data := make([]opts.PieData, len(ds.Data))
		for i, v := range ds.Data {
			data[i] = opts.PieData{
				Name:  c.Labels[i],
				Value: v,
				ItemStyle: &opts.ItemStyle{
					Color:       ds.BackgroundColors[i],
					BorderColor: ds.BorderColor,
					BorderWidth: float32(ds.BorderWidth),
				},
			}
		}
		pie.AddSeries(ds.Label, data,
			charts.WithPieChartOpts(opts.PieChart{Radius: ringRadius(n, len(c.Datasets))}))
	}

	if err := applyOverlay(pie, newOverlay(c.Chart, nil)); err != nil {
		return nil, err
	}
	a.logger.Debug("Rendering pie chart", logging.Field{Key: logging.FieldSeries, Value: len(c.Datasets)})
	return pie, nil
}

// ringRadius returns the inner and outer radius of the n-th of count
// concentric rings splitting a pie of radius pieRadius.
func ringRadius(n, count int) []string {
	width := pieRadius / float64(count)
	return []string{
		fmt.Sprintf("%.2f%%", float64(n)*width),
		fmt.Sprintf("%.2f%%", float64(n+1)*width),
	}
}

type jsFuncAdder interface {
	AddJSFuncs(fn ...string)
}

func applyOverlay(chart jsFuncAdder, o overlay) error {
	script, err := o.script()
	if err != nil {
		return fmt.Errorf("failed to encode chart texts: %w", err)
	}
	chart.AddJSFuncs(script)
	return nil
}

func placeholder(c *chartconfig.NoData) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: c.Message, Width: Width, Height: Height}),
		charts.WithTitleOpts(opts.Title{Title: c.Message, Subtitle: c.Hint, Left: "center", Top: "middle"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)
	return pie
}

func globalOpts(c chartconfig.Chart, axes *chartconfig.Axes, trigger string) []charts.GlobalOpts {
	pageTitle := c.Title.Text
	if pageTitle == "" {
		pageTitle = "chart-csv"
	}
	o := []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{PageTitle: pageTitle, Width: Width, Height: Height}),
		charts.WithTitleOpts(opts.Title{
			Title:      c.Title.Text,
			TitleStyle: &opts.TextStyle{FontSize: c.Title.Font.Size},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: trigger}),
		charts.WithLegendOpts(legendOpts(c.Legend)),
	}
	if axes != nil {
		o = append(o,
			charts.WithXAxisOpts(opts.XAxis{
				Name:      axes.X.Title,
				SplitLine: &opts.SplitLine{Show: opts.Bool(axes.X.ShowGrid)},
			}),
			charts.WithYAxisOpts(opts.YAxis{
				Name:      axes.Y.Title,
				SplitLine: &opts.SplitLine{Show: opts.Bool(axes.Y.ShowGrid)},
			}),
		)
	}
	return o
}

// legendOpts places the legend the way the configured side reads in a
// browser chart.
func legendOpts(l *chartconfig.Legend) opts.Legend {
	if l == nil {
		return opts.Legend{Show: opts.Bool(false)}
	}
	legend := opts.Legend{
		Show:      opts.Bool(true),
		TextStyle: &opts.TextStyle{FontSize: l.Font.Size, Color: l.TextColor},
	}
	switch l.Position {
	case models.LegendBottom:
		legend.Top = "bottom"
	case models.LegendLeft:
		legend.Left, legend.Top, legend.Orient = "left", "middle", "vertical"
	case models.LegendRight:
		legend.Left, legend.Top, legend.Orient = "right", "middle", "vertical"
	case models.LegendCenter:
		legend.Left, legend.Top = "center", "middle"
	case models.LegendChartArea:
		legend.Left, legend.Top, legend.Orient = "80%", "15%", "vertical"
	default:
		legend.Top = "top"
	}
	return legend
}
