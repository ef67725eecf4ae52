package echarts

import (
	"encoding/json"
	"strings"

	"fjacquet/chart-csv/internal/chartconfig"

	"github.com/go-echarts/go-echarts/v2/render"
)

// overlay carries the preformatted texts and the font sizes into the page.
// go-echarts only knows template formatters, so the texts are applied by a
// script once the chart instance exists.
type overlay struct {
	Texts       [][]string `json:"texts"`
	ShowLabels  bool       `json:"showLabels"`
	LabelSize   int        `json:"labelSize"`
	TooltipSize int        `json:"tooltipSize"`
	Markers     []string   `json:"markers,omitempty"`
	Axes        *axisFonts `json:"axes,omitempty"`
}

type axisFonts struct {
	XTitle int `json:"xTitle"`
	XTick  int `json:"xTick"`
	YTitle int `json:"yTitle"`
	YTick  int `json:"yTick"`
}

// overlayScript takes the chart instance and the overlay data. Tooltip rows
// and data labels read texts[seriesIndex][dataIndex].
const overlayScript = `(function (chart, o) {
	var esc = echarts.format.encodeHTML;
	var text = function (p) {
		var s = o.texts[p.seriesIndex] || [];
		return s[p.dataIndex] === undefined ? '' : s[p.dataIndex];
	};
	var marker = function (p) {
		if (!o.markers) {
			return p.marker;
		}
		return '<span style="display:inline-block;margin-right:4px;border-radius:10px;width:10px;height:10px;background-color:' + o.markers[p.seriesIndex] + ';"></span>';
	};
	var option = {
		tooltip: {
			textStyle: { fontSize: o.tooltipSize },
			formatter: function (params) {
				var items = [].concat(params);
				if (!items.length) {
					return '';
				}
				var pie = items[0].componentSubType === 'pie';
				var head = pie ? items[0].seriesName : (items[0].axisValueLabel || items[0].name);
				var rows = items.map(function (p) {
					return marker(p) + esc(pie ? p.name : p.seriesName) + ': ' + esc(text(p));
				});
				return [esc(head)].concat(rows).join('<br/>');
			}
		},
		series: o.texts.map(function () {
			return o.showLabels ? { label: { show: true, fontSize: o.labelSize, formatter: text } } : {};
		})
	};
	if (o.axes) {
		option.xAxis = { nameTextStyle: { fontSize: o.axes.xTitle }, axisLabel: { fontSize: o.axes.xTick } };
		option.yAxis = { nameTextStyle: { fontSize: o.axes.yTitle }, axisLabel: { fontSize: o.axes.yTick } };
	}
	chart.setOption(option);
})(` + render.EchartsInstancePlaceholder + `, `

func newOverlay(c chartconfig.Chart, axes *chartconfig.Axes) overlay {
	o := overlay{
		Texts:       c.Tooltip.Texts,
		TooltipSize: c.Tooltip.Font.Size,
	}
	if o.Texts == nil {
		o.Texts = [][]string{}
	}
	if c.DataLabels != nil {
		o.ShowLabels = true
		o.LabelSize = c.DataLabels.Font.Size
		o.Texts = c.DataLabels.Texts
	}
	if axes != nil {
		o.Axes = &axisFonts{
			XTitle: axes.X.TitleFont.Size,
			XTick:  axes.X.TickFont.Size,
			YTitle: axes.Y.TitleFont.Size,
			YTick:  axes.Y.TickFont.Size,
		}
	}
	return o
}

// script returns the JavaScript statement applying the overlay.
func (o overlay) script() (string, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(overlayScript)
	b.Write(data)
	b.WriteString(");")
	return b.String(), nil
}
