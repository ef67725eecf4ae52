package chartconfig

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var hundred = decimal.NewFromInt(100)

// finite maps NaN and infinities to 0 so every value can be serialized.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// formatValue renders v with the printer's digit grouping and at most three
// fraction digits.
func formatValue(p *message.Printer, v float64) string {
	return p.Sprint(number.Decimal(finite(v), number.MaxFractionDigits(3)))
}

// percentage returns value/total*100 rounded half away from zero to one
// decimal place. A zero total yields "0.0".
func percentage(value float64, total decimal.Decimal) string {
	if total.IsZero() {
		return "0.0"
	}
	return decimal.NewFromFloat(finite(value)).Div(total).Mul(hundred).StringFixed(1)
}

// pieText renders a slice value with its share of the series total, e.g.
// "70 (70.0%)".
func pieText(p *message.Printer, value float64, total decimal.Decimal) string {
	return formatValue(p, value) + " (" + percentage(value, total) + "%)"
}
