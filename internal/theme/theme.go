// Package theme holds the color palettes charts are drawn with and the
// registry that resolves a theme identifier to its palette.
package theme

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// MinPaletteSize is the smallest palette a theme may carry.
const MinPaletteSize = 5

// Contrast colors used by the encodings.
const (
	White        = "#FFFFFF"
	DarkLegend   = "#334155"
	DefaultTheme = "ocean"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Theme is a named, ordered palette plus a surface hint used for legend text.
type Theme struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Colors       []string `json:"colors" yaml:"colors"`
	LightSurface bool     `json:"light_surface" yaml:"light_surface"`
}

// Color returns the palette entry for index, cycling through the palette.
func (t Theme) Color(index int) string {
	if len(t.Colors) == 0 {
		return ""
	}
	i := index % len(t.Colors)
	if i < 0 {
		i += len(t.Colors)
	}
	return t.Colors[i]
}

// Cycle returns n palette entries assigned by cyclic index.
func (t Theme) Cycle(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = t.Color(i)
	}
	return out
}

// LegendTextColor returns the legend label color for the theme, or "" to
// leave the renderer default in place.
func (t Theme) LegendTextColor() string {
	if t.LightSurface {
		return DarkLegend
	}
	return ""
}

// Validate checks the identifier and palette of a theme.
func (t Theme) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("theme id is required")
	}
	if len(t.Colors) < MinPaletteSize {
		return fmt.Errorf("needs at least %d colors, got %d", MinPaletteSize, len(t.Colors))
	}
	for _, c := range t.Colors {
		if !IsHexColor(c) {
			return fmt.Errorf("invalid color %q", c)
		}
	}
	return nil
}

// IsHexColor reports whether c is a #RGB or #RRGGBB color.
func IsHexColor(c string) bool {
	return hexColor.MatchString(c)
}

// WithAlpha derives a translucent variant of a hex color as #RRGGBBAA.
// Colors that are not #RGB/#RRGGBB are returned unchanged.
func WithAlpha(color string, alpha float64) string {
	if !IsHexColor(color) {
		return color
	}
	hex := strings.ToUpper(color[1:])
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	alpha = math.Max(0, math.Min(1, alpha))
	return fmt.Sprintf("#%s%02X", hex, int(math.Round(alpha*255)))
}
