package theme

import (
	"fmt"
	"strings"

	"fjacquet/chart-csv/internal/parsererror"
)

// Registry resolves theme identifiers. It is filled once at start-up and is
// read-only afterwards.
type Registry struct {
	themes   map[string]Theme
	order    []string
	fallback string
}

// NewRegistry returns a registry holding the builtin themes with "ocean" as
// the fallback for unknown identifiers.
func NewRegistry() *Registry {
	r := &Registry{
		themes:   make(map[string]Theme),
		fallback: DefaultTheme,
	}
	for _, t := range Builtin() {
		r.put(t)
	}
	return r
}

func (r *Registry) put(t Theme) {
	key := normalizeID(t.ID)
	if _, exists := r.themes[key]; !exists {
		r.order = append(r.order, key)
	}
	r.themes[key] = t
}

// Register adds or replaces a theme after validating it.
func (r *Registry) Register(t Theme) error {
	if err := t.Validate(); err != nil {
		return &parsererror.ValidationError{
			Subject: fmt.Sprintf("theme '%s'", t.ID),
			Reason:  err.Error(),
		}
	}
	if t.Name == "" {
		t.Name = t.ID
	}
	t.Colors = append([]string(nil), t.Colors...)
	r.put(t)
	return nil
}

// Get looks up a theme by identifier (case-insensitive).
func (r *Registry) Get(id string) (Theme, bool) {
	t, ok := r.themes[normalizeID(id)]
	return t, ok
}

// Resolve returns the theme for id, or the fallback theme when id is unknown.
func (r *Registry) Resolve(id string) Theme {
	if t, ok := r.Get(id); ok {
		return t
	}
	return r.themes[r.fallback]
}

// List returns every registered theme in registration order.
func (r *Registry) List() []Theme {
	out := make([]Theme, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.themes[id])
	}
	return out
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
