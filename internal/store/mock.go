package store

import "fjacquet/chart-csv/internal/theme"

// MockThemeStore is a mock implementation of ThemeStore for testing.
type MockThemeStore struct {
	Themes []theme.Theme

	// Error flags for testing error conditions
	LoadThemesError error
	SaveThemesError error
}

// LoadThemes returns the mock themes.
func (m *MockThemeStore) LoadThemes() ([]theme.Theme, error) {
	if m.LoadThemesError != nil {
		return nil, m.LoadThemesError
	}
	return append([]theme.Theme(nil), m.Themes...), nil
}

// SaveThemes records themes.
func (m *MockThemeStore) SaveThemes(themes []theme.Theme) error {
	if m.SaveThemesError != nil {
		return m.SaveThemesError
	}
	m.Themes = append([]theme.Theme(nil), themes...)
	return nil
}
