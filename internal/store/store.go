// Package store loads and saves user defined chart themes.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/chart-csv/internal/logging"
	"fjacquet/chart-csv/internal/theme"

	"gopkg.in/yaml.v3"
)

// ThemesConfig is the top-level layout of a themes file.
type ThemesConfig struct {
	Themes []theme.Theme `yaml:"themes"`
}

// ThemeStore manages loading and saving of custom themes
type ThemeStore struct {
	ThemesFile string
	logger     logging.Logger
}

// NewThemeStore creates a new store backed by themesFile. An empty name
// means no custom themes are configured.
func NewThemeStore(themesFile string, logger logging.Logger) *ThemeStore {
	return &ThemeStore{
		ThemesFile: themesFile,
		logger:     logging.OrDefault(logger),
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *ThemeStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join(".chart-csv", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// If still not found, check in user's home directory
	homeDir, err := os.UserHomeDir()
	if err == nil {
		for _, dir := range []string{filepath.Join(homeDir, ".chart-csv"), filepath.Join(homeDir, ".config", "chart-csv")} {
			configPath := filepath.Join(dir, filename)
			if _, err := os.Stat(configPath); err == nil {
				return configPath, nil
			}
		}
	}

	return "", os.ErrNotExist
}

// LoadThemes reads the custom themes. A missing file is not an error: it
// yields no themes and a warning.
func (s *ThemeStore) LoadThemes() ([]theme.Theme, error) {
	if s.ThemesFile == "" {
		return nil, nil
	}

	filePath, err := s.FindConfigFile(s.ThemesFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("Themes file not found",
				logging.Field{Key: logging.FieldThemesFile, Value: s.ThemesFile})
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving themes file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading themes file: %w", err)
	}

	// The proper layout is "themes: [...]"
	var cfg ThemesConfig
	if err := yaml.Unmarshal(data, &cfg); err == nil && len(cfg.Themes) > 0 {
		s.logger.Debug("Loaded themes",
			logging.Field{Key: logging.FieldThemesFile, Value: filePath},
			logging.Field{Key: logging.FieldCount, Value: len(cfg.Themes)})
		return cfg.Themes, nil
	}

	// Fallback: a bare list without the top-level key
	var themes []theme.Theme
	if err := yaml.Unmarshal(data, &themes); err != nil {
		return nil, fmt.Errorf("error parsing themes file %s: %w", filePath, err)
	}
	s.logger.Debug("Loaded themes from bare list",
		logging.Field{Key: logging.FieldThemesFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(themes)})
	return themes, nil
}

// SaveThemes writes themes to the store's file, creating its directory.
func (s *ThemeStore) SaveThemes(themes []theme.Theme) error {
	if s.ThemesFile == "" {
		return fmt.Errorf("no themes file configured")
	}

	dir := filepath.Dir(s.ThemesFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory for themes file: %w", err)
	}

	data, err := yaml.Marshal(ThemesConfig{Themes: themes})
	if err != nil {
		return fmt.Errorf("error marshaling themes: %w", err)
	}

	if err := os.WriteFile(s.ThemesFile, data, 0644); err != nil {
		return fmt.Errorf("error writing themes file: %w", err)
	}

	s.logger.Info("Saved themes",
		logging.Field{Key: logging.FieldThemesFile, Value: s.ThemesFile},
		logging.Field{Key: logging.FieldCount, Value: len(themes)})
	return nil
}
