// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"fjacquet/chart-csv/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "CHART"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Chart struct {
		Type           string `mapstructure:"type" yaml:"type"`
		Theme          string `mapstructure:"theme" yaml:"theme"`
		LegendPosition string `mapstructure:"legend_position" yaml:"legend_position"`
		ShowLegend     bool   `mapstructure:"show_legend" yaml:"show_legend"`
		ShowGridlines  bool   `mapstructure:"show_gridlines" yaml:"show_gridlines"`
		ShowDataLabels bool   `mapstructure:"show_data_labels" yaml:"show_data_labels"`
		TitleFontSize  int    `mapstructure:"title_font_size" yaml:"title_font_size"`
		AxisFontSize   int    `mapstructure:"axis_font_size" yaml:"axis_font_size"`
		Locale         string `mapstructure:"locale" yaml:"locale"`
	} `mapstructure:"chart" yaml:"chart"`

	Themes struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"themes" yaml:"themes"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.chart-csv")
	v.AddConfigPath(".chart-csv")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Stdout carries command output, so warnings go to stderr
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns the configuration made of defaults only.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	// Defaults always decode
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")

	// Chart defaults mirror the editor's initial state
	dc := models.DefaultDisplayConfig()
	v.SetDefault("chart.type", string(dc.ChartType))
	v.SetDefault("chart.theme", "sunset")
	v.SetDefault("chart.legend_position", string(dc.LegendPosition))
	v.SetDefault("chart.show_legend", dc.ShowLegend)
	v.SetDefault("chart.show_gridlines", dc.ShowGridlines)
	v.SetDefault("chart.show_data_labels", dc.ShowDataLabels)
	v.SetDefault("chart.title_font_size", dc.TitleFontSize)
	v.SetDefault("chart.axis_font_size", dc.AxisFontSize)
	v.SetDefault("chart.locale", "en-US")

	// Themes defaults
	v.SetDefault("themes.file", "")
}

// Validate checks the configuration values, typically after command-line
// overrides have been applied.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if _, err := models.ParseChartType(config.Chart.Type); err != nil {
		return fmt.Errorf("chart.type: %w", err)
	}

	if _, err := models.ParseLegendPosition(config.Chart.LegendPosition); err != nil {
		return fmt.Errorf("chart.legend_position: %w", err)
	}

	if s := config.Chart.TitleFontSize; s < models.MinTitleFontSize || s > models.MaxTitleFontSize {
		return fmt.Errorf("chart.title_font_size must be between %d and %d, got: %d",
			models.MinTitleFontSize, models.MaxTitleFontSize, s)
	}

	if s := config.Chart.AxisFontSize; s < models.MinAxisFontSize || s > models.MaxAxisFontSize {
		return fmt.Errorf("chart.axis_font_size must be between %d and %d, got: %d",
			models.MinAxisFontSize, models.MaxAxisFontSize, s)
	}

	if _, err := language.Parse(config.Chart.Locale); err != nil {
		return fmt.Errorf("invalid chart.locale %q: %w", config.Chart.Locale, err)
	}

	return nil
}

// DisplayConfig returns the initial display configuration described by the
// chart section. Identifiers that do not parse keep their default.
func (c *Config) DisplayConfig() models.DisplayConfig {
	dc := models.DefaultDisplayConfig()
	if ct, err := models.ParseChartType(c.Chart.Type); err == nil {
		dc.ChartType = ct
	}
	if lp, err := models.ParseLegendPosition(c.Chart.LegendPosition); err == nil {
		dc.LegendPosition = lp
	}
	dc.ShowLegend = c.Chart.ShowLegend
	dc.ShowGridlines = c.Chart.ShowGridlines
	dc.ShowDataLabels = c.Chart.ShowDataLabels
	dc.TitleFontSize = models.ClampTitleFontSize(c.Chart.TitleFontSize)
	dc.AxisFontSize = models.ClampAxisFontSize(c.Chart.AxisFontSize)
	return dc
}

// Language returns the locale used to format values, falling back to
// American English.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Chart.Locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// DelimiterRune returns the rows-file delimiter, ',' when unset.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
