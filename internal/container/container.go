// Package container provides dependency injection for the chart-csv application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/chart-csv/internal/chartconfig"
	"fjacquet/chart-csv/internal/config"
	"fjacquet/chart-csv/internal/echarts"
	"fjacquet/chart-csv/internal/logging"
	"fjacquet/chart-csv/internal/parser"
	"fjacquet/chart-csv/internal/session"
	"fjacquet/chart-csv/internal/store"
	"fjacquet/chart-csv/internal/theme"
)

// ThemeLoader supplies custom themes to register next to the builtin ones.
type ThemeLoader interface {
	LoadThemes() ([]theme.Theme, error)
}

// Container holds all application dependencies and provides methods to access them.
// It is immutable after creation: fields are private and only reachable through
// getter methods.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	registry *theme.Registry
	builder  *chartconfig.Builder
	adapter  *echarts.Adapter

	parsers map[parser.ParserType]parser.FullParser
}

// NewContainer creates and wires all application dependencies, reading
// custom themes from the file named in cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	return NewContainerWithDeps(cfg, logger, store.NewThemeStore(cfg.Themes.File, logger))
}

// NewContainerWithDeps wires the container around an existing logger and
// theme loader.
func NewContainerWithDeps(cfg *config.Config, logger logging.Logger, themes ThemeLoader) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger = logging.OrDefault(logger)

	registry := theme.NewRegistry()
	if themes != nil {
		custom, err := themes.LoadThemes()
		if err != nil {
			return nil, fmt.Errorf("failed to load themes: %w", err)
		}
		for _, t := range custom {
			if err := registry.Register(t); err != nil {
				return nil, fmt.Errorf("failed to register custom theme: %w", err)
			}
		}
		if len(custom) > 0 {
			logger.Info("Registered custom themes",
				logging.Field{Key: logging.FieldCount, Value: len(custom)})
		}
	}

	parsers := make(map[parser.ParserType]parser.FullParser, len(parser.ParserTypes))
	for _, pt := range parser.ParserTypes {
		p, err := parser.GetParser(pt, logger, cfg.DelimiterRune())
		if err != nil {
			return nil, err
		}
		parsers[pt] = p
	}

	logger.Debug("Container initialized successfully",
		logging.Field{Key: "parsers_count", Value: len(parsers)},
		logging.Field{Key: "themes_count", Value: len(registry.List())})

	return &Container{
		logger:   logger,
		config:   cfg,
		registry: registry,
		builder:  chartconfig.NewBuilder(cfg.Language(), logger),
		adapter:  echarts.NewAdapter(logger),
		parsers:  parsers,
	}, nil
}

// GetParser returns a parser for the given type.
func (c *Container) GetParser(pt parser.ParserType) (parser.FullParser, error) {
	p, ok := c.parsers[pt]
	if !ok {
		return nil, fmt.Errorf("unknown parser type: %s", pt)
	}
	return p, nil
}

// NewSession creates an editor session initialized from the chart section
// of the configuration.
func (c *Container) NewSession() *session.Session {
	return session.New(c.builder, c.registry, c.config.DisplayConfig(), c.config.Chart.Theme, c.logger)
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetRegistry returns the theme registry.
func (c *Container) GetRegistry() *theme.Registry {
	return c.registry
}

// GetBuilder returns the chart configuration builder.
func (c *Container) GetBuilder() *chartconfig.Builder {
	return c.builder
}

// GetAdapter returns the go-echarts rendering adapter.
func (c *Container) GetAdapter() *echarts.Adapter {
	return c.adapter
}
