// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/chart-csv/internal/config"
	"fjacquet/chart-csv/internal/container"
	"fjacquet/chart-csv/internal/logging"
	"fjacquet/chart-csv/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input      string
	Output     string
	Format     string
	LogLevel   string
	Delimiter  string
	ThemesFile string
}

var (
	// Log is the shared logger instance for commands. It writes to stderr so
	// stdout only carries command output.
	Log = logrus.New()

	// AppConfig is the configuration loaded before any subcommand runs
	AppConfig *config.Config

	// AppContainer holds the wired dependencies for subcommands
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "chart-csv",
		Short: "A CLI tool to turn tabular data into chart render configurations.",
		Long: `chart-csv reads hand-entered tables, pasted CSV text or long-format rows files,
normalizes them into aligned datasets and derives a complete bar, line or pie
chart configuration under a selected color theme.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to chart-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup()
		},
		SilenceUsage: true,
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (default: stdin)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "csv", "Input format: csv (header row of series names) or rows (series,label,value)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Delimiter, "delimiter", "", "Field delimiter of rows files")
	Cmd.PersistentFlags().StringVar(&SharedFlags.ThemesFile, "themes-file", "", "YAML file with custom themes")
}

// Setup loads the configuration, applies flag overrides and wires the
// container.
func Setup() error {
	config.LoadEnv()

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if SharedFlags.Delimiter != "" {
		cfg.CSV.Delimiter = SharedFlags.Delimiter
	}
	if SharedFlags.ThemesFile != "" {
		cfg.Themes.File = SharedFlags.ThemesFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	Log = config.ConfigureLoggingFromConfig(cfg)
	logger := logging.NewLogrusAdapterFromLogger(Log)

	c, err := container.NewContainerWithDeps(cfg, logger, store.NewThemeStore(cfg.Themes.File, logger))
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	return nil
}
