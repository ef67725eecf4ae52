// Package build handles the command that emits chart render configurations
package build

import (
	"io"

	"fjacquet/chart-csv/cmd/common"
	"fjacquet/chart-csv/cmd/root"
	"fjacquet/chart-csv/internal/container"
	"fjacquet/chart-csv/internal/logging"

	"github.com/spf13/cobra"
)

var (
	display      common.DisplayFlags
	outputFormat string
)

// Cmd represents the build command
var Cmd = &cobra.Command{
	Use:   "build",
	Short: "Build a chart render configuration from tabular data",
	Long: `Read a table (CSV text or long-format rows), normalize it into an aligned
dataset and write the render configuration for the selected chart type and
theme as JSON or YAML.`,
	RunE: buildFunc,
}

func init() {
	common.AddDisplayFlags(Cmd, &display)
	Cmd.Flags().StringVar(&outputFormat, "output-format", common.EncodingJSON, "Output encoding: json, yaml or html")
}

func buildFunc(cmd *cobra.Command, args []string) error {
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	return run(cmd, root.AppContainer, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Format)
}

func run(cmd *cobra.Command, c *container.Container, input, output, format string) error {
	encode, err := common.NewEncoder(outputFormat, c.GetAdapter())
	if err != nil {
		return err
	}

	in, err := common.OpenInput(input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	cfg, s, err := common.BuildConfig(cmd, c, in, format, &display)
	if err != nil {
		return err
	}
	c.GetLogger().Info("Chart configuration built",
		logging.Field{Key: logging.FieldChartType, Value: string(cfg.Kind())},
		logging.Field{Key: logging.FieldLabels, Value: len(s.Dataset().Labels)},
		logging.Field{Key: logging.FieldSeries, Value: s.Dataset().SeriesNames()})

	return common.WriteOutput(output, cmd.OutOrStdout(), func(w io.Writer) error {
		return encode(w, cfg)
	})
}
