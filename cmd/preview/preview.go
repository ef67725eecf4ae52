// Package preview handles the command that renders a chart to HTML
package preview

import (
	"io"

	"fjacquet/chart-csv/cmd/common"
	"fjacquet/chart-csv/cmd/root"
	"fjacquet/chart-csv/internal/container"
	"fjacquet/chart-csv/internal/logging"

	"github.com/spf13/cobra"
)

var display common.DisplayFlags

// Cmd represents the preview command
var Cmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a chart as a standalone HTML page",
	Long: `Build the render configuration exactly like the build command does and
draw it with ECharts into a self-contained HTML page. An empty dataset renders
the "No data to display" placeholder.`,
	RunE: previewFunc,
}

func init() {
	common.AddDisplayFlags(Cmd, &display)
}

func previewFunc(cmd *cobra.Command, args []string) error {
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	return run(cmd, root.AppContainer, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Format)
}

func run(cmd *cobra.Command, c *container.Container, input, output, format string) error {
	encode, err := common.NewEncoder(common.EncodingHTML, c.GetAdapter())
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

	if err := common.WriteOutput(output, cmd.OutOrStdout(), func(w io.Writer) error {
		return encode(w, cfg)
	}); err != nil {
		return err
	}
	c.GetLogger().Info("Chart rendered",
		logging.Field{Key: logging.FieldChartType, Value: string(cfg.Kind())},
		logging.Field{Key: logging.FieldTheme, Value: s.Theme().ID})
	return nil
}
