// Package batch handles batch processing of files
package batch

import (
	"fmt"
	"io"
	"os"

	"fjacquet/chart-csv/cmd/common"
	"fjacquet/chart-csv/cmd/root"
	"fjacquet/chart-csv/internal/batch"
	"fjacquet/chart-csv/internal/container"
	"fjacquet/chart-csv/internal/logging"

	"github.com/spf13/cobra"
)

var (
	display      common.DisplayFlags
	outputFormat string
	extensions   []string
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process table files from a directory",
	Long: `Batch process table files from an input directory and write one chart per
file to another directory.

Every file with an accepted extension is read with the input format given by
--format, normalized and written as a render configuration (json, yaml) or an
HTML page (html). A file that fails is reported and the others still run.

Example:
  chart-csv batch -i tables/ -o charts/ --type bar --output-format html`,
	RunE: batchFunc,
}

func init() {
	common.AddDisplayFlags(Cmd, &display)
	Cmd.Flags().StringVar(&outputFormat, "output-format", common.EncodingJSON, "Output encoding: json, yaml or html")
	Cmd.Flags().StringSliceVar(&extensions, "ext", batch.DefaultExtensions, "Input file extensions to process")

	// Override the usage text for the input/output flags in batch context
	Cmd.SetUsageTemplate(`Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags (for batch, -i/-o refer to directories):
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`)
}

func batchFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Batch command called")
	return run(cmd, root.AppContainer, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Format)
}

func run(cmd *cobra.Command, c *container.Container, inputDir, outputDir, format string) error {
	if inputDir == "" || outputDir == "" {
		return fmt.Errorf("input and output directories must be specified")
	}
	encode, err := common.NewEncoder(outputFormat, c.GetAdapter())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	logger := c.GetLogger()
	processor := batch.NewProcessor(logger, extensions...)
	jobs, err := processor.Discover(inputDir, outputDir, common.Extension(outputFormat))
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		logger.Warn("No supported files found in input directory")
		return nil
	}

	summary := processor.Run(jobs, func(job batch.Job) error {
		in, err := os.Open(job.Input) // #nosec G304 -- CLI tool requires user-provided file paths
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer func() { _ = in.Close() }()

		cfg, _, err := common.BuildConfig(cmd, c, in, format, &display)
		if err != nil {
			return err
		}
		return common.WriteOutput(job.Output, cmd.OutOrStdout(), func(w io.Writer) error {
			return encode(w, cfg)
		})
	})

	logger.Info("Batch processing completed",
		logging.Field{Key: logging.FieldCount, Value: summary.Succeeded()},
		logging.Field{Key: "failed", Value: len(summary.Failed())})
	fmt.Fprintf(cmd.OutOrStdout(), "%d of %d files processed\n", summary.Succeeded(), len(jobs))
	for _, r := range summary.Failed() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %v\n", r.Job.Input, r.Err)
	}
	return nil
}
