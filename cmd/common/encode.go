package common

import (
	"encoding/json"
	"fmt"
	"io"

	"fjacquet/chart-csv/internal/chartconfig"
	"fjacquet/chart-csv/internal/echarts"

	"gopkg.in/yaml.v3"
)

// Output encodings
const (
	EncodingJSON = "json"
	EncodingYAML = "yaml"
	EncodingHTML = "html"
)

// Encoder writes a render configuration to w.
type Encoder func(w io.Writer, cfg chartconfig.RenderConfig) error

// NewEncoder returns the encoder for format. HTML pages are drawn by adapter.
func NewEncoder(format string, adapter *echarts.Adapter) (Encoder, error) {
	switch format {
	case EncodingJSON:
		return func(w io.Writer, cfg chartconfig.RenderConfig) error {
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("error encoding configuration: %w", err)
			}
			_, err = fmt.Fprintln(w, string(data))
			return err
		}, nil
	case EncodingYAML:
		return func(w io.Writer, cfg chartconfig.RenderConfig) error {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("error encoding configuration: %w", err)
			}
			return enc.Close()
		}, nil
	case EncodingHTML:
		return func(w io.Writer, cfg chartconfig.RenderConfig) error {
			chart, err := adapter.Chart(cfg)
			if err != nil {
				return err
			}
			return chart.Render(w)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s. Must be 'json', 'yaml' or 'html'", format)
	}
}

// Extension returns the file extension for an output encoding.
func Extension(format string) string {
	return "." + format
}
