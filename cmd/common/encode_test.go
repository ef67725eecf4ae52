package common

import (
	"bytes"
	"encoding/json"
	"testing"

	"fjacquet/chart-csv/internal/chartconfig"
	"fjacquet/chart-csv/internal/echarts"
	"fjacquet/chart-csv/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewEncoder(t *testing.T) {
	adapter := echarts.NewAdapter(logging.NewMockLogger())
	cfg := chartconfig.NewNoData()

	tests := []struct {
		format string
		check  func(t *testing.T, out []byte)
	}{
		{
			format: EncodingJSON,
			check: func(t *testing.T, out []byte) {
				var got map[string]interface{}
				require.NoError(t, json.Unmarshal(out, &got))
				assert.Equal(t, "No data to display", got["message"])
			},
		},
		{
			format: EncodingYAML,
			check: func(t *testing.T, out []byte) {
				var got map[string]interface{}
				require.NoError(t, yaml.Unmarshal(out, &got))
				assert.Equal(t, "No data to display", got["message"])
			},
		},
		{
			format: EncodingHTML,
			check: func(t *testing.T, out []byte) {
				assert.Contains(t, string(out), "<html")
				assert.Contains(t, string(out), "No data to display")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			enc, err := NewEncoder(tt.format, adapter)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, enc(&buf, cfg))
			tt.check(t, buf.Bytes())
			assert.Equal(t, "."+tt.format, Extension(tt.format))
		})
	}

	_, err := NewEncoder("xml", adapter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
