package preview

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/chart-csv/internal/config"
	"fjacquet/chart-csv/internal/container"
	"fjacquet/chart-csv/internal/logging"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, input string, flags map[string]string) (*container.Container, *bytes.Buffer) {
	t.Helper()
	reset := func() {
		Cmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	reset()
	t.Cleanup(reset)

	for name, value := range flags {
		require.NoError(t, Cmd.Flags().Set(name, value))
	}

	c, err := container.NewContainerWithDeps(config.DefaultConfig(), logging.NewMockLogger(), nil)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	Cmd.SetOut(out)
	Cmd.SetIn(strings.NewReader(input))
	return c, out
}

func TestPreviewCommand_Metadata(t *testing.T) {
	assert.Equal(t, "preview", Cmd.Use)
	assert.NotNil(t, Cmd.RunE)
	assert.NotNil(t, Cmd.Flags().Lookup("type"))
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name  string
		input string
		flags map[string]string
		want  []string
	}{
		{
			name:  "bar chart",
			input: "Month, Sales\nJan, 10\nFeb, 12\n",
			flags: map[string]string{"type": "bar", "title": "Quarterly"},
			want:  []string{"<html", "echarts", "Quarterly", "Sales"},
		},
		{
			name:  "pie chart",
			input: "series,label,value\nShare,A,70\nShare,B,30\n",
			flags: map[string]string{"type": "pie"},
			want:  []string{"<html", "Share"},
		},
		{
			name:  "placeholder",
			input: "Month, Sales\n",
			want:  []string{"<html", "No data to display"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := setup(t, tt.input, tt.flags)
			format := "csv"
			if strings.HasPrefix(tt.input, "series,") {
				format = "rows"
			}
			require.NoError(t, run(Cmd, c, "", "", format))
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestPreview_ToFile(t *testing.T) {
	c, out := setup(t, "Month, Sales\nJan, 10\n", nil)
	path := filepath.Join(t.TempDir(), "chart.html")

	require.NoError(t, run(Cmd, c, "", path, "csv"))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<html")
}

func TestPreview_InvalidFlag(t *testing.T) {
	c, _ := setup(t, "Month, Sales\nJan, 10\n", map[string]string{"legend-position": "sideways"})
	err := run(Cmd, c, "", "", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown legend position")
}
