package batch

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/chart-csv/internal/config"
	"fjacquet/chart-csv/internal/container"
	"fjacquet/chart-csv/internal/logging"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, flags map[string]string) (*container.Container, *bytes.Buffer) {
	t.Helper()
	reset := func() {
		Cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace([]string{".csv", ".txt"})
			} else {
				_ = f.Value.Set(f.DefValue)
			}
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
	return c, out
}

func TestBatchCommand_CommandMetadata(t *testing.T) {
	assert.Equal(t, "batch", Cmd.Use)
	assert.Contains(t, Cmd.Short, "Batch process")
	assert.NotNil(t, Cmd.RunE)
	assert.Contains(t, Cmd.Long, "input directory")
	assert.Contains(t, Cmd.Long, "Example")
}

func TestBatch(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "charts")
	require.NoError(t, os.WriteFile(filepath.Join(in, "sales.csv"), []byte("Month, Sales\nJan, 10\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(in, "empty.csv"), []byte("   \n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(in, "readme.md"), []byte("# ignored"), 0600))

	c, stdout := setup(t, map[string]string{"type": "bar"})
	require.NoError(t, run(Cmd, c, in, out, "csv"))

	data, err := os.ReadFile(filepath.Join(out, "sales.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind": "bar"`)

	_, err = os.Stat(filepath.Join(out, "empty.json"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(out, "readme.json"))
	assert.True(t, os.IsNotExist(err))

	assert.Contains(t, stdout.String(), "1 of 2 files processed")
	assert.Contains(t, stdout.String(), "empty.csv")
}

func TestBatch_HTML(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(in, "share.csv"), []byte("series,label,value\nShare,A,70\n"), 0600))

	c, _ := setup(t, map[string]string{"output-format": "html"})
	require.NoError(t, run(Cmd, c, in, out, "rows"))

	data, err := os.ReadFile(filepath.Join(out, "share.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<html")
}

func TestBatch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		output  string
		flags   map[string]string
		wantErr string
	}{
		{name: "missing directories", wantErr: "must be specified"},
		{name: "bad encoding", input: "in", output: "out", flags: map[string]string{"output-format": "pdf"}, wantErr: "unsupported output format"},
		{name: "missing input dir", input: "does-not-exist", output: "out", wantErr: "failed to read input directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := setup(t, tt.flags)
			base := t.TempDir()
			input, output := tt.input, tt.output
			if input != "" {
				input = filepath.Join(base, input)
				output = filepath.Join(base, output)
			}
			err := run(Cmd, c, input, output, "csv")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBatch_NoFiles(t *testing.T) {
	c, stdout := setup(t, nil)
	require.NoError(t, run(Cmd, c, t.TempDir(), t.TempDir(), "csv"))
	assert.Empty(t, stdout.String())
}
