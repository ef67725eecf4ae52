package root_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/chart-csv/cmd/root"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	root.Init()
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "chart-csv", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "chart render configurations")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
}

func TestRootCommand_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{name: "input", shorthand: "i"},
		{name: "output", shorthand: "o"},
		{name: "format", shorthand: "f", defValue: "csv"},
		{name: "log-level"},
		{name: "delimiter"},
		{name: "themes-file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := root.Cmd.PersistentFlags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, tt.defValue, flag.DefValue)
		})
	}
}

func TestRootCommand_Run(t *testing.T) {
	assert.NotPanics(t, func() {
		root.Cmd.Run(&cobra.Command{}, []string{})
	})
}

func TestSetup(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	original, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(original) })

	themes := filepath.Join(dir, "themes.yaml")
	require.NoError(t, os.WriteFile(themes, []byte(`themes:
  - id: mono
    colors: ["#000000", "#333333", "#666666", "#999999", "#CCCCCC"]
`), 0600))

	root.SharedFlags.Delimiter = ";"
	root.SharedFlags.ThemesFile = themes
	t.Cleanup(func() { root.SharedFlags = root.CommonFlags{Format: "csv"} })

	require.NoError(t, root.Setup())
	assert.Equal(t, ";", root.AppConfig.CSV.Delimiter)
	_, ok := root.AppContainer.GetRegistry().Get("mono")
	assert.True(t, ok)
}

func TestSetup_RejectsInvalidFlagOverrides(t *testing.T) {
	tests := []struct {
		name    string
		flags   root.CommonFlags
		wantErr string
	}{
		{name: "multi-character delimiter", flags: root.CommonFlags{Format: "csv", Delimiter: "ab"}, wantErr: "CSV delimiter must be a single character"},
		{name: "unknown log level", flags: root.CommonFlags{Format: "csv", LogLevel: "loud"}, wantErr: "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("HOME", dir)
			original, err := os.Getwd()
			require.NoError(t, err)
			require.NoError(t, os.Chdir(dir))
			t.Cleanup(func() { _ = os.Chdir(original) })

			root.SharedFlags = tt.flags
			t.Cleanup(func() { root.SharedFlags = root.CommonFlags{Format: "csv"} })

			err = root.Setup()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
