package themes

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/chart-csv/internal/config"
	"fjacquet/chart-csv/internal/container"
	"fjacquet/chart-csv/internal/logging"
	"fjacquet/chart-csv/internal/store"
	"fjacquet/chart-csv/internal/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContainer(t *testing.T) *container.Container {
	t.Helper()
	c, err := container.NewContainerWithDeps(config.DefaultConfig(), logging.NewMockLogger(), nil)
	require.NoError(t, err)
	return c
}

func TestThemesCommand_Metadata(t *testing.T) {
	assert.Equal(t, "themes", Cmd.Use)
	assert.NotNil(t, Cmd.RunE)
	assert.NotNil(t, Cmd.Flags().Lookup("export"))
}

func TestRenderThemes(t *testing.T) {
	list := []theme.Theme{
		{ID: "mono", Name: "Mono", Colors: []string{"#000000", "#333333", "#666666", "#999999", "#CCCCCC"}},
		{ID: "paper", Name: "Paper", Colors: []string{"#FFFFFF", "#EEEEEE", "#DDDDDD", "#CCCCCC", "#BBBBBB"}, LightSurface: true},
	}

	out := renderThemes(list, "paper")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.True(t, strings.HasPrefix(lines[0], "  "))
	assert.Contains(t, lines[0], "mono")
	assert.Contains(t, lines[0], "Mono")
	assert.Equal(t, 5, strings.Count(lines[0], "██"))
	assert.NotContains(t, lines[0], "(light)")

	assert.True(t, strings.HasPrefix(lines[1], "* "))
	assert.Contains(t, lines[1], "(light)")
}

func TestRun_List(t *testing.T) {
	exportPath = ""
	c := newContainer(t)
	out := &bytes.Buffer{}
	Cmd.SetOut(out)

	require.NoError(t, run(Cmd, c))
	for _, th := range theme.Builtin() {
		assert.Contains(t, out.String(), th.ID)
	}
}

func TestRun_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exported", "themes.yaml")
	exportPath = path
	t.Cleanup(func() { exportPath = "" })

	c := newContainer(t)
	out := &bytes.Buffer{}
	Cmd.SetOut(out)

	require.NoError(t, run(Cmd, c))
	assert.Empty(t, out.String())

	loaded, err := store.NewThemeStore(path, logging.NewMockLogger()).LoadThemes()
	require.NoError(t, err)
	assert.Equal(t, theme.Builtin(), loaded)
}
