package container

import (
	"errors"
	"testing"

	"fjacquet/chart-csv/internal/chartconfig"
	"fjacquet/chart-csv/internal/config"
	"fjacquet/chart-csv/internal/logging"
	"fjacquet/chart-csv/internal/parser"
	"fjacquet/chart-csv/internal/parsererror"
	"fjacquet/chart-csv/internal/store"
	"fjacquet/chart-csv/internal/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monoTheme = theme.Theme{
	ID:     "mono",
	Colors: []string{"#000000", "#333333", "#666666", "#999999", "#CCCCCC"},
}

func TestNewContainer(t *testing.T) {
	_, err := NewContainer(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration cannot be nil")

	cfg := config.DefaultConfig()
	c, err := NewContainer(cfg)
	require.NoError(t, err)
	assert.Same(t, cfg, c.GetConfig())
	assert.NotNil(t, c.GetLogger())
	assert.NotNil(t, c.GetBuilder())
	assert.NotNil(t, c.GetAdapter())
	assert.Len(t, c.GetRegistry().List(), len(theme.Builtin()))
}

func TestNewContainerWithDeps_CustomThemes(t *testing.T) {
	tests := []struct {
		name        string
		loader      *store.MockThemeStore
		expectError bool
		validation  bool
	}{
		{name: "custom theme registered", loader: &store.MockThemeStore{Themes: []theme.Theme{monoTheme}}},
		{name: "load failure", loader: &store.MockThemeStore{LoadThemesError: errors.New("disk on fire")}, expectError: true},
		{
			name:        "short palette rejected",
			loader:      &store.MockThemeStore{Themes: []theme.Theme{{ID: "tiny", Colors: []string{"#000", "#111"}}}},
			expectError: true,
			validation:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainerWithDeps(config.DefaultConfig(), logging.NewMockLogger(), tt.loader)
			if tt.expectError {
				require.Error(t, err)
				var validationErr *parsererror.ValidationError
				assert.Equal(t, tt.validation, errors.As(err, &validationErr))
				return
			}
			require.NoError(t, err)
			got, ok := c.GetRegistry().Get("mono")
			require.True(t, ok)
			assert.Equal(t, "mono", got.Name)
		})
	}
}

func TestContainer_GetParser(t *testing.T) {
	c, err := NewContainerWithDeps(config.DefaultConfig(), logging.NewMockLogger(), nil)
	require.NoError(t, err)

	p, err := c.GetParser(parser.Rows)
	require.NoError(t, err)
	assert.IsType(t, &parser.RowsParser{}, p)

	p, err = c.GetParser(parser.CSVText)
	require.NoError(t, err)
	assert.IsType(t, &parser.CSVTextParser{}, p)

	_, err = c.GetParser("pdf")
	assert.Error(t, err)
}

func TestContainer_NewSession(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Chart.Type = "bar"
	cfg.Chart.Theme = "mono"

	c, err := NewContainerWithDeps(cfg, logging.NewMockLogger(), &store.MockThemeStore{Themes: []theme.Theme{monoTheme}})
	require.NoError(t, err)

	s := c.NewSession()
	s.Table().SetValue(0, "A", "1")
	bar, ok := s.Generate().(*chartconfig.BarConfig)
	require.True(t, ok)
	assert.Equal(t, "mono", bar.Theme)
	assert.Equal(t, "#000000", bar.Datasets[0].BackgroundColor)
}
