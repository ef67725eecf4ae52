// Package themes handles the command that lists and exports color themes
package themes

import (
	"fmt"
	"strings"

	"fjacquet/chart-csv/cmd/root"
	"fjacquet/chart-csv/internal/container"
	"fjacquet/chart-csv/internal/logging"
	"fjacquet/chart-csv/internal/store"
	"fjacquet/chart-csv/internal/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var exportPath string

var (
	idStyle    = lipgloss.NewStyle().Bold(true).Width(12)
	nameStyle  = lipgloss.NewStyle().Width(18)
	surfaceTag = lipgloss.NewStyle().Faint(true)
)

// Cmd represents the themes command
var Cmd = &cobra.Command{
	Use:   "themes",
	Short: "List the available color themes",
	Long: `List the builtin themes and any custom themes loaded from the themes file,
with a swatch of every palette color. With --export the full theme set is
written to a YAML file that can be edited and loaded back with --themes-file.`,
	RunE: themesFunc,
}

func init() {
	Cmd.Flags().StringVar(&exportPath, "export", "", "Write every theme to this YAML file")
}

func themesFunc(cmd *cobra.Command, args []string) error {
	return run(cmd, root.AppContainer)
}

func run(cmd *cobra.Command, c *container.Container) error {
	list := c.GetRegistry().List()

	if exportPath != "" {
		if err := store.NewThemeStore(exportPath, c.GetLogger()).SaveThemes(list); err != nil {
			return err
		}
		c.GetLogger().Info("Themes exported",
			logging.Field{Key: logging.FieldThemesFile, Value: exportPath},
			logging.Field{Key: logging.FieldCount, Value: len(list)})
		return nil
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), renderThemes(list, c.GetConfig().Chart.Theme))
	return err
}

// renderThemes draws one line per theme: identifier, display name and a
// colored swatch per palette entry. The configured theme is starred.
func renderThemes(list []theme.Theme, selected string) string {
	var sb strings.Builder
	for _, t := range list {
		marker := "  "
		if strings.EqualFold(t.ID, selected) {
			marker = "* "
		}
		sb.WriteString(marker)
		sb.WriteString(idStyle.Render(t.ID))
		sb.WriteString(nameStyle.Render(t.Name))
		for _, c := range t.Colors {
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("██"))
		}
		if t.LightSurface {
			sb.WriteString(" " + surfaceTag.Render("(light)"))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
