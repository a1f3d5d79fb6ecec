package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/samsaffron/mdpad/internal/config"
	"github.com/samsaffron/mdpad/internal/ui"
	"github.com/spf13/cobra"
)

var configThemeCmd = &cobra.Command{
	Use:   "theme [preset]",
	Short: "Select a UI color theme",
	Long: `Select one of the predefined color themes. Without an argument an
interactive picker is shown.

Available themes: gruvbox (default), dracula, nord, solarized, monokai, classic`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: ui.PresetThemeNames,
	RunE:      configTheme,
}

func init() {
	configCmd.AddCommand(configThemeCmd)
}

func configTheme(cmd *cobra.Command, args []string) error {
	current := "gruvbox"
	if cfg, err := config.Load(); err == nil && cfg.Theme.Preset != "" {
		current = cfg.Theme.Preset
	}

	selected := current
	if len(args) == 1 {
		selected = args[0]
	} else {
		err := huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions()...).
			Value(&selected).
			Run()
		if err != nil {
			return err
		}
	}

	preset := ui.GetPresetTheme(selected)
	if preset == nil {
		return fmt.Errorf("unknown theme: %s", selected)
	}

	if err := updateConfigFile(map[string]string{"theme.preset": selected}); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	theme := ui.ThemeFromConfig(preset.Config)
	ui.SetTheme(theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderThemePreview(theme, *preset))
	return nil
}

func themeOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(ui.PresetThemeNames))
	for _, name := range ui.PresetThemeNames {
		p := ui.PresetThemes[name]
		opts = append(opts, huh.NewOption(name+"  "+p.Description, name))
	}
	return opts
}

// renderThemePreview renders a panel showing the theme applied to editor elements
func renderThemePreview(theme *ui.Theme, preset ui.ThemePreset) string {
	var b strings.Builder

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Text)
	primaryStyle := lipgloss.NewStyle().Foreground(theme.Primary)
	secondaryStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	successStyle := lipgloss.NewStyle().Foreground(theme.Success)
	errorStyle := lipgloss.NewStyle().Foreground(theme.Error)
	mutedStyle := lipgloss.NewStyle().Foreground(theme.Muted)
	selectionStyle := lipgloss.NewStyle().Foreground(theme.Text).Background(theme.Selection)

	b.WriteString(titleStyle.Render("Theme: "+preset.Name) + "\n")
	b.WriteString(mutedStyle.Render(preset.Description) + "\n\n")

	b.WriteString(secondaryStyle.Bold(true).Render("## Heading") + "\n")
	b.WriteString("Some " + selectionStyle.Render("selected") + " text\n\n")
	b.WriteString(primaryStyle.Render("ctrl+b") + mutedStyle.Render(" bold  ") +
		primaryStyle.Render("ctrl+t") + mutedStyle.Render(" italic") + "\n")
	b.WriteString(successStyle.Render(ui.SuccessIcon+" Text copied to clipboard!") + "\n")
	b.WriteString(errorStyle.Render(ui.FailIcon+" Failed to copy HTML"))

	return borderStyle.Render(b.String())
}
