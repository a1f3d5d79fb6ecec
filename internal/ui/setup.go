package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/samsaffron/mdpad/internal/config"
	"github.com/samsaffron/mdpad/internal/store"
)

// getTTY opens /dev/tty for direct terminal access (bypasses redirections)
func getTTY() (*os.File, error) {
	return os.OpenFile("/dev/tty", os.O_RDWR, 0)
}

// SetupChoices are the answers collected by the setup wizard.
type SetupChoices struct {
	Theme   string
	Backend string
	Preview string
}

// DefaultSetupChoices matches config.Default.
func DefaultSetupChoices() SetupChoices {
	return SetupChoices{
		Theme:   "gruvbox",
		Backend: store.BackendSQLite,
		Preview: config.PreviewTerminal,
	}
}

// Apply writes the choices into cfg.
func (c SetupChoices) Apply(cfg *config.Config) {
	cfg.Theme.Preset = c.Theme
	cfg.Store.Backend = c.Backend
	cfg.UI.Preview = c.Preview
}

func themeOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(PresetThemeNames))
	for _, name := range PresetThemeNames {
		p := PresetThemes[name]
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s - %s", p.Name, p.Description), p.Name))
	}
	return opts
}

func setupForm(choices *SetupChoices) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions()...).
				Value(&choices.Theme),
			huh.NewSelect[string]().
				Title("Where should the scratchpad be saved?").
				Options(
					huh.NewOption("SQLite database (recommended)", store.BackendSQLite),
					huh.NewOption("Plain markdown file", store.BackendFile),
					huh.NewOption("Nowhere (memory only)", store.BackendMemory),
				).
				Value(&choices.Backend),
			huh.NewSelect[string]().
				Title("Preview pane").
				Options(
					huh.NewOption("Rendered in the terminal", config.PreviewTerminal),
					huh.NewOption("Raw HTML", config.PreviewHTML),
				).
				Value(&choices.Preview),
		),
	)
}

// RunSetupWizard runs the first-time setup wizard, saves and returns the config
func RunSetupWizard() (*config.Config, error) {
	// Use /dev/tty for output to bypass redirections
	var out io.Writer = os.Stderr
	tty, ttyErr := getTTY()
	if ttyErr == nil {
		defer tty.Close()
		out = tty
	}
	fmt.Fprintln(out, "Welcome to mdpad! A few questions before we start.")
	fmt.Fprintln(out)

	choices := DefaultSetupChoices()
	form := setupForm(&choices)
	if ttyErr == nil {
		form = form.WithInput(tty).WithOutput(tty)
	}
	if err := form.Run(); err != nil {
		return nil, err
	}

	cfg := config.Default()
	choices.Apply(cfg)
	if err := config.Save(cfg); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	path, _ := config.GetConfigPath()
	fmt.Fprintf(out, "Config saved to %s\n\n", path)

	return config.Load()
}
