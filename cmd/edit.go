package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samsaffron/mdpad/internal/clipboard"
	"github.com/samsaffron/mdpad/internal/tui/pad"
	"github.com/samsaffron/mdpad/internal/ui"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the editor on the saved buffer",
	Long: `Open the split-pane editor. This is also what runs when mdpad is
started without a subcommand.

Keys:
  alt+1..alt+4   header levels        ctrl+u  bullet list
  ctrl+b         bold                 ctrl+o  numbered list
  ctrl+t         italic               ctrl+l  insert link
  ctrl+x         strikethrough        ctrl+y  copy markdown
  ctrl+e         inline code          ctrl+r  copy HTML
  ctrl+p         command palette      ctrl+k  clear everything
  alt+p, f2      toggle preview mode  ctrl+q  quit
  tab            insert a tab`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx, stop := notifyContext()
	defer stop()

	cfg, err := loadConfigWithSetup()
	if err != nil {
		return err
	}
	theme := initThemeFromConfig(cfg)

	ed, s, err := openEditor(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	clip, err := clipboard.NewSystemWriter(cfg.Clipboard.Mode)
	if err != nil {
		return err
	}

	model := pad.New(pad.Options{
		Editor:               ed,
		Styles:               ui.NewStyledWithTheme(os.Stdout, theme),
		Preview:              ui.NewPreviewRenderer(theme),
		Clipboard:            clip,
		Highlighter:          ui.NewHighlighter("html", ui.ChromaStyle(cfg.Theme.Preset)),
		PreviewMode:          cfg.UI.Preview,
		ShowPreview:          cfg.UI.ShowPreview,
		NotificationDuration: cfg.UI.NotificationDuration,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("editor failed: %w", err)
	}
	return nil
}
