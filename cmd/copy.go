package cmd

import (
	"fmt"
	"os"

	"github.com/samsaffron/mdpad/internal/clipboard"
	"github.com/samsaffron/mdpad/internal/editor"
	"github.com/samsaffron/mdpad/internal/ui"
	"github.com/spf13/cobra"
)

var copyHTML bool

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy the saved buffer to the clipboard",
	Long: `Copy the saved buffer to the system clipboard, as markdown or as HTML.
Without a native clipboard tool the copy is sent as an OSC 52 escape.

Examples:
  mdpad copy
  mdpad copy --html`,
	Args: cobra.NoArgs,
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().BoolVar(&copyHTML, "html", false, "Copy the rendered HTML instead of markdown")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	ctx, stop := notifyContext()
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	styles := ui.NewStyledWithTheme(os.Stderr, initThemeFromConfig(cfg))

	ed, s, err := openEditor(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	clip, err := clipboard.NewSystemWriter(cfg.Clipboard.Mode)
	if err != nil {
		return err
	}

	text := ed.CopyRaw()
	if copyHTML {
		text = ed.CopyRendered()
	}
	n, err := editor.Export(clip, text, copyHTML)
	fmt.Fprintln(cmd.ErrOrStderr(), styles.FormatResult(err == nil, n.Text))
	return err
}
