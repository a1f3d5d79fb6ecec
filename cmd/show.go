package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/samsaffron/mdpad/internal/store"
	"github.com/samsaffron/mdpad/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	showHTML bool
	showInfo bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved buffer",
	Long: `Print the saved buffer as markdown, or as HTML with --html.

Examples:
  mdpad show
  mdpad show --html > draft.html
  mdpad show --info`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showHTML, "html", false, "Print the rendered HTML instead of markdown")
	showCmd.Flags().BoolVar(&showInfo, "info", false, "Report on stderr when the buffer was last saved")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx, stop := notifyContext()
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ed, s, err := openEditor(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if showInfo {
		if err := printLastSaved(ctx, cmd.ErrOrStderr(), s, ed.Key()); err != nil {
			return err
		}
	}

	out := ed.CopyRaw()
	if showHTML {
		out = ed.CopyRendered()
		if term.IsTerminal(int(os.Stdout.Fd())) {
			out = ui.NewHighlighter("html", ui.ChromaStyle(cfg.Theme.Preset)).Highlight(out)
		}
	}
	if out == "" {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func printLastSaved(ctx context.Context, w io.Writer, s store.Store, key string) error {
	at, ok, err := store.LastSaved(ctx, s, key)
	if err != nil {
		return fmt.Errorf("read save time: %w", err)
	}
	if !ok {
		fmt.Fprintln(w, "Last saved: unknown")
		return nil
	}
	fmt.Fprintf(w, "Last saved: %s\n", at.Local().Format(time.DateTime))
	return nil
}
