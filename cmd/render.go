package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/samsaffron/mdpad/internal/config"
	"github.com/samsaffron/mdpad/internal/render"
	"github.com/samsaffron/mdpad/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var renderTerm bool

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render markdown to HTML or to the terminal",
	Long: `Render a markdown file, or stdin when no file is given. Output is HTML
using the same settings as the editor's copy-as-HTML action.

Examples:
  mdpad render README.md > readme.html
  echo "# hi" | mdpad render
  mdpad render --term notes.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().BoolVar(&renderTerm, "term", false, "Render for the terminal instead of HTML")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	text, err := readMarkdown(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	width := 0
	if renderTerm {
		width = terminalWidth()
	}
	return renderMarkdown(cmd.OutOrStdout(), cfg, text, width)
}

// readMarkdown reads the named file, or r when no file is given.
func readMarkdown(r io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

// renderMarkdown writes text as HTML, or as styled terminal output when
// width is positive.
func renderMarkdown(w io.Writer, cfg *config.Config, text string, width int) error {
	if width > 0 {
		theme := initThemeFromConfig(cfg)
		_, err := fmt.Fprint(w, ui.NewPreviewRenderer(theme).RenderWidth(text, width))
		return err
	}

	html, err := render.NewHTMLRenderer(cfg.RenderOptions()).RenderWithError(text)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = fmt.Fprint(w, html)
	return err
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
