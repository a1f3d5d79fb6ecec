package cmd

import (
	"fmt"
	"os"

	"github.com/samsaffron/mdpad/internal/ui"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved buffer",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
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

	n, err := ed.Clear()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), styles.FormatResult(true, n.Text))
	return nil
}
