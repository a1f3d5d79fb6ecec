package cmd

import (
	"os"

	"github.com/samsaffron/mdpad/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mdpad",
	Short: "Markdown scratchpad with live preview",
	Long: `mdpad is a terminal markdown scratchpad. Type on the left, watch the
rendered preview on the right, and copy the result as markdown or HTML.
The buffer is saved automatically after every edit.

Examples:
  mdpad                           # open the editor
  mdpad render notes.md           # convert a file to HTML
  mdpad show --html               # print the saved buffer as HTML
  mdpad copy                      # copy the saved buffer to the clipboard
  mdpad config set ui.preview html`,
	Args:              cobra.NoArgs,
	RunE:              runEdit,
	PersistentPreRunE: setupDebugLog,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	SilenceUsage:      true,
}

var (
	debugLog     bool
	storeBackend string
	ephemeral    bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Write debug logs to the state directory")
	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", "", "Storage backend (sqlite, file, memory)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep the buffer in memory only")
	_ = rootCmd.RegisterFlagCompletionFunc("store", storeFlagCompletion)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func storeFlagCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	backends := []string{store.BackendSQLite, store.BackendFile, store.BackendMemory}
	return filterPrefix(backends, toComplete), cobra.ShellCompDirectiveNoFileComp
}
