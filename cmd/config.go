package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/samsaffron/mdpad/internal/clipboard"
	"github.com/samsaffron/mdpad/internal/config"
	"github.com/samsaffron/mdpad/internal/store"
	"github.com/samsaffron/mdpad/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mdpad configuration",
	Long: `View or edit your mdpad configuration.

Examples:
  mdpad config                     # show current config
  mdpad config edit                # edit in $EDITOR
  mdpad config reset               # reset to defaults
  mdpad config completion zsh      # generate shell completions`,
	RunE: configShow, // Default to show
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit configuration file in $EDITOR",
	RunE:  configEdit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print configuration file path",
	RunE:  configPath,
}

var configCompletionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script and print setup instructions.

Examples:
  mdpad config completion bash
  mdpad config completion zsh --install`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE:      configCompletion,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset configuration to defaults",
	Long:  `Reset the configuration file to default values. This will overwrite any existing configuration.`,
	RunE:  configReset,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value while preserving comments.

Examples:
  mdpad config set store.backend file
  mdpad config set ui.preview html
  mdpad config set ui.notification_duration 3s
  mdpad config set theme.primary "#ff79c6"`,
	Args:              cobra.ExactArgs(2),
	RunE:              configSet,
	ValidArgsFunction: configSetCompletion,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a configuration value from the config file.

Examples:
  mdpad config get store.backend`,
	Args:              cobra.ExactArgs(1),
	RunE:              configGet,
	ValidArgsFunction: configGetCompletion,
}

var installCompletions bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configCompletionCmd)
	configCmd.AddCommand(configResetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCompletionCmd.Flags().BoolVar(&installCompletions, "install", false, "Install completions to standard location")
}

func configShow(cmd *cobra.Command, args []string) error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		fmt.Fprintf(out, "# No config file (using defaults)\n")
		fmt.Fprintf(out, "# Create one at: %s\n\n", configPath)
	} else {
		fmt.Fprintf(out, "# %s\n\n", configPath)
	}
	printConfig(out, cfg)
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	storePath := cfg.Store.Path
	if storePath == "" {
		storePath = "(default)"
	}
	fmt.Fprintf(out, "store:\n")
	fmt.Fprintf(out, "  backend: %s\n", cfg.Store.Backend)
	fmt.Fprintf(out, "  path: %s\n", storePath)
	fmt.Fprintf(out, "  key: %s\n\n", cfg.Store.Key)

	fmt.Fprintf(out, "render:\n")
	fmt.Fprintf(out, "  hard_wraps: %t\n", cfg.Render.HardWraps)
	fmt.Fprintf(out, "  gfm: %t\n", cfg.Render.GFM)
	fmt.Fprintf(out, "  sanitize: %t\n", cfg.Render.Sanitize)
	fmt.Fprintf(out, "  unsafe_html: %t\n\n", cfg.Render.UnsafeHTML)

	fmt.Fprintf(out, "ui:\n")
	fmt.Fprintf(out, "  preview: %s\n", cfg.UI.Preview)
	fmt.Fprintf(out, "  show_preview: %t\n", cfg.UI.ShowPreview)
	fmt.Fprintf(out, "  notification_duration: %s\n\n", cfg.UI.NotificationDuration)

	fmt.Fprintf(out, "clipboard:\n")
	fmt.Fprintf(out, "  mode: %s\n\n", cfg.Clipboard.Mode)

	fmt.Fprintf(out, "theme:\n")
	fmt.Fprintf(out, "  preset: %s\n", cfg.Theme.Preset)
	for _, c := range []struct{ name, value string }{
		{"primary", cfg.Theme.Primary},
		{"secondary", cfg.Theme.Secondary},
		{"success", cfg.Theme.Success},
		{"error", cfg.Theme.Error},
		{"warning", cfg.Theme.Warning},
		{"muted", cfg.Theme.Muted},
		{"text", cfg.Theme.Text},
		{"selection", cfg.Theme.Selection},
	} {
		if c.value != "" {
			fmt.Fprintf(out, "  %s: %q\n", c.name, c.value)
		}
	}
}

// writeDefaultConfig creates the config file from defaults when it is missing.
func writeDefaultConfig(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := config.Save(config.Default()); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
	}
	return nil
}

func configEdit(cmd *cobra.Command, args []string) error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	if err := writeDefaultConfig(configPath); err != nil {
		return err
	}

	// Get editor from environment
	editorBin := os.Getenv("EDITOR")
	if editorBin == "" {
		editorBin = os.Getenv("VISUAL")
	}
	if editorBin == "" {
		editorBin = "vi"
	}

	editorCmd := exec.Command(editorBin, configPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr
	if err := editorCmd.Run(); err != nil {
		return err
	}

	if _, err := config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, ui.DefaultStyles().FormatResult(false, err.Error()))
	}
	return nil
}

func configPath(cmd *cobra.Command, args []string) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func configReset(cmd *cobra.Command, args []string) error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	if err := config.Save(config.Default()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config reset to defaults: %s\n", configPath)
	return nil
}

func configCompletion(cmd *cobra.Command, args []string) error {
	shell := args[0]

	if installCompletions {
		return installShellCompletion(shell)
	}

	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(os.Stdout, true)
	case "zsh":
		return rootCmd.GenZshCompletion(os.Stdout)
	case "fish":
		return rootCmd.GenFishCompletion(os.Stdout, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
	}
	return nil
}

func installShellCompletion(shell string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	var path string
	var buf bytes.Buffer

	switch shell {
	case "bash":
		path = filepath.Join(home, ".bash_completion.d", "mdpad")
		err = rootCmd.GenBashCompletionV2(&buf, true)
	case "zsh":
		// ~/.local/share/zsh/site-functions is the XDG location
		path = filepath.Join(home, ".local", "share", "zsh", "site-functions", "_mdpad")
		err = rootCmd.GenZshCompletion(&buf)
	case "fish":
		path = filepath.Join(home, ".config", "fish", "completions", "mdpad.fish")
		err = rootCmd.GenFishCompletion(&buf, true)
	case "powershell":
		path = filepath.Join(home, ".config", "powershell", "completions", "mdpad.ps1")
		err = rootCmd.GenPowerShellCompletionWithDesc(&buf)
	default:
		return fmt.Errorf("unknown shell: %s", shell)
	}
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write completion file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Installed completions to %s\n", path)

	switch shell {
	case "bash":
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Add to ~/.bashrc:")
		fmt.Fprintf(os.Stderr, "  source %s\n", path)
	case "zsh":
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Ensure ~/.zshrc has (before compinit):")
		fmt.Fprintf(os.Stderr, "  fpath+=(%s)\n", dir)
		fmt.Fprintln(os.Stderr, "  autoload -U compinit && compinit")
	case "fish":
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Restart your shell or run: exec fish")
	case "powershell":
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Add to your PowerShell profile:")
		fmt.Fprintf(os.Stderr, "  . %s\n", path)
	}
	return nil
}

// configSet sets a configuration value while preserving comments
func configSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	if err := updateConfigFile(map[string]string{key: value}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
	return nil
}

// updateConfigFile applies dotted-key assignments to the config file,
// keeping comments and formatting. The previous contents are restored when
// the result does not load.
func updateConfigFile(values map[string]string) error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var root yaml.Node
	original, err := os.ReadFile(configPath)
	existed := err == nil
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		root = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	} else if err := yaml.Unmarshal(original, &root); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if root.Kind == 0 {
		// empty file
		root = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}

	for key, value := range values {
		if err := setYAMLValue(&root, strings.Split(key, "."), value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	data, err := encodeYAML(&root)
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if _, loadErr := config.Load(); loadErr != nil {
		if existed {
			_ = os.WriteFile(configPath, original, 0600)
		} else {
			_ = os.Remove(configPath)
		}
		return loadErr
	}
	return nil
}

func encodeYAML(root *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// setYAMLValue navigates/creates the path in a yaml.Node tree and sets the value
func setYAMLValue(root *yaml.Node, path []string, value string) error {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return fmt.Errorf("invalid document structure")
	}

	current := root.Content[0]
	if current.Kind != yaml.MappingNode {
		return fmt.Errorf("root is not a mapping")
	}

	for i, part := range path {
		isLast := i == len(path)-1

		var next *yaml.Node
		for j := 0; j+1 < len(current.Content); j += 2 {
			if current.Content[j].Value == part {
				next = current.Content[j+1]
				break
			}
		}

		if next == nil {
			next = &yaml.Node{Kind: yaml.MappingNode}
			if isLast {
				next = &yaml.Node{Kind: yaml.ScalarNode}
			}
			current.Content = append(current.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: part}, next)
		}

		if isLast {
			next.Kind = yaml.ScalarNode
			next.Content = nil
			next.Value = value
			next.Tag = ""
			next.Style = 0
			if strings.HasPrefix(value, "#") {
				// unquoted # starts a comment
				next.Style = yaml.DoubleQuotedStyle
			}
			return nil
		}

		if next.Kind != yaml.MappingNode {
			// Convert to mapping if needed
			next.Kind = yaml.MappingNode
			next.Content = nil
			next.Value = ""
			next.Tag = ""
		}
		current = next
	}

	return nil
}

// configGet gets a configuration value
func configGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("config file does not exist")
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	value, err := getYAMLValue(&root, strings.Split(key, "."))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// getYAMLValue navigates the yaml.Node tree and returns the value at path
func getYAMLValue(root *yaml.Node, path []string) (string, error) {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return "", fmt.Errorf("invalid document structure")
	}

	current := root.Content[0]
	for _, part := range path {
		if current.Kind != yaml.MappingNode {
			return "", fmt.Errorf("path not found: expected mapping")
		}

		found := false
		for j := 0; j+1 < len(current.Content); j += 2 {
			if current.Content[j].Value == part {
				current = current.Content[j+1]
				found = true
				break
			}
		}
		if !found {
			return "", fmt.Errorf("key not found: %s", part)
		}
	}

	if current.Kind == yaml.ScalarNode {
		return current.Value, nil
	}
	return "", fmt.Errorf("value is not a scalar")
}

// configSetCompletion provides completions for config set
func configSetCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return filterPrefix(configKeys, toComplete), cobra.ShellCompDirectiveNoFileComp
	case 1:
		return configValueCompletions(args[0], toComplete), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// configGetCompletion provides completions for config get
func configGetCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return filterPrefix(configKeys, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

var configKeys = []string{
	"store.backend",
	"store.path",
	"store.key",
	"render.hard_wraps",
	"render.gfm",
	"render.sanitize",
	"render.unsafe_html",
	"ui.preview",
	"ui.show_preview",
	"ui.notification_duration",
	"clipboard.mode",
	"theme.preset",
	"theme.primary",
	"theme.secondary",
	"theme.success",
	"theme.error",
	"theme.warning",
	"theme.muted",
	"theme.text",
	"theme.selection",
}

// configValueCompletions returns completions for config values based on key
func configValueCompletions(key, toComplete string) []string {
	switch key {
	case "store.backend":
		return filterPrefix([]string{store.BackendSQLite, store.BackendFile, store.BackendMemory}, toComplete)
	case "ui.preview":
		return filterPrefix([]string{config.PreviewTerminal, config.PreviewHTML}, toComplete)
	case "clipboard.mode":
		return filterPrefix([]string{clipboard.ModeAuto, clipboard.ModeNative, clipboard.ModeOSC52}, toComplete)
	case "theme.preset":
		return filterPrefix(ui.PresetThemeNames, toComplete)
	case "render.hard_wraps", "render.gfm", "render.sanitize", "render.unsafe_html", "ui.show_preview":
		return filterPrefix([]string{"true", "false"}, toComplete)
	}
	return nil
}

// filterPrefix filters a slice to items starting with prefix
func filterPrefix(items []string, prefix string) []string {
	var result []string
	for _, item := range items {
		if strings.HasPrefix(item, prefix) {
			result = append(result, item)
		}
	}
	return result
}
