package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samsaffron/mdpad/internal/render"
	"github.com/samsaffron/mdpad/internal/store"
	"github.com/spf13/viper"
)

type Config struct {
	Store     StoreConfig     `mapstructure:"store"`
	Render    RenderConfig    `mapstructure:"render"`
	UI        UIConfig        `mapstructure:"ui"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	Theme     ThemeConfig     `mapstructure:"theme"`
}

// StoreConfig selects where the buffer is persisted
type StoreConfig struct {
	Backend string `mapstructure:"backend"` // sqlite, file or memory
	Path    string `mapstructure:"path"`    // Override database file or content directory
	Key     string `mapstructure:"key"`     // Key the buffer is saved under
}

// RenderConfig controls markdown to HTML conversion
type RenderConfig struct {
	HardWraps  bool `mapstructure:"hard_wraps"`  // single newline becomes <br>
	GFM        bool `mapstructure:"gfm"`         // tables, strikethrough, autolinks, task lists
	Sanitize   bool `mapstructure:"sanitize"`    // run output through bluemonday
	UnsafeHTML bool `mapstructure:"unsafe_html"` // pass raw HTML through
}

// UIConfig configures the editor TUI
type UIConfig struct {
	Preview              string        `mapstructure:"preview"` // terminal or html
	ShowPreview          bool          `mapstructure:"show_preview"`
	NotificationDuration time.Duration `mapstructure:"notification_duration"`
}

// ClipboardConfig selects the clipboard mechanism
type ClipboardConfig struct {
	Mode string `mapstructure:"mode"` // auto, native or osc52
}

// ThemeConfig allows customization of UI colors
// Colors can be ANSI color numbers (0-255) or hex codes (#RRGGBB)
type ThemeConfig struct {
	Preset    string `mapstructure:"preset"`    // named preset applied before overrides
	Primary   string `mapstructure:"primary"`   // main accent (shortcuts, highlights)
	Secondary string `mapstructure:"secondary"` // secondary accent (headings, borders)
	Success   string `mapstructure:"success"`   // notifications
	Error     string `mapstructure:"error"`     // error states
	Warning   string `mapstructure:"warning"`   // warnings
	Muted     string `mapstructure:"muted"`     // dimmed text
	Text      string `mapstructure:"text"`      // primary text
	Selection string `mapstructure:"selection"` // selection background
}

// Preview modes
const (
	PreviewTerminal = "terminal"
	PreviewHTML     = "html"
)

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("store.backend", store.BackendSQLite)
	v.SetDefault("store.key", store.ContentKey)
	v.SetDefault("render.hard_wraps", true)
	v.SetDefault("render.gfm", true)
	v.SetDefault("render.sanitize", true)
	v.SetDefault("render.unsafe_html", true)
	v.SetDefault("ui.preview", PreviewTerminal)
	v.SetDefault("ui.show_preview", true)
	v.SetDefault("ui.notification_duration", 2*time.Second)
	v.SetDefault("clipboard.mode", "auto")
	v.SetDefault("theme.preset", "gruvbox")
}

// Load reads the config file and environment into a fresh viper instance,
// so a file rewritten by config set is picked up on the next call.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	configPath, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config dir: %w", err)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	SetDefaults(v)

	// MDPAD_STORE_BACKEND overrides store.backend, and so on
	v.SetEnvPrefix("mdpad")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("store.path")

	// Read config file (optional - won't error if missing)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Store.Path = expandHome(cfg.Store.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the editor cannot act on.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case store.BackendSQLite, store.BackendFile, store.BackendMemory:
	default:
		return fmt.Errorf("store.backend: unknown backend %q", c.Store.Backend)
	}
	switch c.UI.Preview {
	case PreviewTerminal, PreviewHTML:
	default:
		return fmt.Errorf("ui.preview: must be %q or %q, got %q", PreviewTerminal, PreviewHTML, c.UI.Preview)
	}
	switch c.Clipboard.Mode {
	case "auto", "native", "osc52":
	default:
		return fmt.Errorf("clipboard.mode: must be auto, native or osc52, got %q", c.Clipboard.Mode)
	}
	if c.UI.NotificationDuration <= 0 {
		return fmt.Errorf("ui.notification_duration: must be positive, got %s", c.UI.NotificationDuration)
	}
	return nil
}

// ApplyOverrides applies command line overrides to the config.
// A non-empty backend replaces store.backend; ephemeral forces the memory
// backend so nothing is written to disk.
func (c *Config) ApplyOverrides(backend string, ephemeral bool) {
	if backend != "" {
		c.Store.Backend = backend
	}
	if ephemeral {
		c.Store.Backend = store.BackendMemory
	}
}

// StoreOptions converts the store section for store.NewStore.
func (c *Config) StoreOptions() store.Config {
	return store.Config{Backend: c.Store.Backend, Path: c.Store.Path}
}

// RenderOptions converts the render section for the HTML renderer.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		HardWraps:  c.Render.HardWraps,
		GFM:        c.Render.GFM,
		Sanitize:   c.Render.Sanitize,
		UnsafeHTML: c.Render.UnsafeHTML,
	}
}

// expandHome expands a leading ~/ in a path
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}

// GetConfigDir returns the XDG config directory for mdpad.
// Uses $XDG_CONFIG_HOME if set, otherwise ~/.config
func GetConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "mdpad"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "mdpad"), nil
}

// GetConfigPath returns the path where the config file should be located
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// GetStateDir returns the XDG state directory for mdpad (debug logs).
// Uses $XDG_STATE_HOME if set, otherwise ~/.local/state
func GetStateDir() (string, error) {
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return filepath.Join(xdgState, "mdpad"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "state", "mdpad"), nil
}

// Exists returns true if a config file exists
func Exists() bool {
	path, err := GetConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// NeedsSetup returns true if config file doesn't exist
func NeedsSetup() bool {
	return !Exists()
}

// Save writes the config to disk
func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content := fmt.Sprintf(`store:
  backend: %s # sqlite, file or memory
  # path: ~/notes/mdpad.db
  key: %s

render:
  hard_wraps: %t
  gfm: %t
  sanitize: %t
  unsafe_html: %t

ui:
  preview: %s # terminal or html
  show_preview: %t
  notification_duration: %s

clipboard:
  mode: %s # auto, native or osc52

theme:
  preset: %s
  # Override individual colors (ANSI numbers or #RRGGBB):
  # primary: "#b8bb26"
  # selection: "#504945"
`, cfg.Store.Backend, cfg.Store.Key,
		cfg.Render.HardWraps, cfg.Render.GFM, cfg.Render.Sanitize, cfg.Render.UnsafeHTML,
		cfg.UI.Preview, cfg.UI.ShowPreview, cfg.UI.NotificationDuration,
		cfg.Clipboard.Mode, cfg.Theme.Preset)

	return os.WriteFile(path, []byte(content), 0600)
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}
