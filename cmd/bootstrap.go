package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/samsaffron/mdpad/internal/config"
	"github.com/samsaffron/mdpad/internal/editor"
	"github.com/samsaffron/mdpad/internal/render"
	"github.com/samsaffron/mdpad/internal/store"
	"github.com/samsaffron/mdpad/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// notifyContext returns a context that is cancelled when SIGINT or SIGTERM is received.
func notifyContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyOverrides(storeBackend, ephemeral)
	return cfg, nil
}

// loadConfigWithSetup runs the setup wizard on first use when a terminal is attached.
func loadConfigWithSetup() (*config.Config, error) {
	if config.NeedsSetup() && term.IsTerminal(int(os.Stdin.Fd())) {
		cfg, err := ui.RunSetupWizard()
		if err != nil {
			return nil, fmt.Errorf("setup cancelled: %w", err)
		}
		cfg.ApplyOverrides(storeBackend, ephemeral)
		return cfg, nil
	}

	return loadConfig()
}

func themeOverrides(cfg *config.Config) ui.ThemeConfig {
	return ui.ThemeConfig{
		Primary:   cfg.Theme.Primary,
		Secondary: cfg.Theme.Secondary,
		Success:   cfg.Theme.Success,
		Error:     cfg.Theme.Error,
		Warning:   cfg.Theme.Warning,
		Muted:     cfg.Theme.Muted,
		Text:      cfg.Theme.Text,
		Selection: cfg.Theme.Selection,
	}
}

func initThemeFromConfig(cfg *config.Config) *ui.Theme {
	theme := ui.ResolveTheme(cfg.Theme.Preset, themeOverrides(cfg))
	ui.SetTheme(theme)
	return theme
}

// openStore opens the configured backend. Persistence failures are logged
// once per operation and never abort the caller.
func openStore(cfg *config.Config) (store.Store, error) {
	s, err := store.NewStore(cfg.StoreOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return store.NewLoggingStore(s, func(format string, args ...any) {
		slog.Warn(fmt.Sprintf(format, args...), "backend", cfg.Store.Backend)
	}), nil
}

// openEditor opens the store and restores the saved buffer into a new editor.
// The caller owns the returned store and must close it.
func openEditor(ctx context.Context, cfg *config.Config) (*editor.Editor, store.Store, error) {
	s, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	ed := editor.New(ctx, editor.Options{
		Renderer: render.NewHTMLRenderer(cfg.RenderOptions()),
		Store:    s,
		Key:      cfg.Store.Key,
	})
	if err := ed.Load(); err != nil {
		s.Close()
		return nil, nil, err
	}
	return ed, s, nil
}

// setupDebugLog routes slog output to a file when --debug is set; the
// terminal belongs to the editor while it runs.
func setupDebugLog(cmd *cobra.Command, args []string) error {
	if !debugLog {
		return nil
	}
	dir, err := config.GetStateDir()
	if err != nil {
		return fmt.Errorf("failed to get state dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	slog.Debug("debug logging enabled", "command", cmd.CommandPath())
	return nil
}
