package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestApplyOverrides(t *testing.T) {
	cfg := &Config{
		Store: StoreConfig{Backend: "sqlite", Key: "markdownContent"},
	}

	cfg.ApplyOverrides("file", false)
	if cfg.Store.Backend != "file" {
		t.Fatalf("backend=%q, want %q", cfg.Store.Backend, "file")
	}

	cfg.ApplyOverrides("", false)
	if cfg.Store.Backend != "file" {
		t.Fatalf("backend changed unexpectedly: %q", cfg.Store.Backend)
	}

	cfg.ApplyOverrides("sqlite", true)
	if cfg.Store.Backend != "memory" {
		t.Fatalf("backend=%q, want memory when ephemeral", cfg.Store.Backend)
	}
	if cfg.Store.Key != "markdownContent" {
		t.Fatalf("key changed unexpectedly: %q", cfg.Store.Key)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Backend != "sqlite" || cfg.Store.Key != "markdownContent" {
		t.Fatalf("store=%+v", cfg.Store)
	}
	if !cfg.Render.HardWraps || !cfg.Render.GFM || !cfg.Render.Sanitize || !cfg.Render.UnsafeHTML {
		t.Fatalf("render=%+v, want all enabled", cfg.Render)
	}
	if cfg.UI.Preview != PreviewTerminal || !cfg.UI.ShowPreview {
		t.Fatalf("ui=%+v", cfg.UI)
	}
	if cfg.UI.NotificationDuration != 2*time.Second {
		t.Fatalf("notification_duration=%s, want 2s", cfg.UI.NotificationDuration)
	}
	if cfg.Clipboard.Mode != "auto" {
		t.Fatalf("clipboard.mode=%q", cfg.Clipboard.Mode)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "mdpad"), 0755); err != nil {
		t.Fatal(err)
	}
	yaml := "store:\n  backend: file\n  path: /tmp/pad\nui:\n  notification_duration: 500ms\nrender:\n  hard_wraps: false\n"
	if err := os.WriteFile(filepath.Join(dir, "mdpad", "config.yaml"), []byte(yaml), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MDPAD_UI_PREVIEW", "html")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Backend != "file" || cfg.Store.Path != "/tmp/pad" {
		t.Fatalf("store=%+v", cfg.Store)
	}
	if cfg.UI.NotificationDuration != 500*time.Millisecond {
		t.Fatalf("notification_duration=%s", cfg.UI.NotificationDuration)
	}
	if cfg.Render.HardWraps {
		t.Fatal("hard_wraps should be disabled by the file")
	}
	if cfg.UI.Preview != PreviewHTML {
		t.Fatalf("preview=%q, want env override html", cfg.UI.Preview)
	}
	if opts := cfg.RenderOptions(); opts.HardWraps || !opts.GFM {
		t.Fatalf("RenderOptions=%+v", opts)
	}
	if sc := cfg.StoreOptions(); sc.Backend != "file" || sc.Path != "/tmp/pad" {
		t.Fatalf("StoreOptions=%+v", sc)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		env, value, want string
	}{
		{"MDPAD_STORE_BACKEND", "redis", "store.backend"},
		{"MDPAD_UI_PREVIEW", "pdf", "ui.preview"},
		{"MDPAD_CLIPBOARD_MODE", "fax", "clipboard.mode"},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", t.TempDir())
			t.Setenv(tt.env, tt.value)
			_, err := load(viper.New())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err=%v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if !NeedsSetup() {
		t.Fatal("NeedsSetup should be true before Save")
	}

	cfg := Default()
	cfg.Store.Backend = "file"
	cfg.UI.Preview = PreviewHTML
	cfg.Theme.Preset = "nord"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists should be true after Save")
	}

	loaded, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Store.Backend != "file" || loaded.UI.Preview != PreviewHTML || loaded.Theme.Preset != "nord" {
		t.Fatalf("loaded=%+v", loaded)
	}
	if loaded.UI.NotificationDuration != 2*time.Second {
		t.Fatalf("notification_duration=%s", loaded.UI.NotificationDuration)
	}
}

func TestGetStateDir(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")
	dir, err := GetStateDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/state", "mdpad") {
		t.Fatalf("GetStateDir()=%q", dir)
	}
}
