package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/samsaffron/mdpad/internal/config"
	"github.com/samsaffron/mdpad/internal/store"
)

func TestReadMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(path, []byte("# from file"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "stdin", args: nil, want: "# from stdin"},
		{name: "dash", args: []string{"-"}, want: "# from stdin"},
		{name: "file", args: []string{path}, want: "# from file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readMarkdown(strings.NewReader("# from stdin"), tt.args)
			if err != nil {
				t.Fatalf("readMarkdown: %v", err)
			}
			if got != tt.want {
				t.Fatalf("readMarkdown = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := readMarkdown(nil, []string{filepath.Join(t.TempDir(), "missing.md")}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRenderMarkdownHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := renderMarkdown(&buf, config.Default(), "# Title\n\nsome **bold**\nnext", 0); err != nil {
		t.Fatalf("renderMarkdown: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Title</h1>", "<strong>bold</strong>", "<br"} {
		if !strings.Contains(out, want) {
			t.Fatalf("html missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMarkdownTerminal(t *testing.T) {
	var buf bytes.Buffer
	if err := renderMarkdown(&buf, config.Default(), "# Title\n\n- item", 40); err != nil {
		t.Fatalf("renderMarkdown: %v", err)
	}
	out := ansi.Strip(buf.String())
	if strings.Contains(out, "<h1") {
		t.Fatalf("terminal output contains html:\n%s", out)
	}
	for _, want := range []string{"Title", "item"} {
		if !strings.Contains(out, want) {
			t.Fatalf("terminal output missing %q:\n%s", want, out)
		}
	}
}

func TestOpenEditorRestoresBuffer(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Backend = store.BackendFile
	cfg.Store.Path = t.TempDir()

	ed, s, err := openEditor(context.Background(), cfg)
	if err != nil {
		t.Fatalf("openEditor: %v", err)
	}
	if err := ed.InsertText("- saved"); err != nil {
		t.Fatalf("InsertText: %v", err)
	}
	s.Close()

	ed, s, err = openEditor(context.Background(), cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	if ed.CopyRaw() != "- saved" {
		t.Fatalf("restored text = %q, want %q", ed.CopyRaw(), "- saved")
	}
	if !strings.Contains(ed.CopyRendered(), "<li>saved</li>") {
		t.Fatalf("restored preview = %q", ed.CopyRendered())
	}

	if _, err := ed.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	ed, s2, err := openEditor(context.Background(), cfg)
	if err != nil {
		t.Fatalf("reopen after clear: %v", err)
	}
	defer s2.Close()
	if ed.CopyRaw() != "" {
		t.Fatalf("text after clear = %q, want empty", ed.CopyRaw())
	}
}

func TestEphemeralOverride(t *testing.T) {
	storeBackend, ephemeral = "", true
	t.Cleanup(func() { storeBackend, ephemeral = "", false })
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Store.Backend != store.BackendMemory {
		t.Fatalf("backend = %q, want memory", cfg.Store.Backend)
	}
}

func TestPrintLastSaved(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Backend = store.BackendSQLite
	cfg.Store.Path = filepath.Join(t.TempDir(), "pad.db")
	ctx := context.Background()

	ed, s, err := openEditor(ctx, cfg)
	if err != nil {
		t.Fatalf("openEditor: %v", err)
	}
	defer s.Close()

	var buf bytes.Buffer
	if err := printLastSaved(ctx, &buf, s, ed.Key()); err != nil {
		t.Fatalf("printLastSaved: %v", err)
	}
	if buf.String() != "Last saved: unknown\n" {
		t.Fatalf("before save = %q", buf.String())
	}

	if err := ed.InsertText("x"); err != nil {
		t.Fatalf("InsertText: %v", err)
	}
	buf.Reset()
	if err := printLastSaved(ctx, &buf, s, ed.Key()); err != nil {
		t.Fatalf("printLastSaved: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Last saved: ") || strings.Contains(out, "unknown") {
		t.Fatalf("after save = %q", out)
	}

	buf.Reset()
	if err := printLastSaved(ctx, &buf, store.NewMemoryStore(), store.ContentKey); err != nil {
		t.Fatalf("printLastSaved memory: %v", err)
	}
	if buf.String() != "Last saved: unknown\n" {
		t.Fatalf("memory store = %q", buf.String())
	}
}
