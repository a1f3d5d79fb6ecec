package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/x/ansi"
)

func TestTerminalRendererRendersText(t *testing.T) {
	tr := NewTerminalRenderer(styles.NoTTYStyleConfig, true)
	out := ansi.Strip(tr.RenderWidth("# Title\n\nsome **bold** text", 40))
	if !strings.Contains(out, "Title") || !strings.Contains(out, "bold") {
		t.Fatalf("unexpected render output %q", out)
	}
	if strings.Contains(out, "**") {
		t.Fatalf("emphasis markers should be consumed: %q", out)
	}
}

func TestTerminalRendererCachesByWidth(t *testing.T) {
	tr := NewTerminalRenderer(styles.NoTTYStyleConfig, false)
	tr.RenderWidth("a", 30)
	tr.RenderWidth("b", 30)
	tr.RenderWidth("c", 50)
	if len(tr.cache) != 2 {
		t.Fatalf("cache size=%d, want 2", len(tr.cache))
	}
}

func TestTerminalRendererEmpty(t *testing.T) {
	tr := NewTerminalRenderer(styles.NoTTYStyleConfig, true)
	if out := tr.Width(40).Render(""); out != "" {
		t.Fatalf("Render(\"\")=%q, want empty", out)
	}
}
