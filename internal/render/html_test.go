package render

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// tags returns the element names in document order.
func tags(t *testing.T, fragment string) []string {
	t.Helper()
	z := html.NewTokenizer(strings.NewReader(fragment))
	var out []string
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return out
		}
		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			tok := z.Token()
			out = append(out, tok.Data)
		}
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestHTMLRendererHardWraps(t *testing.T) {
	r := NewHTMLRenderer(DefaultOptions())
	out := r.Render("first line\nsecond line")
	if !contains(tags(t, out), "br") {
		t.Fatalf("expected <br> for single newline, got %q", out)
	}

	r = NewHTMLRenderer(Options{GFM: true})
	out = r.Render("first line\nsecond line")
	if contains(tags(t, out), "br") {
		t.Fatalf("expected no <br> without hard wraps, got %q", out)
	}
}

func TestHTMLRendererGFM(t *testing.T) {
	r := NewHTMLRenderer(DefaultOptions())

	tests := []struct {
		name string
		in   string
		tag  string
	}{
		{"strikethrough", "~~gone~~", "del"},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |", "table"},
		{"header", "## title", "h2"},
		{"bullet list", "- one\n- two", "ul"},
		{"numbered list", "1. one\n2. two", "ol"},
		{"link", "[text](https://example.com)", "a"},
		{"code", "`x`", "code"},
		{"task list", "- [x] done", "input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Render(tt.in)
			if !contains(tags(t, out), tt.tag) {
				t.Fatalf("expected <%s> in %q", tt.tag, out)
			}
		})
	}
}

func TestHTMLRendererSanitizes(t *testing.T) {
	r := NewHTMLRenderer(DefaultOptions())
	out := r.Render("hello <script>alert(1)</script> <b>bold</b>")
	if strings.Contains(out, "<script>") {
		t.Fatalf("script survived sanitizing: %q", out)
	}
	if !strings.Contains(out, "<b>bold</b>") {
		t.Fatalf("expected inline raw HTML to pass through: %q", out)
	}
}

func TestHTMLRendererRawHTMLOmittedWhenUnsafeOff(t *testing.T) {
	r := NewHTMLRenderer(Options{GFM: true})
	out := r.Render("<b>bold</b>")
	if strings.Contains(out, "<b>") {
		t.Fatalf("expected raw HTML to be omitted, got %q", out)
	}
}

func TestHTMLRendererEmpty(t *testing.T) {
	r := NewHTMLRenderer(DefaultOptions())
	if out := r.Render(""); out != "" {
		t.Fatalf("Render(\"\")=%q, want empty", out)
	}
	if out := r.Render("  \n\n"); out != "" {
		t.Fatalf("Render(blank)=%q, want empty", out)
	}
}

func TestFuncAdapter(t *testing.T) {
	var r Renderer = Func(strings.ToUpper)
	if got := r.Render("abc"); got != "ABC" {
		t.Fatalf("Render=%q, want ABC", got)
	}
}
