package render

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
)

// TerminalRenderer renders markdown for the preview pane with glamour.
// Renderers are cached by wrap width since building one is expensive.
type TerminalRenderer struct {
	style         ansi.StyleConfig
	preserveLines bool

	mu    sync.Mutex
	cache map[int]*glamour.TermRenderer
}

// NewTerminalRenderer returns a renderer using style. preserveLines keeps
// single newlines as line breaks, matching the HTML hard-wrap behavior.
func NewTerminalRenderer(style ansi.StyleConfig, preserveLines bool) *TerminalRenderer {
	margin := uint(0)
	style.Document.Margin = &margin
	style.Document.BlockPrefix = ""
	style.Document.BlockSuffix = ""
	style.CodeBlock.Margin = &margin

	return &TerminalRenderer{
		style:         style,
		preserveLines: preserveLines,
		cache:         make(map[int]*glamour.TermRenderer),
	}
}

func (t *TerminalRenderer) renderer(width int) (*glamour.TermRenderer, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if r, ok := t.cache[width]; ok {
		return r, nil
	}
	opts := []glamour.TermRendererOption{
		glamour.WithStyles(t.style),
		glamour.WithWordWrap(width),
	}
	if t.preserveLines {
		opts = append(opts, glamour.WithPreservedNewLines())
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	t.cache[width] = r
	return r, nil
}

// RenderWidth renders text wrapped at width. On error it returns text unchanged.
func (t *TerminalRenderer) RenderWidth(text string, width int) string {
	if text == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}
	r, err := t.renderer(width)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(out)
}

// Width returns a Renderer bound to a fixed wrap width.
func (t *TerminalRenderer) Width(width int) Renderer {
	return Func(func(text string) string {
		return t.RenderWidth(text, width)
	})
}
