package render

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

// HTMLRenderer renders markdown to an HTML fragment with goldmark.
type HTMLRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewHTMLRenderer builds a goldmark instance for opts. The instance is safe to
// share; goldmark keeps no per-call state.
func NewHTMLRenderer(opts Options) *HTMLRenderer {
	var exts []goldmark.Extender
	if opts.GFM {
		exts = append(exts, extension.GFM)
	} else {
		exts = append(exts, extension.Strikethrough)
	}

	var rendererOpts []renderer.Option
	if opts.HardWraps {
		rendererOpts = append(rendererOpts, gmhtml.WithHardWraps())
	}
	if opts.UnsafeHTML {
		rendererOpts = append(rendererOpts, gmhtml.WithUnsafe())
	}

	r := &HTMLRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(exts...),
			goldmark.WithRendererOptions(rendererOpts...),
		),
	}
	if opts.Sanitize {
		r.policy = previewPolicy()
	}
	return r
}

// previewPolicy is the UGC policy plus the disabled checkboxes GFM task lists emit.
func previewPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("type").Matching(bluemonday.SpaceSeparatedTokens).OnElements("input")
	p.AllowAttrs("checked", "disabled").OnElements("input")
	return p
}

// Render converts text to HTML. On a conversion error it returns the text
// HTML-escaped inside a <pre> block.
func (r *HTMLRenderer) Render(text string) string {
	out, err := r.RenderWithError(text)
	if err != nil {
		return "<pre>" + html.EscapeString(text) + "</pre>"
	}
	return out
}

// RenderWithError converts text to HTML and reports conversion errors.
func (r *HTMLRenderer) RenderWithError(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	if r.policy != nil {
		return r.policy.Sanitize(buf.String()), nil
	}
	return buf.String(), nil
}
