// Package render turns buffer text into preview output: HTML for export and
// ANSI-styled text for the terminal preview pane.
package render

// Renderer converts markdown text into its preview form. Implementations
// never fail; on an internal error they degrade to an escaped copy of text.
type Renderer interface {
	Render(text string) string
}

// Options configures the HTML renderer.
type Options struct {
	// HardWraps turns a single newline inside a paragraph into <br>.
	HardWraps bool
	// GFM enables tables, strikethrough, autolinks and task lists.
	GFM bool
	// UnsafeHTML lets raw HTML in the source through to the output.
	UnsafeHTML bool
	// Sanitize runs the output through a user-content policy.
	Sanitize bool
}

// DefaultOptions mirrors the browser preview: GFM with line breaks.
func DefaultOptions() Options {
	return Options{
		HardWraps:  true,
		GFM:        true,
		UnsafeHTML: true,
		Sanitize:   true,
	}
}

// Func adapts a plain function to Renderer.
type Func func(text string) string

func (f Func) Render(text string) string {
	return f(text)
}
