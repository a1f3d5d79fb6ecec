package ui

import "github.com/samsaffron/mdpad/internal/render"

// NewPreviewRenderer returns a glamour renderer styled with theme.
// Single newlines are kept, matching the hard-wrapped HTML preview.
func NewPreviewRenderer(theme *Theme) *render.TerminalRenderer {
	return render.NewTerminalRenderer(GlamourStyleFromTheme(theme), true)
}
