package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// chromaStyles maps theme presets to the closest chroma style
var chromaStyles = map[string]string{
	"gruvbox":   "gruvbox",
	"dracula":   "dracula",
	"nord":      "nord",
	"solarized": "solarized-dark",
	"monokai":   "monokai",
	"classic":   "monokai",
}

// ChromaStyle returns the chroma style name used for a theme preset.
func ChromaStyle(preset string) string {
	if name, ok := chromaStyles[preset]; ok {
		return name
	}
	return "monokai"
}

// Highlighter colors source text for the terminal
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// NewHighlighter creates a highlighter for a language name such as "html".
// Returns nil if the language is not recognized.
func NewHighlighter(language, styleName string) *Highlighter {
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	return &Highlighter{
		lexer: lexer,
		style: style,
	}
}

// Highlight colors text. Line breaks are kept and every colored run is
// closed before a newline, so the result can be wrapped line by line.
// A nil Highlighter returns text unchanged.
func (h *Highlighter) Highlight(text string) string {
	if h == nil || text == "" {
		return text
	}

	iterator, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return text
	}

	var buf strings.Builder
	formatter := &noBgFormatter{style: h.style}
	if err := formatter.Format(&buf, iterator); err != nil {
		return text
	}
	return buf.String()
}

// noBgFormatter is a Chroma formatter that applies only foreground colors
type noBgFormatter struct {
	style *chroma.Style
}

func (f *noBgFormatter) Format(w io.Writer, iterator chroma.Iterator) error {
	for token := iterator(); token != chroma.EOF; token = iterator() {
		sgr := f.sgr(token.Type)
		for i, part := range strings.Split(token.Value, "\n") {
			if i > 0 {
				fmt.Fprint(w, "\n")
			}
			if part == "" {
				continue
			}
			if sgr == "" {
				fmt.Fprint(w, part)
				continue
			}
			fmt.Fprintf(w, "\x1b[%sm%s\x1b[0m", sgr, part)
		}
	}
	return nil
}

func (f *noBgFormatter) sgr(t chroma.TokenType) string {
	entry := f.style.Get(t)

	var codes []string
	if entry.Colour.IsSet() {
		codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
	}
	if entry.Bold == chroma.Yes {
		codes = append(codes, "1")
	}
	if entry.Italic == chroma.Yes {
		codes = append(codes, "3")
	}
	if entry.Underline == chroma.Yes {
		codes = append(codes, "4")
	}
	return strings.Join(codes, ";")
}
