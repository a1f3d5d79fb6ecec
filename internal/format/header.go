package format

import (
	"strings"

	"github.com/samsaffron/mdpad/internal/textbuf"
)

// ApplyHeader inserts a level-N header prefix ("## ").
//
// With a caret (or a whitespace-only selection) the prefix goes to the start of
// the caret's line and the caret lands right after it. Otherwise the prefix is
// placed directly before the selected text, existing prefixes are left alone,
// and the selection keeps covering the original text.
func ApplyHeader(text string, sel textbuf.Selection, level int) (string, textbuf.Selection) {
	runes := []rune(text)
	sel = sel.Clamp(len(runes))
	prefix := strings.Repeat("#", level) + " "
	n := runeLen(prefix)

	selected := string(runes[sel.Start:sel.End])
	if strings.TrimSpace(selected) == "" {
		lineStart := textbuf.LineStart(runes, sel.Start)
		out := splice(runes, lineStart, lineStart, prefix)
		return out, textbuf.Caret(lineStart + n)
	}

	out := splice(runes, sel.Start, sel.End, prefix+selected)
	return out, textbuf.Selection{Start: sel.Start + n, End: sel.Start + n + sel.Len()}
}
