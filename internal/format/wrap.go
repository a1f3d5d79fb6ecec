package format

import "github.com/samsaffron/mdpad/internal/textbuf"

// ApplyWrap surrounds the selection with prefix and suffix. The returned
// selection covers the original inner text, so an empty selection leaves the
// caret between the markers ready for typing.
func ApplyWrap(text string, sel textbuf.Selection, prefix, suffix string) (string, textbuf.Selection) {
	runes := []rune(text)
	sel = sel.Clamp(len(runes))
	selected := string(runes[sel.Start:sel.End])

	out := splice(runes, sel.Start, sel.End, prefix+selected+suffix)
	n := runeLen(prefix)
	return out, textbuf.Selection{Start: sel.Start + n, End: sel.End + n}
}
