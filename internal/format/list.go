package format

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/samsaffron/mdpad/internal/textbuf"
)

// Fresh item markers inserted at a caret.
const (
	BulletMarker   = "- "
	NumberedMarker = "1. "
)

// ApplyList turns text into a list.
//
// At a caret a single fresh marker is inserted and the caret moves past it.
// A selection is rewritten line by line: every non-blank line keeps its
// indentation and gets a marker, every line is terminated with '\n', and the
// new selection spans the whole rewritten block. Numbered items count from 1
// and restart at 1 after each blank line; bullets have nothing to restart.
func ApplyList(text string, sel textbuf.Selection, kind ListKind) (string, textbuf.Selection) {
	runes := []rune(text)
	sel = sel.Clamp(len(runes))

	if sel.IsEmpty() {
		marker := BulletMarker
		if kind == Numbered {
			marker = NumberedMarker
		}
		out := splice(runes, sel.Start, sel.End, marker)
		return out, textbuf.Caret(sel.Start + runeLen(marker))
	}

	block := FormatListBlock(string(runes[sel.Start:sel.End]), kind)
	out := splice(runes, sel.Start, sel.End, block)
	return out, textbuf.Selection{Start: sel.Start, End: sel.Start + runeLen(block)}
}

// FormatListBlock rewrites each line of block as a list item. See ApplyList.
func FormatListBlock(block string, kind ListKind) string {
	var b strings.Builder
	number := 1
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) == "" {
			b.WriteByte('\n')
			number = 1
			continue
		}
		body := strings.TrimLeftFunc(line, unicode.IsSpace)
		indent := line[:len(line)-len(body)]

		b.WriteString(indent)
		if kind == Numbered {
			b.WriteString(strconv.Itoa(number))
			b.WriteString(". ")
			number++
		} else {
			b.WriteString(BulletMarker)
		}
		b.WriteString(body)
		b.WriteByte('\n')
	}
	return b.String()
}
