// Package format implements the cursor-aware markdown transformations behind
// the toolbar: headers, inline wraps and lists, plus list continuation on enter.
//
// Every function is pure: it takes the buffer text and a selection (rune
// offsets) and returns the new text with the selection the caller should
// install. Offsets outside the text are clamped.
package format

import (
	"fmt"

	"github.com/samsaffron/mdpad/internal/textbuf"
)

// Kind tags a formatting intent.
type Kind int

const (
	KindHeader Kind = iota
	KindWrap
	KindList
)

// ListKind selects the list marker style.
type ListKind int

const (
	Bullet ListKind = iota
	Numbered
)

func (k ListKind) String() string {
	if k == Numbered {
		return "numbered"
	}
	return "bullet"
}

const (
	MinHeaderLevel = 1
	MaxHeaderLevel = 4
)

// Intent is a tagged formatting request. Build one with Header, Wrap or List.
type Intent struct {
	Kind   Kind
	Level  int
	Prefix string
	Suffix string
	List   ListKind
}

// Header returns a header intent with level clamped to 1..4.
func Header(level int) Intent {
	if level < MinHeaderLevel {
		level = MinHeaderLevel
	}
	if level > MaxHeaderLevel {
		level = MaxHeaderLevel
	}
	return Intent{Kind: KindHeader, Level: level}
}

// Wrap returns an intent that surrounds the selection with prefix and suffix.
func Wrap(prefix, suffix string) Intent {
	return Intent{Kind: KindWrap, Prefix: prefix, Suffix: suffix}
}

// List returns a list intent.
func List(kind ListKind) Intent {
	return Intent{Kind: KindList, List: kind}
}

// Inline wrap pairs offered by the toolbar.
var (
	Bold          = Wrap("**", "**")
	Italic        = Wrap("*", "*")
	Strikethrough = Wrap("~~", "~~")
	Code          = Wrap("`", "`")
)

func (i Intent) String() string {
	switch i.Kind {
	case KindHeader:
		return fmt.Sprintf("header(%d)", i.Level)
	case KindWrap:
		return fmt.Sprintf("wrap(%q, %q)", i.Prefix, i.Suffix)
	case KindList:
		return fmt.Sprintf("list(%s)", i.List)
	}
	return "unknown"
}

// Apply dispatches intent to the matching transformation.
func Apply(text string, sel textbuf.Selection, intent Intent) (string, textbuf.Selection) {
	switch intent.Kind {
	case KindHeader:
		return ApplyHeader(text, sel, intent.Level)
	case KindWrap:
		return ApplyWrap(text, sel, intent.Prefix, intent.Suffix)
	case KindList:
		return ApplyList(text, sel, intent.List)
	}
	return text, sel
}

// splice replaces runes[start:end] with ins.
func splice(runes []rune, start, end int, ins string) string {
	out := make([]rune, 0, len(runes)+len(ins))
	out = append(out, runes[:start]...)
	out = append(out, []rune(ins)...)
	out = append(out, runes[end:]...)
	return string(out)
}

func runeLen(s string) int {
	return len([]rune(s))
}
