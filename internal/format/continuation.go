package format

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/samsaffron/mdpad/internal/textbuf"
)

// space matches what browsers treat as whitespace: ASCII space characters,
// Unicode space separators, the byte order mark and line/paragraph separators.
const space = `[\s\p{Zs}\x{feff}\x{2028}\x{2029}]`

var (
	numberedLineRe = regexp.MustCompile(`^(` + space + `*)(\d+)\.` + space)
	bulletLineRe   = regexp.MustCompile(`^(` + space + `*)([-*+])` + space)
)

// Action is the decision taken on a line break.
type Action int

const (
	// PassThrough leaves the line break to the default behavior.
	PassThrough Action = iota
	// BreakList ends the list: the marker-only line stays, a plain '\n' is inserted.
	BreakList
	// ContinueNumbered starts the next numbered item.
	ContinueNumbered
	// ContinueBullet starts the next bullet item with the same bullet character.
	ContinueBullet
)

func (a Action) String() string {
	switch a {
	case BreakList:
		return "break"
	case ContinueNumbered:
		return "continue-numbered"
	case ContinueBullet:
		return "continue-bullet"
	}
	return "pass-through"
}

// ListMatch decomposes a list line.
type ListMatch struct {
	Indent string
	// Marker is the bullet character or the number followed by '.'.
	Marker string
	// Digits is the item number as written, set for numbered items.
	Digits   string
	Numbered bool
	// Remainder is the text following the marker and its separating space.
	Remainder string
	// matched is the full prefix the pattern consumed (indent, marker, space).
	matched string
}

// MarkerOnly reports whether the line holds nothing but the marker.
func (m ListMatch) MarkerOnly(line string) bool {
	return strings.TrimFunc(line, isListSpace) == strings.TrimFunc(m.matched, isListSpace)
}

func isListSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Zs, r) || r == '\ufeff'
}

// ParseListLine matches line against the numbered pattern first and the bullet
// pattern second.
func ParseListLine(line string) (ListMatch, bool) {
	if sm := numberedLineRe.FindStringSubmatch(line); sm != nil {
		return ListMatch{
			Indent:    sm[1],
			Marker:    sm[2] + ".",
			Digits:    sm[2],
			Numbered:  true,
			Remainder: line[len(sm[0]):],
			matched:   sm[0],
		}, true
	}
	if sm := bulletLineRe.FindStringSubmatch(line); sm != nil {
		return ListMatch{
			Indent:    sm[1],
			Marker:    sm[2],
			Remainder: line[len(sm[0]):],
			matched:   sm[0],
		}, true
	}
	return ListMatch{}, false
}

// Continuation is the outcome of a line break inside the buffer.
type Continuation struct {
	Action Action
	// Insert is the text to insert at the caret. Empty for PassThrough.
	Insert string
}

// Handled reports whether the default line break must be suppressed.
func (c Continuation) Handled() bool {
	return c.Action != PassThrough
}

// Continue decides what a line break at caret does. Only the part of the
// current line before the caret is inspected, and the decision depends on
// nothing but the buffer contents.
func Continue(text string, caret int) Continuation {
	runes := []rune(text)
	if caret < 0 {
		caret = 0
	}
	if caret > len(runes) {
		caret = len(runes)
	}
	line := string(runes[textbuf.LineStart(runes, caret):caret])

	m, ok := ParseListLine(line)
	if !ok {
		return Continuation{Action: PassThrough}
	}
	if m.MarkerOnly(line) {
		return Continuation{Action: BreakList, Insert: "\n"}
	}
	if m.Numbered {
		return Continuation{
			Action: ContinueNumbered,
			Insert: "\n" + m.Indent + NextNumber(m.Digits) + ". ",
		}
	}
	return Continuation{
		Action: ContinueBullet,
		Insert: "\n" + m.Indent + m.Marker + " ",
	}
}

// NextNumber returns the decimal number one greater than digits, without
// leading zeros. It works on the digit string so numbers of any length
// continue.
func NextNumber(digits string) string {
	d := []byte(strings.TrimLeft(digits, "0"))
	i := len(d) - 1
	for i >= 0 && d[i] == '9' {
		d[i] = '0'
		i--
	}
	if i < 0 {
		return "1" + string(d)
	}
	d[i]++
	return string(d)
}

// ApplyNewline performs a line break at the selection. A range is replaced, as
// a native line break would, and continuation is evaluated at its start. The
// returned Continuation tells whether list handling kicked in; for PassThrough
// a plain '\n' is inserted.
func ApplyNewline(text string, sel textbuf.Selection) (string, textbuf.Selection, Continuation) {
	runes := []rune(text)
	sel = sel.Clamp(len(runes))

	c := Continue(text, sel.Start)
	insert := c.Insert
	if !c.Handled() {
		insert = "\n"
	}
	out := splice(runes, sel.Start, sel.End, insert)
	return out, textbuf.Caret(sel.Start + runeLen(insert)), c
}
