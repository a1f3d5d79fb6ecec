// Package textbuf holds the editable markdown text together with its selection.
//
// All offsets are zero-based rune offsets into the text. A Buffer never lets its
// selection escape [0, Len()].
package textbuf

import "strings"

// Selection is a half-open range [Start, End) of rune offsets.
// Start == End describes a caret.
type Selection struct {
	Start int
	End   int
}

// Caret returns an empty selection at pos.
func Caret(pos int) Selection {
	return Selection{Start: pos, End: pos}
}

// IsEmpty reports whether the selection is a caret.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Len returns the number of selected runes.
func (s Selection) Len() int {
	return s.End - s.Start
}

// Normalize orders Start and End.
func (s Selection) Normalize() Selection {
	if s.Start <= s.End {
		return s
	}
	return Selection{Start: s.End, End: s.Start}
}

// Clamp normalizes s and clamps both ends into [0, n].
func (s Selection) Clamp(n int) Selection {
	s = s.Normalize()
	return Selection{Start: clampInt(s.Start, 0, n), End: clampInt(s.End, 0, n)}
}

// Buffer is the editable text plus an anchored selection.
//
// The anchor is where a selection began; the head is where the caret sits.
// Selection() always reports them in document order.
type Buffer struct {
	runes  []rune
	anchor int
	head   int

	// goalCol is the column vertical motion tries to return to.
	goalCol int
}

// New returns a buffer holding text with the caret at the end.
func New(text string) *Buffer {
	b := &Buffer{runes: []rune(text)}
	b.anchor = len(b.runes)
	b.head = len(b.runes)
	b.goalCol = -1
	return b
}

// Text returns the whole buffer.
func (b *Buffer) Text() string {
	return string(b.runes)
}

// Len returns the buffer length in runes.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// Selection returns the current selection in document order.
func (b *Buffer) Selection() Selection {
	return Selection{Start: b.anchor, End: b.head}.Normalize()
}

// Head returns the caret offset (the moving end of the selection).
func (b *Buffer) Head() int {
	return b.head
}

// SetSelection replaces the selection. The caret is placed at End.
func (b *Buffer) SetSelection(s Selection) {
	s = s.Clamp(len(b.runes))
	b.anchor = s.Start
	b.head = s.End
	b.goalCol = -1
}

// SetCaret collapses the selection to pos.
func (b *Buffer) SetCaret(pos int) {
	b.SetSelection(Caret(pos))
}

// SetText replaces the whole buffer and its selection.
func (b *Buffer) SetText(text string, sel Selection) {
	b.runes = []rune(text)
	b.SetSelection(sel)
}

// Replace substitutes [start, end) with text and puts the caret after the
// inserted text. It returns the new caret offset.
func (b *Buffer) Replace(start, end int, text string) int {
	s := Selection{Start: start, End: end}.Clamp(len(b.runes))
	ins := []rune(text)

	out := make([]rune, 0, len(b.runes)-s.Len()+len(ins))
	out = append(out, b.runes[:s.Start]...)
	out = append(out, ins...)
	out = append(out, b.runes[s.End:]...)
	b.runes = out

	caret := s.Start + len(ins)
	b.SetCaret(caret)
	return caret
}

// ReplaceSelection substitutes the selection with text.
func (b *Buffer) ReplaceSelection(text string) int {
	s := b.Selection()
	return b.Replace(s.Start, s.End, text)
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.runes = b.runes[:0]
	b.SetCaret(0)
}

// Lines splits the buffer on '\n'. An empty buffer has one empty line.
func (b *Buffer) Lines() []string {
	return strings.Split(string(b.runes), "\n")
}

// LineStart returns the offset of the first rune of the line containing pos.
func (b *Buffer) LineStart(pos int) int {
	return LineStart(b.runes, pos)
}

// LineEnd returns the offset of the '\n' ending the line containing pos,
// or Len() on the last line.
func (b *Buffer) LineEnd(pos int) int {
	return LineEnd(b.runes, pos)
}

// LineAt returns the full line containing pos.
func (b *Buffer) LineAt(pos int) string {
	return string(b.runes[b.LineStart(pos):b.LineEnd(pos)])
}

// Position converts an offset to a (row, col) pair in runes.
func (b *Buffer) Position(pos int) (row, col int) {
	pos = clampInt(pos, 0, len(b.runes))
	start := 0
	for i := 0; i < pos; i++ {
		if b.runes[i] == '\n' {
			row++
			start = i + 1
		}
	}
	return row, pos - start
}

// Offset converts a (row, col) pair to an offset. Out-of-range rows and columns
// are clamped to the nearest valid position.
func (b *Buffer) Offset(row, col int) int {
	if row < 0 {
		return 0
	}
	start := 0
	for r := 0; r < row; r++ {
		next := indexRune(b.runes, '\n', start)
		if next < 0 {
			return len(b.runes)
		}
		start = next + 1
	}
	end := LineEnd(b.runes, start)
	return start + clampInt(col, 0, end-start)
}

// LineStart returns the offset just after the nearest '\n' before pos, or 0.
func LineStart(runes []rune, pos int) int {
	pos = clampInt(pos, 0, len(runes))
	for i := pos - 1; i >= 0; i-- {
		if runes[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// LineEnd returns the offset of the nearest '\n' at or after pos, or len(runes).
func LineEnd(runes []rune, pos int) int {
	pos = clampInt(pos, 0, len(runes))
	if i := indexRune(runes, '\n', pos); i >= 0 {
		return i
	}
	return len(runes)
}

func indexRune(runes []rune, r rune, from int) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == r {
			return i
		}
	}
	return -1
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
