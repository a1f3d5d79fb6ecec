package textbuf

import "unicode"

// moveTo places the head at pos. Without extend the selection collapses.
func (b *Buffer) moveTo(pos int, extend bool) {
	pos = clampInt(pos, 0, len(b.runes))
	b.head = pos
	if !extend {
		b.anchor = pos
	}
}

// MoveLeft moves the caret one rune left. A non-empty selection collapses to its
// start when not extending.
func (b *Buffer) MoveLeft(extend bool) {
	b.goalCol = -1
	if !extend {
		if s := b.Selection(); !s.IsEmpty() {
			b.moveTo(s.Start, false)
			return
		}
	}
	b.moveTo(b.head-1, extend)
}

// MoveRight moves the caret one rune right. A non-empty selection collapses to
// its end when not extending.
func (b *Buffer) MoveRight(extend bool) {
	b.goalCol = -1
	if !extend {
		if s := b.Selection(); !s.IsEmpty() {
			b.moveTo(s.End, false)
			return
		}
	}
	b.moveTo(b.head+1, extend)
}

// MoveUp moves the caret to the previous line, keeping the goal column.
func (b *Buffer) MoveUp(extend bool) {
	row, col := b.Position(b.head)
	if b.goalCol < 0 {
		b.goalCol = col
	}
	if row == 0 {
		b.moveTo(0, extend)
		return
	}
	b.moveTo(b.Offset(row-1, b.goalCol), extend)
}

// MoveDown moves the caret to the next line, keeping the goal column.
func (b *Buffer) MoveDown(extend bool) {
	row, col := b.Position(b.head)
	if b.goalCol < 0 {
		b.goalCol = col
	}
	if b.LineEnd(b.head) == len(b.runes) {
		b.moveTo(len(b.runes), extend)
		return
	}
	b.moveTo(b.Offset(row+1, b.goalCol), extend)
}

// MoveLineStart moves the caret to the start of its line.
func (b *Buffer) MoveLineStart(extend bool) {
	b.goalCol = -1
	b.moveTo(b.LineStart(b.head), extend)
}

// MoveLineEnd moves the caret to the end of its line.
func (b *Buffer) MoveLineEnd(extend bool) {
	b.goalCol = -1
	b.moveTo(b.LineEnd(b.head), extend)
}

// MoveWordLeft moves to the start of the previous word.
func (b *Buffer) MoveWordLeft(extend bool) {
	b.goalCol = -1
	i := b.head
	for i > 0 && !isWordRune(b.runes[i-1]) {
		i--
	}
	for i > 0 && isWordRune(b.runes[i-1]) {
		i--
	}
	b.moveTo(i, extend)
}

// MoveWordRight moves past the end of the next word.
func (b *Buffer) MoveWordRight(extend bool) {
	b.goalCol = -1
	i := b.head
	for i < len(b.runes) && !isWordRune(b.runes[i]) {
		i++
	}
	for i < len(b.runes) && isWordRune(b.runes[i]) {
		i++
	}
	b.moveTo(i, extend)
}

// MoveDocStart moves the caret to offset 0.
func (b *Buffer) MoveDocStart(extend bool) {
	b.goalCol = -1
	b.moveTo(0, extend)
}

// MoveDocEnd moves the caret to the end of the buffer.
func (b *Buffer) MoveDocEnd(extend bool) {
	b.goalCol = -1
	b.moveTo(len(b.runes), extend)
}

// SelectAll selects the whole buffer.
func (b *Buffer) SelectAll() {
	b.anchor = 0
	b.head = len(b.runes)
	b.goalCol = -1
}

// DeleteBackward removes the selection, or the rune before the caret.
// It reports whether the buffer changed.
func (b *Buffer) DeleteBackward() bool {
	s := b.Selection()
	if s.IsEmpty() {
		if s.Start == 0 {
			return false
		}
		s.Start--
	}
	b.Replace(s.Start, s.End, "")
	return true
}

// DeleteForward removes the selection, or the rune after the caret.
// It reports whether the buffer changed.
func (b *Buffer) DeleteForward() bool {
	s := b.Selection()
	if s.IsEmpty() {
		if s.End == len(b.runes) {
			return false
		}
		s.End++
	}
	b.Replace(s.Start, s.End, "")
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
