package textbuf

import "testing"

func TestSelectionClamp(t *testing.T) {
	tests := []struct {
		name string
		in   Selection
		n    int
		want Selection
	}{
		{"inside", Selection{1, 3}, 5, Selection{1, 3}},
		{"reversed", Selection{4, 2}, 5, Selection{2, 4}},
		{"negative start", Selection{-3, 2}, 5, Selection{0, 2}},
		{"past end", Selection{2, 99}, 5, Selection{2, 5}},
		{"empty buffer", Selection{3, 3}, 0, Selection{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Clamp(tt.n); got != tt.want {
				t.Fatalf("Clamp(%d)=%+v, want %+v", tt.n, got, tt.want)
			}
		})
	}
}

func TestBufferReplaceUsesRuneOffsets(t *testing.T) {
	b := New("héllo wörld")
	caret := b.Replace(6, 11, "there")
	if got := b.Text(); got != "héllo there" {
		t.Fatalf("text=%q, want %q", got, "héllo there")
	}
	if caret != 11 {
		t.Fatalf("caret=%d, want 11", caret)
	}
	if s := b.Selection(); s != Caret(11) {
		t.Fatalf("selection=%+v, want caret at 11", s)
	}
}

func TestBufferSelectionNeverEscapes(t *testing.T) {
	b := New("abc")
	b.SetSelection(Selection{Start: -1, End: 10})
	if s := b.Selection(); s != (Selection{0, 3}) {
		t.Fatalf("selection=%+v, want {0 3}", s)
	}
	b.Replace(0, 3, "")
	if s := b.Selection(); s != Caret(0) {
		t.Fatalf("selection after delete=%+v, want caret 0", s)
	}
}

func TestBufferLineHelpers(t *testing.T) {
	b := New("one\ntwo\nthree")
	if got := b.LineStart(5); got != 4 {
		t.Errorf("LineStart(5)=%d, want 4", got)
	}
	if got := b.LineEnd(5); got != 7 {
		t.Errorf("LineEnd(5)=%d, want 7", got)
	}
	if got := b.LineAt(9); got != "three" {
		t.Errorf("LineAt(9)=%q, want %q", got, "three")
	}
	if got := b.LineStart(0); got != 0 {
		t.Errorf("LineStart(0)=%d, want 0", got)
	}
	// A caret sitting right after a newline belongs to the next line.
	if got := b.LineStart(4); got != 4 {
		t.Errorf("LineStart(4)=%d, want 4", got)
	}
}

func TestBufferPositionRoundTrip(t *testing.T) {
	b := New("ab\ncde\n\nf")
	for pos := 0; pos <= b.Len(); pos++ {
		row, col := b.Position(pos)
		if got := b.Offset(row, col); got != pos {
			t.Fatalf("Offset(Position(%d))=%d (row=%d col=%d)", pos, got, row, col)
		}
	}
	if got := b.Offset(1, 99); got != 6 {
		t.Fatalf("Offset clamps column: got %d, want 6", got)
	}
	if got := b.Offset(42, 0); got != b.Len() {
		t.Fatalf("Offset clamps row: got %d, want %d", got, b.Len())
	}
}

func TestBufferVerticalMotionKeepsGoalColumn(t *testing.T) {
	b := New("abcdef\nxy\nlonger line")
	b.SetCaret(5)
	b.MoveDown(false)
	if got := b.Head(); got != 9 {
		t.Fatalf("after down head=%d, want 9 (end of short line)", got)
	}
	b.MoveDown(false)
	if row, col := b.Position(b.Head()); row != 2 || col != 5 {
		t.Fatalf("after second down row=%d col=%d, want 2,5", row, col)
	}
	b.MoveUp(false)
	b.MoveUp(false)
	if got := b.Head(); got != 5 {
		t.Fatalf("back up head=%d, want 5", got)
	}
}

func selectedText(b *Buffer) string {
	s := b.Selection()
	return string([]rune(b.Text())[s.Start:s.End])
}

func TestBufferExtendSelection(t *testing.T) {
	b := New("hello world")
	b.SetCaret(0)
	b.MoveWordRight(true)
	if got := selectedText(b); got != "hello" {
		t.Fatalf("selected=%q, want %q", got, "hello")
	}
	b.MoveRight(false)
	if s := b.Selection(); s != Caret(5) {
		t.Fatalf("collapse right=%+v, want caret 5", s)
	}
	b.MoveLineEnd(true)
	b.MoveWordLeft(true)
	if got := selectedText(b); got != " " {
		t.Fatalf("selected=%q, want single space", got)
	}
}

func TestBufferDelete(t *testing.T) {
	b := New("abc")
	b.SetCaret(0)
	if b.DeleteBackward() {
		t.Fatal("DeleteBackward at start should not change buffer")
	}
	if !b.DeleteForward() || b.Text() != "bc" {
		t.Fatalf("DeleteForward text=%q, want %q", b.Text(), "bc")
	}
	b.SelectAll()
	if !b.DeleteBackward() || b.Text() != "" {
		t.Fatalf("DeleteBackward over selection text=%q, want empty", b.Text())
	}
	if b.DeleteForward() {
		t.Fatal("DeleteForward on empty buffer should not change buffer")
	}
}
