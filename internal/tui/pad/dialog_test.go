package pad

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestLinkDialogCloseResetsTransientState(t *testing.T) {
	d := NewLinkDialog(nil)
	d.Open()
	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("http://a")})
	d.NextField()
	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("A")})

	url, text := d.Values()
	if url != "http://a" || text != "A" {
		t.Fatalf("values url=%q text=%q", url, text)
	}

	d.Close()
	if d.IsOpen() {
		t.Fatal("expected dialog to be closed")
	}
	if url, text := d.Values(); url != "" || text != "" {
		t.Fatalf("expected fields to be cleared, got url=%q text=%q", url, text)
	}
	if d.focus != fieldURL {
		t.Fatalf("expected focus reset to URL field, got %d", d.focus)
	}
}

func TestPaletteNavigationClamps(t *testing.T) {
	p := NewPalette(AllCommands(DefaultKeyMap()), nil)
	p.Open()

	p.MoveUp()
	if sel := p.Selected(); sel == nil || sel.Name != "h1" {
		t.Fatalf("expected first command selected, got %+v", sel)
	}
	for i := 0; i < 100; i++ {
		p.MoveDown()
	}
	if sel := p.Selected(); sel == nil || sel.Name != cmdQuit {
		t.Fatalf("expected last command selected, got %+v", sel)
	}

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zzzz")})
	if p.Selected() != nil {
		t.Fatal("expected no selection for unmatched query")
	}
	if p.View() == "" {
		t.Fatal("expected palette view")
	}

	p.Close()
	if p.IsOpen() || len(p.filtered) != len(p.commands) {
		t.Fatal("close should reset the filter")
	}
}
