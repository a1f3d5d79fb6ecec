package pad

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keybindings for the editor TUI
type KeyMap struct {
	// Global
	Quit     key.Binding
	Commands key.Binding
	Dismiss  key.Binding

	// Toolbar
	Header1       key.Binding
	Header2       key.Binding
	Header3       key.Binding
	Header4       key.Binding
	Bold          key.Binding
	Italic        key.Binding
	Strikethrough key.Binding
	Code          key.Binding
	BulletList    key.Binding
	NumberedList  key.Binding
	Link          key.Binding
	CopyRaw       key.Binding
	CopyHTML      key.Binding
	Clear         key.Binding
	TogglePreview key.Binding

	// Editing
	Newline         key.Binding
	Tab             key.Binding
	DeleteBackward  key.Binding
	DeleteForward   key.Binding
	Left            key.Binding
	Right           key.Binding
	Up              key.Binding
	Down            key.Binding
	WordLeft        key.Binding
	WordRight       key.Binding
	LineStart       key.Binding
	LineEnd         key.Binding
	DocStart        key.Binding
	DocEnd          key.Binding
	SelectLeft      key.Binding
	SelectRight     key.Binding
	SelectUp        key.Binding
	SelectDown      key.Binding
	SelectWordLeft  key.Binding
	SelectWordRight key.Binding
	SelectLineStart key.Binding
	SelectLineEnd   key.Binding
	SelectAll       key.Binding

	// Preview scrolling
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Commands: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "commands"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),

		// Toolbar
		Header1: key.NewBinding(
			key.WithKeys("alt+1"),
			key.WithHelp("alt+1", "H1"),
		),
		Header2: key.NewBinding(
			key.WithKeys("alt+2"),
			key.WithHelp("alt+2", "H2"),
		),
		Header3: key.NewBinding(
			key.WithKeys("alt+3"),
			key.WithHelp("alt+3", "H3"),
		),
		Header4: key.NewBinding(
			key.WithKeys("alt+4"),
			key.WithHelp("alt+4", "H4"),
		),
		Bold: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "bold"),
		),
		Italic: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "italic"),
		),
		Strikethrough: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "strike"),
		),
		Code: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "code"),
		),
		BulletList: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "bullets"),
		),
		NumberedList: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "numbers"),
		),
		Link: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "link"),
		),
		CopyRaw: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy md"),
		),
		CopyHTML: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "copy html"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "clear"),
		),
		TogglePreview: key.NewBinding(
			key.WithKeys("alt+p", "f2"),
			key.WithHelp("alt+p", "html/terminal"),
		),

		// Editing
		Newline:         key.NewBinding(key.WithKeys("enter")),
		Tab:             key.NewBinding(key.WithKeys("tab")),
		DeleteBackward:  key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		DeleteForward:   key.NewBinding(key.WithKeys("delete", "ctrl+d")),
		Left:            key.NewBinding(key.WithKeys("left")),
		Right:           key.NewBinding(key.WithKeys("right")),
		Up:              key.NewBinding(key.WithKeys("up")),
		Down:            key.NewBinding(key.WithKeys("down")),
		WordLeft:        key.NewBinding(key.WithKeys("ctrl+left", "alt+left", "alt+b")),
		WordRight:       key.NewBinding(key.WithKeys("ctrl+right", "alt+right", "alt+f")),
		LineStart:       key.NewBinding(key.WithKeys("home")),
		LineEnd:         key.NewBinding(key.WithKeys("end")),
		DocStart:        key.NewBinding(key.WithKeys("ctrl+home")),
		DocEnd:          key.NewBinding(key.WithKeys("ctrl+end")),
		SelectLeft:      key.NewBinding(key.WithKeys("shift+left")),
		SelectRight:     key.NewBinding(key.WithKeys("shift+right")),
		SelectUp:        key.NewBinding(key.WithKeys("shift+up")),
		SelectDown:      key.NewBinding(key.WithKeys("shift+down")),
		SelectWordLeft:  key.NewBinding(key.WithKeys("ctrl+shift+left")),
		SelectWordRight: key.NewBinding(key.WithKeys("ctrl+shift+right")),
		SelectLineStart: key.NewBinding(key.WithKeys("shift+home")),
		SelectLineEnd:   key.NewBinding(key.WithKeys("shift+end")),
		SelectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "select all"),
		),

		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll preview"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "scroll preview"),
		),
	}
}

// Toolbar returns the bindings shown in the toolbar line, in order.
func (k KeyMap) Toolbar() []key.Binding {
	return []key.Binding{
		k.Header1, k.Header2, k.Header3, k.Header4,
		k.Bold, k.Italic, k.Strikethrough, k.Code,
		k.BulletList, k.NumberedList, k.Link,
		k.CopyRaw, k.CopyHTML, k.Clear,
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commands, k.TogglePreview, k.SelectAll, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Toolbar(),
		{k.Commands, k.TogglePreview, k.SelectAll, k.PageUp, k.Quit},
	}
}
