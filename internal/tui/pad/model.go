// Package pad is the interactive editor: a bubbletea program with an editing
// pane, a live preview, a toolbar keymap, a link dialog and a command palette.
package pad

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samsaffron/mdpad/internal/clipboard"
	"github.com/samsaffron/mdpad/internal/config"
	"github.com/samsaffron/mdpad/internal/editor"
	"github.com/samsaffron/mdpad/internal/format"
	"github.com/samsaffron/mdpad/internal/ui"
	"golang.org/x/term"
)

// PreviewRenderer renders markdown for the terminal preview pane.
type PreviewRenderer interface {
	RenderWidth(text string, width int) string
}

// Options configures a Model.
type Options struct {
	Editor    *editor.Editor
	Styles    *ui.Styles
	Preview   PreviewRenderer
	Clipboard clipboard.Writer

	// Highlighter colors the HTML preview. Nil shows it uncolored.
	Highlighter *ui.Highlighter

	PreviewMode          string // config.PreviewTerminal or config.PreviewHTML
	ShowPreview          bool
	NotificationDuration time.Duration
}

// Model is the bubbletea model for the editor
type Model struct {
	editor  *editor.Editor
	styles  *ui.Styles
	keyMap  KeyMap
	preview PreviewRenderer
	clip    clipboard.Writer
	syntax  *ui.Highlighter

	width  int
	height int

	// editor pane scroll, in rows and display columns
	top  int
	left int

	viewport    viewport.Model
	help        help.Model
	dialog      *LinkDialog
	palette     *Palette
	previewMode string
	showPreview bool

	notifyDuration time.Duration
	notice         string
	noticeID       int
	alert          string // blocking message, dismissed by the next key
	warning        string // last persistence problem

	quitting bool
}

// copyResultMsg reports the outcome of an asynchronous clipboard write.
type copyResultMsg struct {
	notification editor.Notification
	err          error
}

// hideNoticeMsg hides the notification with the matching id.
type hideNoticeMsg struct {
	id int
}

// New creates the editor model.
func New(opts Options) *Model {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	styles := opts.Styles
	if styles == nil {
		styles = ui.DefaultStyles()
	}
	mode := opts.PreviewMode
	if mode == "" {
		mode = config.PreviewTerminal
	}
	dur := opts.NotificationDuration
	if dur <= 0 {
		dur = 2 * time.Second
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.Func(func(string) error { return clipboard.ErrUnavailable })
	}

	keyMap := DefaultKeyMap()
	m := &Model{
		editor:         opts.Editor,
		styles:         styles,
		keyMap:         keyMap,
		preview:        opts.Preview,
		syntax:         opts.Highlighter,
		clip:           clip,
		viewport:       viewport.New(0, 0),
		help:           help.New(),
		dialog:         NewLinkDialog(styles),
		palette:        NewPalette(AllCommands(keyMap), styles),
		previewMode:    mode,
		showPreview:    opts.ShowPreview,
		notifyDuration: dur,
	}
	m.resize(width, height)
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case copyResultMsg:
		if msg.err != nil {
			slog.Warn("clipboard write failed", "error", msg.err)
		}
		return m, m.notify(msg.notification)

	case hideNoticeMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Quit) && msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// A blocking message swallows the next key, like an alert box.
	if m.alert != "" {
		m.alert = ""
		return m, nil
	}

	if m.dialog.IsOpen() {
		return m.handleDialogKey(msg)
	}
	if m.palette.IsOpen() {
		return m.handlePaletteKey(msg)
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keyMap.Commands):
		return m, m.palette.Open()
	case key.Matches(msg, m.keyMap.Dismiss):
		m.notice = ""
		m.warning = ""
		return m, nil
	case key.Matches(msg, m.keyMap.PageUp), key.Matches(msg, m.keyMap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if cmd, ok := m.handleToolbarKey(msg); ok {
		return m, cmd
	}
	m.handleEditKey(msg)
	return m, nil
}

func (m *Model) handleToolbarKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	k := m.keyMap
	intents := []struct {
		binding key.Binding
		intent  format.Intent
	}{
		{k.Header1, format.Header(1)},
		{k.Header2, format.Header(2)},
		{k.Header3, format.Header(3)},
		{k.Header4, format.Header(4)},
		{k.Bold, format.Bold},
		{k.Italic, format.Italic},
		{k.Strikethrough, format.Strikethrough},
		{k.Code, format.Code},
		{k.BulletList, format.List(format.Bullet)},
		{k.NumberedList, format.List(format.Numbered)},
	}
	for _, it := range intents {
		if key.Matches(msg, it.binding) {
			m.applyIntent(it.intent)
			return nil, true
		}
	}

	switch {
	case key.Matches(msg, k.Link):
		return m.dialog.Open(), true
	case key.Matches(msg, k.CopyRaw):
		return m.copyCmd(m.editor.CopyRaw(), false), true
	case key.Matches(msg, k.CopyHTML):
		return m.copyCmd(m.editor.CopyRendered(), true), true
	case key.Matches(msg, k.Clear):
		return m.clear(), true
	case key.Matches(msg, k.TogglePreview):
		m.togglePreviewMode()
		return nil, true
	}
	return nil, false
}

func (m *Model) handleEditKey(msg tea.KeyMsg) {
	k := m.keyMap
	motions := []struct {
		binding key.Binding
		motion  editor.Motion
		extend  bool
	}{
		{k.Left, editor.MoveLeft, false},
		{k.Right, editor.MoveRight, false},
		{k.Up, editor.MoveUp, false},
		{k.Down, editor.MoveDown, false},
		{k.WordLeft, editor.MoveWordLeft, false},
		{k.WordRight, editor.MoveWordRight, false},
		{k.LineStart, editor.MoveLineStart, false},
		{k.LineEnd, editor.MoveLineEnd, false},
		{k.DocStart, editor.MoveDocStart, false},
		{k.DocEnd, editor.MoveDocEnd, false},
		{k.SelectLeft, editor.MoveLeft, true},
		{k.SelectRight, editor.MoveRight, true},
		{k.SelectUp, editor.MoveUp, true},
		{k.SelectDown, editor.MoveDown, true},
		{k.SelectWordLeft, editor.MoveWordLeft, true},
		{k.SelectWordRight, editor.MoveWordRight, true},
		{k.SelectLineStart, editor.MoveLineStart, true},
		{k.SelectLineEnd, editor.MoveLineEnd, true},
	}
	for _, mv := range motions {
		if key.Matches(msg, mv.binding) {
			m.editor.Move(mv.motion, mv.extend)
			m.scrollToCaret()
			return
		}
	}

	var err error
	switch {
	case key.Matches(msg, k.SelectAll):
		m.editor.SelectAll()
		m.scrollToCaret()
		return
	case key.Matches(msg, k.Newline):
		_, err = m.editor.Newline()
	case key.Matches(msg, k.Tab):
		err = m.editor.InsertText("\t")
	case key.Matches(msg, k.DeleteBackward):
		err = m.editor.DeleteBackward()
	case key.Matches(msg, k.DeleteForward):
		err = m.editor.DeleteForward()
	case msg.Type == tea.KeySpace:
		err = m.editor.InsertText(" ")
	case msg.Type == tea.KeyRunes && !msg.Alt:
		err = m.editor.InsertText(string(msg.Runes))
	default:
		return
	}
	m.afterEdit(err)
}

func (m *Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.dialog.Close()
		return m, nil
	case tea.KeyTab, tea.KeyShiftTab:
		return m, m.dialog.NextField()
	case tea.KeyEnter:
		url, text := m.dialog.Values()
		err := m.editor.InsertLink(url, text)
		if errors.Is(err, editor.ErrLinkValidation) {
			return m, m.notify(editor.Notification{Text: editor.MsgLinkInvalid, Kind: editor.NotifyError})
		}
		m.dialog.Close()
		m.afterEdit(err)
		return m, nil
	}
	return m, m.dialog.Update(msg)
}

func (m *Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.palette.Close()
		return m, nil
	case tea.KeyUp, tea.KeyCtrlP:
		m.palette.MoveUp()
		return m, nil
	case tea.KeyDown, tea.KeyCtrlN:
		m.palette.MoveDown()
		return m, nil
	case tea.KeyEnter, tea.KeyTab:
		selected := m.palette.Selected()
		m.palette.Close()
		if selected == nil {
			return m, nil
		}
		return m, m.runCommand(selected.Name)
	}
	return m, m.palette.Update(msg)
}

// runCommand executes a palette command by name.
func (m *Model) runCommand(name string) tea.Cmd {
	if item, ok := editor.LookupToolbar(name); ok {
		m.applyIntent(item.Intent)
		return nil
	}
	switch name {
	case cmdLink:
		return m.dialog.Open()
	case cmdCopy:
		return m.copyCmd(m.editor.CopyRaw(), false)
	case cmdCopyHTML:
		return m.copyCmd(m.editor.CopyRendered(), true)
	case cmdClear:
		return m.clear()
	case cmdPreview:
		m.togglePreviewMode()
	case cmdPreviewPane:
		m.showPreview = !m.showPreview
		m.resize(m.width, m.height)
	case cmdSelectAll:
		m.editor.SelectAll()
	case cmdQuit:
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) applyIntent(intent format.Intent) {
	m.afterEdit(m.editor.Format(intent))
}

// afterEdit refreshes the view after a buffer mutation. Persistence errors
// are shown in the status bar; the edit itself has already been applied.
func (m *Model) afterEdit(err error) {
	if err != nil {
		m.warning = err.Error()
	} else {
		m.warning = ""
	}
	m.scrollToCaret()
	m.refreshPreview()
}

func (m *Model) clear() tea.Cmd {
	n, err := m.editor.Clear()
	m.afterEdit(err)
	m.top, m.left = 0, 0
	return m.notify(n)
}

// copyCmd writes text to the clipboard off the update loop.
func (m *Model) copyCmd(text string, rendered bool) tea.Cmd {
	clip := m.clip
	return func() tea.Msg {
		n, err := editor.Export(clip, text, rendered)
		return copyResultMsg{notification: n, err: err}
	}
}

// notify shows n. Blocking notifications stay until a key is pressed;
// others hide after the configured duration.
func (m *Model) notify(n editor.Notification) tea.Cmd {
	if n.Blocking() {
		m.alert = n.Text
		return nil
	}
	m.notice = n.Text
	m.noticeID++
	id := m.noticeID
	return tea.Tick(m.notifyDuration, func(time.Time) tea.Msg {
		return hideNoticeMsg{id: id}
	})
}

func (m *Model) togglePreviewMode() {
	if m.previewMode == config.PreviewHTML {
		m.previewMode = config.PreviewTerminal
	} else {
		m.previewMode = config.PreviewHTML
	}
	m.refreshPreview()
}

// Quitting reports whether the user asked to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}
