// Package editor owns the markdown buffer and keeps its preview and
// persisted copy in step with every edit.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samsaffron/mdpad/internal/format"
	"github.com/samsaffron/mdpad/internal/render"
	"github.com/samsaffron/mdpad/internal/store"
	"github.com/samsaffron/mdpad/internal/textbuf"
)

// ErrLinkValidation is returned by InsertLink when the URL or text is empty.
var ErrLinkValidation = errors.New("link requires both URL and text")

// Options configures an Editor.
type Options struct {
	Renderer render.Renderer
	Store    store.Store
	// Key is the store key for the buffer. Defaults to store.ContentKey.
	Key string
}

// Editor is a single markdown document: buffer, selection and rendered
// preview. It is not safe for concurrent use; the TUI drives it from its
// update loop.
type Editor struct {
	ctx      context.Context
	buf      *textbuf.Buffer
	preview  string
	renderer render.Renderer
	store    store.Store
	key      string
}

// New creates an empty Editor. Call Load to restore the persisted buffer.
func New(ctx context.Context, opts Options) *Editor {
	if ctx == nil {
		ctx = context.Background()
	}
	r := opts.Renderer
	if r == nil {
		r = render.NewHTMLRenderer(render.DefaultOptions())
	}
	s := opts.Store
	if s == nil {
		s = store.NewMemoryStore()
	}
	key := opts.Key
	if key == "" {
		key = store.ContentKey
	}
	return &Editor{
		ctx:      ctx,
		buf:      textbuf.New(""),
		renderer: r,
		store:    s,
		key:      key,
	}
}

// Load seeds the buffer from the store. A missing or empty value leaves the
// editor empty and is not an error.
func (e *Editor) Load() error {
	value, ok, err := e.store.Get(e.ctx, e.key)
	if err != nil {
		return fmt.Errorf("load buffer: %w", err)
	}
	if !ok || value == "" {
		return nil
	}
	e.buf = textbuf.New(value)
	e.preview = e.renderer.Render(value)
	return nil
}

// Text returns the buffer contents.
func (e *Editor) Text() string { return e.buf.Text() }

// Preview returns the rendered HTML for the current buffer.
func (e *Editor) Preview() string { return e.preview }

// Selection returns the normalized selection.
func (e *Editor) Selection() textbuf.Selection { return e.buf.Selection() }

// Buffer exposes the underlying buffer for read-only layout work.
func (e *Editor) Buffer() *textbuf.Buffer { return e.buf }

// Key returns the store key the buffer persists under.
func (e *Editor) Key() string { return e.key }

// commit re-renders the preview and persists the buffer. It runs after
// every mutation; a persistence failure is returned but the edit stands.
func (e *Editor) commit() error {
	text := e.buf.Text()
	e.preview = e.renderer.Render(text)
	if err := e.store.Set(e.ctx, e.key, text); err != nil {
		return fmt.Errorf("persist buffer: %w", err)
	}
	return nil
}

// SetText replaces the whole buffer and puts the caret at the end.
func (e *Editor) SetText(text string) error {
	text = normalizeNewlines(text)
	e.buf.SetText(text, textbuf.Caret(utf8.RuneCountInString(text)))
	return e.commit()
}

// Format applies a toolbar intent at the current selection.
func (e *Editor) Format(intent format.Intent) error {
	text, sel := format.Apply(e.buf.Text(), e.buf.Selection(), intent)
	e.buf.SetText(text, sel)
	return e.commit()
}

// Newline handles the enter key, continuing or breaking lists.
func (e *Editor) Newline() (format.Continuation, error) {
	text, sel, c := format.ApplyNewline(e.buf.Text(), e.buf.Selection())
	e.buf.SetText(text, sel)
	return c, e.commit()
}

// InsertText replaces the selection with s (typing and paste).
func (e *Editor) InsertText(s string) error {
	s = normalizeNewlines(s)
	if s == "" && e.buf.Selection().IsEmpty() {
		return nil
	}
	e.buf.ReplaceSelection(s)
	return e.commit()
}

// DeleteBackward removes the selection or the rune before the caret.
func (e *Editor) DeleteBackward() error {
	if !e.buf.DeleteBackward() {
		return nil
	}
	return e.commit()
}

// DeleteForward removes the selection or the rune after the caret.
func (e *Editor) DeleteForward() error {
	if !e.buf.DeleteForward() {
		return nil
	}
	return e.commit()
}

// InsertLink inserts "[text](url)" before the selection. Both fields are
// required; on ErrLinkValidation the buffer is untouched.
func (e *Editor) InsertLink(url, text string) error {
	if url == "" || text == "" {
		return ErrLinkValidation
	}
	return e.Format(format.Wrap("["+text+"]("+url+")", ""))
}

// CopyRaw returns the markdown to export.
func (e *Editor) CopyRaw() string { return e.buf.Text() }

// CopyRendered returns the rendered HTML to export.
func (e *Editor) CopyRendered() string { return e.preview }

// Clear empties the buffer and preview and removes the persisted copy.
func (e *Editor) Clear() (Notification, error) {
	e.buf.Clear()
	e.preview = ""
	n := Notification{Text: MsgCleared, Kind: NotifyInfo}
	if err := e.store.Remove(e.ctx, e.key); err != nil {
		return n, fmt.Errorf("remove buffer: %w", err)
	}
	return n, nil
}

// Motion is a caret movement.
type Motion int

const (
	MoveLeft Motion = iota
	MoveRight
	MoveUp
	MoveDown
	MoveWordLeft
	MoveWordRight
	MoveLineStart
	MoveLineEnd
	MoveDocStart
	MoveDocEnd
)

// Move moves the caret; with extend the selection anchor stays put.
// Motions do not change the text, so nothing is rendered or persisted.
func (e *Editor) Move(m Motion, extend bool) {
	switch m {
	case MoveLeft:
		e.buf.MoveLeft(extend)
	case MoveRight:
		e.buf.MoveRight(extend)
	case MoveUp:
		e.buf.MoveUp(extend)
	case MoveDown:
		e.buf.MoveDown(extend)
	case MoveWordLeft:
		e.buf.MoveWordLeft(extend)
	case MoveWordRight:
		e.buf.MoveWordRight(extend)
	case MoveLineStart:
		e.buf.MoveLineStart(extend)
	case MoveLineEnd:
		e.buf.MoveLineEnd(extend)
	case MoveDocStart:
		e.buf.MoveDocStart(extend)
	case MoveDocEnd:
		e.buf.MoveDocEnd(extend)
	}
}

// SelectAll selects the whole buffer.
func (e *Editor) SelectAll() { e.buf.SelectAll() }

// Stats counts words, characters and lines in the buffer.
type Stats struct {
	Words int
	Chars int
	Lines int
}

// Stats returns counters for the status bar.
func (e *Editor) Stats() Stats {
	return CountStats(e.buf.Text())
}

// CountStats computes Stats for text. Empty text has zero lines.
func CountStats(text string) Stats {
	if text == "" {
		return Stats{}
	}
	return Stats{
		Words: len(strings.Fields(text)),
		Chars: utf8.RuneCountInString(text),
		Lines: strings.Count(text, "\n") + 1,
	}
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
