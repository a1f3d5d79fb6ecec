package pad

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samsaffron/mdpad/internal/config"
)

const tabWidth = 4

// chrome rows: toolbar, status line, help line
const chromeRows = 3

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	_, previewW := m.paneWidths()
	paneH := m.paneHeight()
	m.viewport.Width = max(previewW-2, 0)
	m.viewport.Height = max(paneH-3, 0) // border and title

	modalW := min(width, 72)
	m.dialog.SetSize(modalW)
	m.palette.SetSize(modalW, paneH)
	m.help.Width = width

	m.scrollToCaret()
	m.refreshPreview()
}

func (m *Model) paneHeight() int {
	return max(m.height-chromeRows, 3)
}

func (m *Model) paneWidths() (editorW, previewW int) {
	if !m.showPreview {
		return m.width, 0
	}
	editorW = m.width / 2
	return editorW, m.width - editorW
}

// editorInner returns the text area of the editor pane.
func (m *Model) editorInner() (width, rows int) {
	editorW, _ := m.paneWidths()
	return max(editorW-2, 1), max(m.paneHeight()-3, 1)
}

func runeDisplayWidth(r rune) int {
	if r == '\t' {
		return tabWidth
	}
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

func displayWidth(runes []rune) int {
	w := 0
	for _, r := range runes {
		w += runeDisplayWidth(r)
	}
	return w
}

// scrollToCaret adjusts the editor scroll so the caret is visible.
func (m *Model) scrollToCaret() {
	if m.editor == nil {
		return
	}
	innerW, rows := m.editorInner()
	buf := m.editor.Buffer()
	head := buf.Head()
	row, col := buf.Position(head)

	if row < m.top {
		m.top = row
	}
	if row >= m.top+rows {
		m.top = row - rows + 1
	}

	line := []rune(buf.LineAt(head))
	x := displayWidth(line[:min(col, len(line))])
	if x < m.left {
		m.left = x
	}
	if x >= m.left+innerW {
		m.left = x - innerW + 1
	}
}

// refreshPreview re-renders the preview pane content.
func (m *Model) refreshPreview() {
	if m.editor == nil || m.viewport.Width <= 0 {
		return
	}
	width := m.viewport.Width
	var content string
	if m.previewMode == config.PreviewHTML {
		html := m.syntax.Highlight(m.editor.Preview())
		content = ansi.Hardwrap(wordwrap.String(html, width), width, true)
	} else if m.preview != nil {
		content = m.preview.RenderWidth(m.editor.Text(), width)
	} else {
		content = m.editor.Text()
	}
	m.viewport.SetContent(content)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	paneH := m.paneHeight()
	switch {
	case m.alert != "":
		box := m.styles.Modal.Render(m.styles.Error.Render(m.alert) + "\n\n" + m.styles.Muted.Render("press any key"))
		body = lipgloss.Place(m.width, paneH, lipgloss.Center, lipgloss.Center, box)
	case m.dialog.IsOpen():
		body = lipgloss.Place(m.width, paneH, lipgloss.Center, lipgloss.Center, m.dialog.View())
	case m.palette.IsOpen():
		body = lipgloss.Place(m.width, paneH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		body = m.renderPanes()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderToolbar(),
		body,
		m.renderStatus(),
		m.help.View(m.keyMap),
	)
}

func (m *Model) renderPanes() string {
	innerW, rows := m.editorInner()
	editorPane := m.styles.Pane.
		Width(innerW).
		Height(rows + 1).
		Render(m.styles.PaneTitle.Render("Markdown") + "\n" + m.renderEditor(innerW, rows))

	if !m.showPreview {
		return editorPane
	}

	title := "Preview"
	if m.previewMode == config.PreviewHTML {
		title = "Preview (HTML)"
	}
	previewPane := m.styles.Pane.
		Width(m.viewport.Width).
		Height(m.viewport.Height + 1).
		Render(m.styles.PaneTitle.Render(title) + "\n" + m.viewport.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, editorPane, previewPane)
}

// renderEditor draws the visible slice of the buffer with the selection
// highlighted and the caret as a reversed cell.
func (m *Model) renderEditor(width, rows int) string {
	buf := m.editor.Buffer()
	lines := buf.Lines()
	sel := buf.Selection()
	head := buf.Head()

	offset := 0
	out := make([]string, 0, rows)
	for row, line := range lines {
		runes := []rune(line)
		if row >= m.top && row < m.top+rows {
			out = append(out, m.renderLine(runes, offset, sel.Start, sel.End, head, width))
		}
		offset += len(runes) + 1
	}
	for len(out) < rows {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

type cellState int

const (
	cellPlain cellState = iota
	cellSelected
	cellCaret
)

func (m *Model) renderLine(runes []rune, offset, selStart, selEnd, head, width int) string {
	var b strings.Builder
	var seg strings.Builder
	state := cellPlain

	flush := func() {
		if seg.Len() == 0 {
			return
		}
		switch state {
		case cellSelected:
			b.WriteString(m.styles.Selection.Render(seg.String()))
		case cellCaret:
			b.WriteString(m.styles.Caret.Render(seg.String()))
		default:
			b.WriteString(m.styles.Text.Render(seg.String()))
		}
		seg.Reset()
	}

	col := 0
	for i := 0; i <= len(runes); i++ {
		pos := offset + i
		r := ' '
		if i < len(runes) {
			r = runes[i]
		} else if pos != head {
			break
		}

		w := runeDisplayWidth(r)
		if col < m.left {
			col += w
			continue
		}
		if col+w > m.left+width {
			break
		}
		col += w

		next := cellPlain
		switch {
		case pos == head:
			next = cellCaret
		case pos >= selStart && pos < selEnd:
			next = cellSelected
		}
		if next != state {
			flush()
			state = next
		}
		if r == '\t' {
			seg.WriteString(strings.Repeat(" ", tabWidth))
		} else {
			seg.WriteRune(r)
		}
	}
	flush()
	return b.String()
}

func (m *Model) renderToolbar() string {
	sep := m.styles.Muted.Render(" · ")
	var parts []string
	width := 0
	for _, b := range m.keyMap.Toolbar() {
		h := b.Help()
		item := m.styles.ToolbarKey.Render(h.Key) + " " + m.styles.ToolbarLabel.Render(h.Desc)
		w := ansi.StringWidth(item)
		if len(parts) > 0 {
			w += ansi.StringWidth(sep)
		}
		if width+w > m.width {
			break
		}
		parts = append(parts, item)
		width += w
	}
	return strings.Join(parts, sep)
}

func (m *Model) renderStatus() string {
	stats := m.editor.Stats()
	sel := m.editor.Selection()
	row, col := m.editor.Buffer().Position(m.editor.Buffer().Head())

	left := fmt.Sprintf("Ln %d, Col %d · %d words · %d chars · %d lines", row+1, col+1, stats.Words, stats.Chars, stats.Lines)
	if !sel.IsEmpty() {
		left += fmt.Sprintf(" · %d selected", sel.Len())
	}
	left = m.styles.StatusBar.Render(left)

	var right string
	switch {
	case m.notice != "":
		right = m.styles.Notification.Render(m.notice)
	case m.warning != "":
		right = m.styles.Warning.Render("⚠ " + m.warning)
	}

	gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return truncate.StringWithTail(left+" "+right, uint(max(m.width, 0)), "…")
	}
	return left + strings.Repeat(" ", gap) + right
}
