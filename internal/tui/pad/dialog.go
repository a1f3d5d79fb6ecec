package pad

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samsaffron/mdpad/internal/ui"
)

// Link dialog fields
const (
	fieldURL = iota
	fieldText
)

// LinkDialog is the modal that collects a URL and link text.
type LinkDialog struct {
	open   bool
	url    textinput.Model
	text   textinput.Model
	focus  int
	width  int
	styles *ui.Styles
}

// NewLinkDialog creates a closed link dialog.
func NewLinkDialog(styles *ui.Styles) *LinkDialog {
	url := textinput.New()
	url.Prompt = "URL:  "
	url.Placeholder = "https://example.com"

	text := textinput.New()
	text.Prompt = "Text: "
	text.Placeholder = "link text"

	return &LinkDialog{url: url, text: text, styles: styles}
}

// SetSize updates the dimensions
func (d *LinkDialog) SetSize(width int) {
	d.width = width
	w := width - 16
	if w < 10 {
		w = 10
	}
	d.url.Width = w
	d.text.Width = w
}

// IsOpen returns whether the dialog is visible
func (d *LinkDialog) IsOpen() bool {
	return d.open
}

// Open shows the dialog with the URL field focused.
func (d *LinkDialog) Open() tea.Cmd {
	d.open = true
	d.focus = fieldURL
	d.text.Blur()
	return d.url.Focus()
}

// Close hides the dialog and clears both fields.
func (d *LinkDialog) Close() {
	d.open = false
	d.url.Reset()
	d.text.Reset()
	d.url.Blur()
	d.text.Blur()
	d.focus = fieldURL
}

// Values returns the entered URL and text.
func (d *LinkDialog) Values() (url, text string) {
	return d.url.Value(), d.text.Value()
}

// NextField moves focus between the URL and text inputs.
func (d *LinkDialog) NextField() tea.Cmd {
	if d.focus == fieldURL {
		d.focus = fieldText
		d.url.Blur()
		return d.text.Focus()
	}
	d.focus = fieldURL
	d.text.Blur()
	return d.url.Focus()
}

// Update forwards input to the focused field.
func (d *LinkDialog) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if d.focus == fieldURL {
		d.url, cmd = d.url.Update(msg)
	} else {
		d.text, cmd = d.text.Update(msg)
	}
	return cmd
}

// View renders the dialog box.
func (d *LinkDialog) View() string {
	var b strings.Builder
	if d.styles != nil {
		b.WriteString(d.styles.Title.Render("Insert link"))
	} else {
		b.WriteString("Insert link")
	}
	b.WriteString("\n\n")
	b.WriteString(d.url.View())
	b.WriteString("\n")
	b.WriteString(d.text.View())
	b.WriteString("\n\n")
	hint := "tab switch field · enter insert · esc cancel"
	if d.styles != nil {
		hint = d.styles.Muted.Render(hint)
		return d.styles.Modal.Render(b.String() + hint)
	}
	return b.String() + hint
}
