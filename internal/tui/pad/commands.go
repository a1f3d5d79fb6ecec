package pad

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"github.com/samsaffron/mdpad/internal/editor"
	"github.com/samsaffron/mdpad/internal/ui"
)

// Command is an entry in the command palette
type Command struct {
	Name        string
	Description string
	Shortcut    string
}

// Palette-only commands; toolbar formatting commands come from editor.Toolbar.
const (
	cmdLink        = "link"
	cmdCopy        = "copy"
	cmdCopyHTML    = "copy-html"
	cmdClear       = "clear"
	cmdPreview     = "preview-mode"
	cmdPreviewPane = "preview-pane"
	cmdSelectAll   = "select-all"
	cmdQuit        = "quit"
)

// AllCommands returns every palette command
func AllCommands(keys KeyMap) []Command {
	shortcuts := map[string]string{
		"h1":            keys.Header1.Help().Key,
		"h2":            keys.Header2.Help().Key,
		"h3":            keys.Header3.Help().Key,
		"h4":            keys.Header4.Help().Key,
		"bold":          keys.Bold.Help().Key,
		"italic":        keys.Italic.Help().Key,
		"strikethrough": keys.Strikethrough.Help().Key,
		"code":          keys.Code.Help().Key,
		"bullet":        keys.BulletList.Help().Key,
		"numbered":      keys.NumberedList.Help().Key,
	}

	var cmds []Command
	for _, item := range editor.Toolbar {
		cmds = append(cmds, Command{
			Name:        item.Name,
			Description: item.Label,
			Shortcut:    shortcuts[item.Name],
		})
	}
	return append(cmds,
		Command{Name: cmdLink, Description: "Insert link", Shortcut: keys.Link.Help().Key},
		Command{Name: cmdCopy, Description: "Copy markdown to clipboard", Shortcut: keys.CopyRaw.Help().Key},
		Command{Name: cmdCopyHTML, Description: "Copy rendered HTML to clipboard", Shortcut: keys.CopyHTML.Help().Key},
		Command{Name: cmdClear, Description: "Delete all content", Shortcut: keys.Clear.Help().Key},
		Command{Name: cmdPreview, Description: "Switch preview between terminal and HTML", Shortcut: keys.TogglePreview.Help().Key},
		Command{Name: cmdPreviewPane, Description: "Show or hide the preview pane"},
		Command{Name: cmdSelectAll, Description: "Select everything", Shortcut: keys.SelectAll.Help().Key},
		Command{Name: cmdQuit, Description: "Exit mdpad", Shortcut: keys.Quit.Help().Key},
	)
}

// CommandSource implements fuzzy.Source for command searching
type CommandSource []Command

func (c CommandSource) String(i int) string {
	return c[i].Name + " " + c[i].Description
}

func (c CommandSource) Len() int {
	return len(c)
}

// FilterCommands returns commands matching the query using fuzzy search
func FilterCommands(commands []Command, query string) []Command {
	query = strings.TrimSpace(query)
	if query == "" {
		return commands
	}

	matches := fuzzy.FindFrom(query, CommandSource(commands))

	var result []Command
	for _, match := range matches {
		result = append(result, commands[match.Index])
	}

	// If no fuzzy matches, also check if query is prefix of any command
	if len(result) == 0 {
		queryLower := strings.ToLower(query)
		for _, cmd := range commands {
			if strings.HasPrefix(cmd.Name, queryLower) {
				result = append(result, cmd)
			}
		}
	}
	return result
}

// Palette is the fuzzy command picker
type Palette struct {
	open     bool
	commands []Command
	filtered []Command
	cursor   int
	input    textinput.Model
	width    int
	height   int
	styles   *ui.Styles
}

// NewPalette creates a closed palette over commands.
func NewPalette(commands []Command, styles *ui.Styles) *Palette {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "type a command"
	return &Palette{commands: commands, filtered: commands, input: in, styles: styles}
}

// SetSize updates the dimensions
func (p *Palette) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = width - 12
}

// IsOpen returns whether the palette is visible
func (p *Palette) IsOpen() bool {
	return p.open
}

// Open shows the palette with an empty query.
func (p *Palette) Open() tea.Cmd {
	p.open = true
	p.input.Reset()
	p.filtered = p.commands
	p.cursor = 0
	return p.input.Focus()
}

// Close hides the palette.
func (p *Palette) Close() {
	p.open = false
	p.input.Blur()
	p.input.Reset()
	p.filtered = p.commands
	p.cursor = 0
}

// Selected returns the highlighted command, or nil when nothing matches.
func (p *Palette) Selected() *Command {
	if p.cursor < 0 || p.cursor >= len(p.filtered) {
		return nil
	}
	return &p.filtered[p.cursor]
}

// MoveUp moves the highlight up.
func (p *Palette) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// MoveDown moves the highlight down.
func (p *Palette) MoveDown() {
	if p.cursor < len(p.filtered)-1 {
		p.cursor++
	}
}

// Update forwards typing to the query input and refilters.
func (p *Palette) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.filtered = FilterCommands(p.commands, p.input.Value())
	if p.cursor >= len(p.filtered) {
		p.cursor = max(0, len(p.filtered)-1)
	}
	return cmd
}

// View renders the palette box.
func (p *Palette) View() string {
	var b strings.Builder
	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	maxRows := p.height - 6
	if maxRows < 3 {
		maxRows = 3
	}
	start := 0
	if p.cursor >= maxRows {
		start = p.cursor - maxRows + 1
	}
	if len(p.filtered) == 0 {
		b.WriteString("no matching commands")
	}
	for i := start; i < len(p.filtered) && i < start+maxRows; i++ {
		c := p.filtered[i]
		line := c.Name + "  " + c.Description
		if c.Shortcut != "" {
			line += "  (" + c.Shortcut + ")"
		}
		if p.styles != nil {
			if i == p.cursor {
				line = p.styles.ToolbarKey.Render("› " + line)
			} else {
				line = "  " + p.styles.Text.Render(line)
			}
		} else if i == p.cursor {
			line = "› " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		if i < len(p.filtered)-1 && i < start+maxRows-1 {
			b.WriteString("\n")
		}
	}
	if p.styles != nil {
		return p.styles.Modal.Render(b.String())
	}
	return b.String()
}
