package ui

import (
	"os"

	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the UI
type Theme struct {
	// Primary colors
	Primary   lipgloss.Color // main accent color (shortcuts, highlights)
	Secondary lipgloss.Color // secondary accent (headings, borders)

	// Semantic colors
	Success lipgloss.Color // notifications
	Error   lipgloss.Color // blocking errors
	Warning lipgloss.Color // persistence warnings
	Muted   lipgloss.Color // dimmed/secondary text
	Text    lipgloss.Color // primary text

	// Editor colors
	Border    lipgloss.Color // pane borders
	Selection lipgloss.Color // selected text background
	Caret     lipgloss.Color // caret block
}

// DefaultTheme returns the default color theme (gruvbox)
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#b8bb26"), // gruvbox green
		Secondary: lipgloss.Color("#83a598"), // gruvbox aqua
		Success:   lipgloss.Color("#b8bb26"), // gruvbox green
		Error:     lipgloss.Color("#fb4934"), // gruvbox red
		Warning:   lipgloss.Color("#fabd2f"), // gruvbox yellow
		Muted:     lipgloss.Color("#928374"), // gruvbox gray
		Text:      lipgloss.Color("#ebdbb2"), // gruvbox foreground
		Border:    lipgloss.Color("#83a598"), // matches secondary
		Selection: lipgloss.Color("#504945"), // gruvbox bg2
		Caret:     lipgloss.Color("#ebdbb2"),
	}
}

// ThemeConfig mirrors config.ThemeConfig for applying overrides
type ThemeConfig struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Warning   string
	Muted     string
	Text      string
	Selection string
}

// ThemeFromConfig creates a theme with config overrides applied
func ThemeFromConfig(cfg ThemeConfig) *Theme {
	theme := DefaultTheme()

	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&theme.Primary, cfg.Primary)
	set(&theme.Secondary, cfg.Secondary)
	set(&theme.Border, cfg.Secondary) // border follows secondary
	set(&theme.Success, cfg.Success)
	set(&theme.Error, cfg.Error)
	set(&theme.Warning, cfg.Warning)
	set(&theme.Muted, cfg.Muted)
	set(&theme.Text, cfg.Text)
	set(&theme.Caret, cfg.Text)
	set(&theme.Selection, cfg.Selection)

	return theme
}

// ResolveTheme applies a named preset and then explicit overrides on top.
// Unknown preset names fall back to the default palette.
func ResolveTheme(preset string, overrides ThemeConfig) *Theme {
	base := ThemeConfig{}
	if p := GetPresetTheme(preset); p != nil {
		base = p.Config
	}
	merge := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	merge(&base.Primary, overrides.Primary)
	merge(&base.Secondary, overrides.Secondary)
	merge(&base.Success, overrides.Success)
	merge(&base.Error, overrides.Error)
	merge(&base.Warning, overrides.Warning)
	merge(&base.Muted, overrides.Muted)
	merge(&base.Text, overrides.Text)
	merge(&base.Selection, overrides.Selection)
	return ThemeFromConfig(base)
}

// Status indicators
const (
	SuccessIcon = "✓"
	FailIcon    = "✗"
)

// Styles holds lipgloss styles bound to a renderer
type Styles struct {
	renderer *lipgloss.Renderer
	theme    *Theme

	// Text styles
	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style

	// Editor
	Text      lipgloss.Style
	Selection lipgloss.Style
	Caret     lipgloss.Style
	Pane      lipgloss.Style
	PaneTitle lipgloss.Style

	// Chrome
	ToolbarKey   lipgloss.Style
	ToolbarLabel lipgloss.Style
	StatusBar    lipgloss.Style
	Notification lipgloss.Style
	Modal        lipgloss.Style
}

// NewStyles creates styles for output with the current theme
func NewStyles(output *os.File) *Styles {
	return NewStyledWithTheme(output, currentTheme)
}

// NewStyledWithTheme creates styles with a specific theme
func NewStyledWithTheme(output *os.File, theme *Theme) *Styles {
	return newStyles(lipgloss.NewRenderer(output), theme)
}

func newStyles(r *lipgloss.Renderer, theme *Theme) *Styles {
	return &Styles{
		renderer: r,
		theme:    theme,

		Title: r.NewStyle().
			Bold(true).
			Foreground(theme.Text),

		Success: r.NewStyle().
			Foreground(theme.Success),

		Error: r.NewStyle().
			Bold(true).
			Foreground(theme.Error),

		Warning: r.NewStyle().
			Foreground(theme.Warning),

		Muted: r.NewStyle().
			Foreground(theme.Muted),

		Bold: r.NewStyle().
			Bold(true),

		Text: r.NewStyle().
			Foreground(theme.Text),

		Selection: r.NewStyle().
			Foreground(theme.Text).
			Background(theme.Selection),

		Caret: r.NewStyle().
			Reverse(true),

		Pane: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		PaneTitle: r.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		ToolbarKey: r.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		ToolbarLabel: r.NewStyle().
			Foreground(theme.Muted),

		StatusBar: r.NewStyle().
			Foreground(theme.Muted),

		Notification: r.NewStyle().
			Bold(true).
			Foreground(theme.Success),

		Modal: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(1, 2),
	}
}

// currentTheme is the active theme instance
var currentTheme = DefaultTheme()

// GetTheme returns the current active theme
func GetTheme() *Theme {
	return currentTheme
}

// SetTheme sets the current active theme
func SetTheme(t *Theme) {
	currentTheme = t
}

// DefaultStyles returns styles for stderr
func DefaultStyles() *Styles {
	return NewStyles(os.Stderr)
}

// Theme returns the theme used by these styles
func (s *Styles) Theme() *Theme {
	return s.theme
}

// FormatResult returns a styled success/fail result
func (s *Styles) FormatResult(success bool, msg string) string {
	if success {
		return s.Success.Render(SuccessIcon+" ") + msg
	}
	return s.Error.Render(FailIcon+" ") + msg
}

// GlamourStyleFromTheme creates a glamour StyleConfig for the preview pane
func GlamourStyleFromTheme(theme *Theme) ansi.StyleConfig {
	primary := string(theme.Primary)
	secondary := string(theme.Secondary)
	warning := string(theme.Warning)
	muted := string(theme.Muted)
	text := string(theme.Text)

	heading := func(prefix string) ansi.StyleBlock {
		return ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Prefix: prefix}}
	}

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: &text,
			},
		},
		Paragraph: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: &text,
			},
		},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color:  &muted,
				Italic: boolPtr(true),
			},
			Indent:      uintPtr(1),
			IndentToken: stringPtr("│ "),
		},
		List: ansi.StyleList{
			LevelIndent: 2,
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{
					Color: &text,
				},
			},
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockSuffix: "\n",
				Color:       &secondary,
				Bold:        boolPtr(true),
			},
		},
		H1: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix:          " ",
				Suffix:          " ",
				Color:           &text,
				BackgroundColor: &secondary,
			},
		},
		H2: heading("▌ "),
		H3: heading("┃ "),
		H4: heading("│ "),
		H5: heading("· "),
		H6: heading("· "),

		Strikethrough: ansi.StylePrimitive{
			CrossedOut: boolPtr(true),
			Color:      &muted,
		},
		Emph: ansi.StylePrimitive{
			Italic: boolPtr(true),
			Color:  &warning,
		},
		Strong: ansi.StylePrimitive{
			Bold:  boolPtr(true),
			Color: &primary,
		},
		HorizontalRule: ansi.StylePrimitive{
			Color:  &muted,
			Format: "\n────────\n",
		},
		Item: ansi.StylePrimitive{
			BlockPrefix: "• ",
		},
		Enumeration: ansi.StylePrimitive{
			BlockPrefix: ". ",
			Color:       &secondary,
		},
		Task: ansi.StyleTask{
			Ticked:   "[✓] ",
			Unticked: "[ ] ",
		},
		Link: ansi.StylePrimitive{
			Color:     &muted,
			Underline: boolPtr(true),
		},
		LinkText: ansi.StylePrimitive{
			Color: &secondary,
			Bold:  boolPtr(true),
		},
		Image: ansi.StylePrimitive{
			Color:     &muted,
			Underline: boolPtr(true),
		},
		ImageText: ansi.StylePrimitive{
			Color:  &muted,
			Format: "Image: {{.text}} →",
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Prefix: "`",
				Suffix: "`",
				Color:  &primary,
			},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{
					Color: &primary,
				},
				Margin: uintPtr(1),
			},
		},
		Table: ansi.StyleTable{
			CenterSeparator: stringPtr("┼"),
			ColumnSeparator: stringPtr("│"),
			RowSeparator:    stringPtr("─"),
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func uintPtr(u uint) *uint {
	return &u
}

func stringPtr(s string) *string {
	return &s
}
