package editor

import "github.com/samsaffron/mdpad/internal/format"

// ToolbarItem is a formatting button.
type ToolbarItem struct {
	Name   string
	Label  string
	Intent format.Intent
}

// Toolbar lists the formatting actions in display order.
var Toolbar = []ToolbarItem{
	{Name: "h1", Label: "Header 1", Intent: format.Header(1)},
	{Name: "h2", Label: "Header 2", Intent: format.Header(2)},
	{Name: "h3", Label: "Header 3", Intent: format.Header(3)},
	{Name: "h4", Label: "Header 4", Intent: format.Header(4)},
	{Name: "bold", Label: "Bold", Intent: format.Bold},
	{Name: "italic", Label: "Italic", Intent: format.Italic},
	{Name: "strikethrough", Label: "Strikethrough", Intent: format.Strikethrough},
	{Name: "code", Label: "Code", Intent: format.Code},
	{Name: "bullet", Label: "Bullet list", Intent: format.List(format.Bullet)},
	{Name: "numbered", Label: "Numbered list", Intent: format.List(format.Numbered)},
}

// LookupToolbar finds a toolbar item by name.
func LookupToolbar(name string) (ToolbarItem, bool) {
	for _, item := range Toolbar {
		if item.Name == name {
			return item, true
		}
	}
	return ToolbarItem{}, false
}
