package ui

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/samsaffron/mdpad/internal/config"
)

func TestThemeFromConfigOverrides(t *testing.T) {
	theme := ThemeFromConfig(ThemeConfig{Secondary: "#123456", Selection: "238"})
	if theme.Secondary != lipgloss.Color("#123456") {
		t.Fatalf("Secondary=%q", theme.Secondary)
	}
	if theme.Border != theme.Secondary {
		t.Fatalf("Border=%q, want it to follow Secondary", theme.Border)
	}
	if theme.Selection != lipgloss.Color("238") {
		t.Fatalf("Selection=%q", theme.Selection)
	}
	if theme.Primary != DefaultTheme().Primary {
		t.Fatalf("Primary changed unexpectedly: %q", theme.Primary)
	}
}

func TestResolveTheme(t *testing.T) {
	theme := ResolveTheme("nord", ThemeConfig{Error: "#ff0000"})
	if theme.Primary != lipgloss.Color("#88c0d0") {
		t.Fatalf("Primary=%q, want nord primary", theme.Primary)
	}
	if theme.Error != lipgloss.Color("#ff0000") {
		t.Fatalf("Error=%q, want override", theme.Error)
	}

	fallback := ResolveTheme("no-such-theme", ThemeConfig{})
	if fallback.Primary != DefaultTheme().Primary {
		t.Fatalf("unknown preset should fall back to default, got %q", fallback.Primary)
	}
}

func TestPresetsAreComplete(t *testing.T) {
	if len(PresetThemeNames) != len(PresetThemes) {
		t.Fatalf("%d names for %d presets", len(PresetThemeNames), len(PresetThemes))
	}
	for _, name := range PresetThemeNames {
		p := GetPresetTheme(name)
		if p == nil {
			t.Fatalf("preset %q missing", name)
		}
		c := p.Config
		for field, v := range map[string]string{
			"primary": c.Primary, "secondary": c.Secondary, "error": c.Error,
			"muted": c.Muted, "text": c.Text, "selection": c.Selection,
		} {
			if v == "" {
				t.Errorf("preset %q has empty %s", name, field)
			}
		}
		if got := MatchPresetTheme(c); got != name {
			t.Errorf("MatchPresetTheme(%s)=%q", name, got)
		}
	}
	if GetPresetTheme("vaporwave") != nil {
		t.Fatal("unexpected preset")
	}
}

func TestGlamourStyleUsesTheme(t *testing.T) {
	theme := DefaultTheme()
	style := GlamourStyleFromTheme(theme)
	if style.Strong.Color == nil || *style.Strong.Color != string(theme.Primary) {
		t.Fatalf("Strong color=%v, want primary", style.Strong.Color)
	}
	if style.Strikethrough.CrossedOut == nil || !*style.Strikethrough.CrossedOut {
		t.Fatal("strikethrough should be crossed out")
	}
	if style.Heading.Color == nil || *style.Heading.Color != string(theme.Secondary) {
		t.Fatalf("Heading color=%v, want secondary", style.Heading.Color)
	}
}

func TestFormatResult(t *testing.T) {
	s := NewStyledWithTheme(os.Stderr, DefaultTheme())
	if s.Theme() == nil {
		t.Fatal("Theme() is nil")
	}
	ok := s.FormatResult(true, "done")
	fail := s.FormatResult(false, "nope")
	if ok == fail {
		t.Fatal("success and failure render identically")
	}
}

func TestSetupChoicesApply(t *testing.T) {
	cfg := config.Default()
	SetupChoices{Theme: "dracula", Backend: "file", Preview: config.PreviewHTML}.Apply(cfg)
	if cfg.Theme.Preset != "dracula" || cfg.Store.Backend != "file" || cfg.UI.Preview != config.PreviewHTML {
		t.Fatalf("cfg=%+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(themeOptions()) != len(PresetThemeNames) {
		t.Fatal("theme options do not cover every preset")
	}
}
