package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cloudzz-dev/parley/internal/session"
)

// Palette is the concrete color set behind a session theme.
type Palette struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
}

var palettes = map[session.Theme]Palette{
	session.ThemeLight: {
		Name:       "Light",
		Primary:    lipgloss.Color("#7C3AED"),
		Secondary:  lipgloss.Color("#059669"),
		Background: lipgloss.Color("#FFFFFF"),
		Surface:    lipgloss.Color("#F3F4F6"),
		Text:       lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#6B7280"),
		Error:      lipgloss.Color("#DC2626"),
	},
	session.ThemeDark: {
		Name:       "Dark",
		Primary:    lipgloss.Color("#7C3AED"),
		Secondary:  lipgloss.Color("#10B981"),
		Background: lipgloss.Color("#1F2937"),
		Surface:    lipgloss.Color("#111827"),
		Text:       lipgloss.Color("#F9FAFB"),
		Muted:      lipgloss.Color("#9CA3AF"),
		Error:      lipgloss.Color("#EF4444"),
	},
	session.ThemeOcean: {
		Name:       "Ocean",
		Primary:    lipgloss.Color("#38BDF8"),
		Secondary:  lipgloss.Color("#2DD4BF"),
		Background: lipgloss.Color("#1E3A8A"),
		Surface:    lipgloss.Color("#172554"),
		Text:       lipgloss.Color("#EFF6FF"),
		Muted:      lipgloss.Color("#93C5FD"),
		Error:      lipgloss.Color("#F87171"),
	},
	session.ThemeForest: {
		Name:       "Forest",
		Primary:    lipgloss.Color("#4ADE80"),
		Secondary:  lipgloss.Color("#FBBF24"),
		Background: lipgloss.Color("#14532D"),
		Surface:    lipgloss.Color("#052E16"),
		Text:       lipgloss.Color("#F0FDF4"),
		Muted:      lipgloss.Color("#86EFAC"),
		Error:      lipgloss.Color("#F87171"),
	},
}

// PaletteFor maps a theme to its palette, falling back to the default
// preset for anything it does not know.
func PaletteFor(t session.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[session.DefaultTheme]
}
