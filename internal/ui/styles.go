package ui

import "github.com/charmbracelet/lipgloss"

// Styles is every lipgloss style the views use, derived from one palette.
// Rebuilt whenever the theme changes.
type Styles struct {
	Title          lipgloss.Style
	Header         lipgloss.Style
	Box            lipgloss.Style
	Selected       lipgloss.Style
	Muted          lipgloss.Style
	Error          lipgloss.Style
	Help           lipgloss.Style
	OwnSender      lipgloss.Style
	OtherSender    lipgloss.Style
	Body           lipgloss.Style
	MediaLink      lipgloss.Style
	Reaction       lipgloss.Style
	Sidebar        lipgloss.Style
	SidebarHeader  lipgloss.Style
	Badge          lipgloss.Style
	Online         lipgloss.Style
	PickerBox      lipgloss.Style
	PickerSelected lipgloss.Style
}

// NewStyles builds the style set for p.
func NewStyles(p Palette) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Background(p.Surface).
			Padding(0, 1),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(1, 2),

		Selected: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		OwnSender: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),

		OtherSender: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(p.Text),

		MediaLink: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Underline(true),

		Reaction: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface).
			Padding(0, 1),

		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(p.Muted).
			Padding(0, 1),

		SidebarHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		Badge: lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Primary).
			Bold(true),

		Online: lipgloss.NewStyle().
			Foreground(p.Secondary),

		PickerBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),

		PickerSelected: lipgloss.NewStyle().
			Background(p.Primary).
			Foreground(p.Background),
	}
}
