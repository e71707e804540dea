package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		if m.connecting {
			return m, nil
		}
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			m.loginErr = "pick a display name first"
			return m, nil
		}
		m.nameInput.SetValue(name)
		m.loginErr = ""
		m.connecting = true
		return m, connect(m.cfg.Server, m.logger)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) loginView() string {
	var s strings.Builder

	title := m.styles.Title.Render("P A R L E Y")
	sub := m.styles.Muted.Render("a tiny chat for the terminal")

	var body strings.Builder
	body.WriteString(title + "\n")
	body.WriteString(sub + "\n\n")
	body.WriteString("Display name:\n")
	body.WriteString(m.nameInput.View() + "\n\n")
	body.WriteString(m.styles.Muted.Render("server  "+m.cfg.Server) + "\n")

	if m.loginErr != "" {
		body.WriteString("\n" + m.styles.Error.Render(m.loginErr) + "\n")
	}
	if m.connecting {
		body.WriteString("\n" + m.styles.Muted.Render("Connecting...") + "\n")
	}

	s.WriteString("\n\n")
	s.WriteString(m.styles.Box.Render(body.String()))
	s.WriteString("\n\n")
	s.WriteString(m.styles.Help.Render("  Enter to join • Esc to quit"))

	return s.String()
}
