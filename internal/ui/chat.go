package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cloudzz-dev/parley/internal/profile"
	"github.com/cloudzz-dev/parley/internal/session"
)

func pickerHeight() int {
	rows := (len(PickerEmojis) + pickerColumns - 1) / pickerColumns
	return rows + 2 // border
}

func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.shutdown()
		return m, tea.Quit
	}
	if m.snap.PickerOpen {
		return m.updatePicker(msg)
	}
	if m.navMode {
		return m.updateNav(msg)
	}

	switch msg.String() {
	case "enter":
		if m.disconnected {
			return m, nil
		}
		m.ctrl.SubmitComposition()
		m.snap = m.ctrl.Snapshot()
		m.input.SetValue(m.snap.Composition)
		return m, nil

	case "ctrl+e":
		m.ctrl.ToggleEmojiPicker()
		m.snap = m.ctrl.Snapshot()
		m.pickerPos = 0
		m.input.Blur()
		m.applyLayout()
		m.refreshViewport()
		return m, nil

	case "ctrl+t":
		m.ctrl.SetTheme(m.snap.Theme.Next())
		m.snap = m.ctrl.Snapshot()
		m.applyTheme()
		m.refreshViewport()
		return m, saveProfile(m.cfg.Profile, profile.Profile{
			Server: m.cfg.Server,
			Name:   m.snap.Self,
			Theme:  m.snap.Theme.String(),
		}, m.logger)

	case "esc":
		if len(m.snap.Messages) == 0 {
			return m, nil
		}
		m.navMode = true
		m.navPos = len(m.snap.Messages) - 1
		m.input.Blur()
		m.refreshViewport()
		return m, nil

	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetComposition(m.input.Value())
	// The send-failure notice is transient; typing again dismisses it.
	if m.snap.Notice != "" && m.ctrl.ClearNotice() {
		m.snap = m.ctrl.Snapshot()
	}
	return m, cmd
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+e":
		m.ctrl.ToggleEmojiPicker()
		m.snap = m.ctrl.Snapshot()
		m.input.Focus()
		m.applyLayout()
		m.refreshViewport()
		return m, textinput.Blink

	case "left", "h":
		if m.pickerPos > 0 {
			m.pickerPos--
		}
	case "right", "l":
		if m.pickerPos < len(PickerEmojis)-1 {
			m.pickerPos++
		}
	case "up", "k":
		if m.pickerPos-pickerColumns >= 0 {
			m.pickerPos -= pickerColumns
		}
	case "down", "j":
		if m.pickerPos+pickerColumns < len(PickerEmojis) {
			m.pickerPos += pickerColumns
		}

	case "enter":
		m.ctrl.PickEmoji(PickerEmojis[m.pickerPos])
		m.snap = m.ctrl.Snapshot()
		m.input.SetValue(m.snap.Composition)
		m.input.CursorEnd()
		m.input.Focus()
		m.applyLayout()
		m.refreshViewport()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.navMode = false
		m.input.Focus()
		m.refreshViewport()
		return m, textinput.Blink

	case "down", "j":
		if m.navPos < len(m.snap.Messages)-1 {
			m.navPos++
			m.refreshViewport()
		}
	case "up", "k":
		if m.navPos > 0 {
			m.navPos--
			m.refreshViewport()
		}

	case "1", "2", "3":
		i := int(msg.String()[0] - '1')
		if m.ctrl.React(m.navPos, QuickReactions[i]) {
			m.snap = m.ctrl.Snapshot()
			m.refreshViewport()
		}
	}
	return m, nil
}

// refreshViewport rebuilds the transcript and scrolls it, to the bottom in
// typing mode or to the selected message in select mode.
func (m *Model) refreshViewport() {
	m.vp.SetContent(m.renderMessages())
	if !m.navMode {
		m.vp.GotoBottom()
		return
	}
	if m.navPos >= 0 && m.navPos < len(m.msgLines) {
		offset := m.msgLines[m.navPos] - m.vp.Height/2
		total := m.vp.TotalLineCount()
		if offset > total-m.vp.Height {
			offset = total - m.vp.Height
		}
		if offset < 0 {
			offset = 0
		}
		m.vp.SetYOffset(offset)
	}
}

// renderMessages lays the log out as grouped runs: one sender header per
// group, bodies beneath it, reactions under each message that has any.
// It also records the first line of every message for scrolling.
func (m *Model) renderMessages() string {
	var b strings.Builder
	m.msgLines = m.msgLines[:0]

	starts := session.GroupStarts(m.snap.Messages)
	line := 0
	for i, msg := range m.snap.Messages {
		if starts[i] {
			if i > 0 {
				b.WriteString("\n")
				line++
			}
			b.WriteString(m.senderHeader(msg.Sender) + "\n")
			line++
		}

		m.msgLines = append(m.msgLines, line)
		body := m.renderBody(msg.Body)
		marker := "  "
		if m.navMode && i == m.navPos {
			marker = m.styles.Selected.Render("▌ ")
		}
		for _, part := range strings.Split(body, "\n") {
			b.WriteString(marker + part + "\n")
			line++
		}

		if tally := m.snap.Reactions[i]; len(tally) > 0 {
			b.WriteString("  " + m.renderReactions(tally) + "\n")
			line++
		}
	}
	return b.String()
}

func (m *Model) senderHeader(sender string) string {
	style := m.styles.OtherSender
	if sender == m.snap.Self {
		style = m.styles.OwnSender
	}
	return m.styles.Badge.Render(" "+initial(sender)+" ") + " " + style.Render(sender)
}

func (m *Model) renderBody(body string) string {
	if strings.HasSuffix(strings.ToLower(body), ".gif") {
		return m.styles.MediaLink.Render("▶ " + body)
	}
	return m.styles.Body.Render(body)
}

// renderReactions prints a tally like "👍 2  ❤️ 1" in a stable order.
func (m *Model) renderReactions(tally map[string]int) string {
	emojis := make([]string, 0, len(tally))
	for emoji := range tally {
		emojis = append(emojis, emoji)
	}
	sort.Strings(emojis)

	parts := make([]string, len(emojis))
	for i, emoji := range emojis {
		parts[i] = m.styles.Reaction.Render(fmt.Sprintf("%s %d", emoji, tally[emoji]))
	}
	return strings.Join(parts, " ")
}

func initial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

func (m Model) sidebarView() string {
	var b strings.Builder
	b.WriteString(m.styles.SidebarHeader.Render(fmt.Sprintf("Users (%d)", len(m.snap.Participants))))
	b.WriteString("\n\n")
	for _, p := range m.snap.Participants {
		name := p.Name
		if p.Name == m.snap.Self {
			name += " (you)"
		}
		b.WriteString(m.styles.Badge.Render(" "+initial(p.Name)+" ") + " " + name + "\n")
		b.WriteString(m.styles.Online.Render("   ● Online") + "\n")
	}
	return m.styles.Sidebar.
		Width(sidebarWidth).
		Height(m.vp.Height).
		Render(b.String())
}

func (m Model) pickerView() string {
	var rows []string
	for start := 0; start < len(PickerEmojis); start += pickerColumns {
		var row strings.Builder
		end := min(start+pickerColumns, len(PickerEmojis))
		for j := start; j < end; j++ {
			cell := " " + PickerEmojis[j] + " "
			if j == m.pickerPos {
				cell = m.styles.PickerSelected.Render(cell)
			}
			row.WriteString(cell)
		}
		rows = append(rows, row.String())
	}
	return m.styles.PickerBox.Render(strings.Join(rows, "\n"))
}

func (m Model) statusLine() string {
	status := fmt.Sprintf("%s • %d online • %s", m.snap.Self, len(m.snap.Participants), m.palette.Name)
	if m.snap.Phase != session.PhaseActive {
		status += " • " + m.snap.Phase.String()
	}
	return status
}

func (m Model) noticeLine() string {
	switch {
	case m.disconnected:
		return m.styles.Error.Render("connection lost, messages can no longer be sent")
	case m.snap.Notice != "":
		return m.styles.Error.Render(m.snap.Notice)
	default:
		return ""
	}
}

func (m Model) helpLine() string {
	switch {
	case m.snap.PickerOpen:
		return m.styles.Help.Render("←↑↓→ choose • Enter insert • Esc close")
	case m.navMode:
		return m.styles.Help.Render("j/k move • 1 👍  2 ❤️  3 😂 • Esc back")
	default:
		return m.styles.Help.Render("Enter send • Ctrl+E emoji • Ctrl+T theme • Esc select • Ctrl+C quit")
	}
}

func (m Model) chatView() string {
	var s strings.Builder

	title := m.styles.Title.Render("💬 Parley")
	status := m.styles.Muted.Render(m.statusLine())
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(status) - 1
	if gap < 1 {
		gap = 1
	}
	s.WriteString(title + strings.Repeat(" ", gap) + status)
	s.WriteString("\n")
	if m.width > 2 {
		s.WriteString(strings.Repeat("─", m.width-2))
	}
	s.WriteString("\n")

	var main strings.Builder
	main.WriteString(m.vp.View())
	main.WriteString("\n")
	if m.snap.PickerOpen {
		main.WriteString(m.pickerView())
		main.WriteString("\n")
	}
	main.WriteString(m.noticeLine())
	main.WriteString("\n")
	main.WriteString(m.input.View())
	main.WriteString("\n")
	main.WriteString(m.helpLine())

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), " ", main.String()))
	return s.String()
}

func (m Model) View() string {
	switch m.view {
	case viewLogin:
		return m.loginView()
	case viewChat:
		return m.chatView()
	}
	return ""
}
