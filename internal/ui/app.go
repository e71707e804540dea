// Package ui is the terminal front end. It renders snapshots of the
// session and translates key presses into session intents; all chat state
// lives behind the session controller, never in the model.
package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloudzz-dev/parley/internal/config"
	"github.com/cloudzz-dev/parley/internal/profile"
	"github.com/cloudzz-dev/parley/internal/session"
	"github.com/cloudzz-dev/parley/internal/transport"
)

type viewState int

const (
	viewLogin viewState = iota
	viewChat
)

const sidebarWidth = 22

// --- Messages ---

type connectedMsg struct {
	conn   *transport.Conn
	frames <-chan []byte
	cancel func()
}

type connectErrMsg struct{ err error }

type frameMsg []byte

type disconnectedMsg struct{}

// --- Model ---

type Model struct {
	cfg    config.Config
	logger *slog.Logger

	view   viewState
	width  int
	height int

	// Login
	nameInput  textinput.Model
	loginErr   string
	connecting bool

	// Wiring
	conn   *transport.Conn
	frames <-chan []byte
	cancel func()
	ctrl   *session.Controller

	// Chat
	snap         session.Snapshot
	input        textinput.Model
	vp           viewport.Model
	palette      Palette
	styles       Styles
	navMode      bool
	navPos       int
	pickerPos    int
	msgLines     []int
	disconnected bool
}

// NewModel builds the initial model from resolved configuration. The
// session itself does not exist yet; it is created once the user joins.
func NewModel(cfg config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	nameInput := textinput.New()
	nameInput.Placeholder = "Display name"
	nameInput.CharLimit = 32
	nameInput.Width = 30
	nameInput.SetValue(cfg.Name)
	nameInput.Focus()

	input := textinput.New()
	input.Placeholder = "Type a message..."
	input.CharLimit = 1000
	input.Width = 50

	theme, _ := session.ParseTheme(cfg.Theme)
	palette := PaletteFor(theme)

	return Model{
		cfg:       cfg,
		logger:    logger,
		view:      viewLogin,
		nameInput: nameInput,
		input:     input,
		vp:        viewport.New(80, 20),
		palette:   palette,
		styles:    NewStyles(palette),
	}
}

// --- Commands ---

// connect dials the server and wires a fresh relay to it. The relay and its
// subscription come back with the connection so the update loop can start
// pulling frames.
func connect(url string, logger *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		relay := transport.NewRelay()
		frames, cancel := relay.Subscribe()
		conn, err := transport.Dial(url, relay, logger)
		if err != nil {
			cancel()
			return connectErrMsg{err: err}
		}
		return connectedMsg{conn: conn, frames: frames, cancel: cancel}
	}
}

// waitForFrame blocks on the subscription until the next frame or the end
// of the connection. Re-armed after every delivery.
func waitForFrame(frames <-chan []byte) tea.Cmd {
	return func() tea.Msg {
		frame, ok := <-frames
		if !ok {
			return disconnectedMsg{}
		}
		return frameMsg(frame)
	}
}

// saveProfile persists the prefill record off the update loop.
func saveProfile(profileName string, p profile.Profile, logger *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		if err := profile.Save(config.Dir(), profileName, p); err != nil {
			logger.Warn("save profile", "error", err)
		}
		return nil
	}
}

// --- Init ---

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.view {
		case viewLogin:
			return m.updateLogin(msg)
		case viewChat:
			return m.updateChat(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout()
		if m.ctrl != nil {
			m.refreshViewport()
		}
		return m, nil

	case connectedMsg:
		m.conn = msg.conn
		m.frames = msg.frames
		m.cancel = msg.cancel
		m.connecting = false
		m.loginErr = ""

		name := m.nameInput.Value()
		m.ctrl = session.New(name, m.conn, m.logger)
		if theme, ok := session.ParseTheme(m.cfg.Theme); ok {
			m.ctrl.SetTheme(theme)
		}
		m.view = viewChat
		m.nameInput.Blur()
		m.input.Focus()
		m.snap = m.ctrl.Snapshot()
		m.applyTheme()
		m.applyLayout()
		m.refreshViewport()
		return m, tea.Batch(
			waitForFrame(m.frames),
			saveProfile(m.cfg.Profile, profile.Profile{
				Server: m.cfg.Server,
				Name:   name,
				Theme:  m.snap.Theme.String(),
			}, m.logger),
			textinput.Blink,
		)

	case connectErrMsg:
		m.connecting = false
		m.loginErr = msg.err.Error()
		return m, nil

	case frameMsg:
		if m.ctrl == nil {
			return m, nil
		}
		if m.ctrl.HandleFrame(msg) {
			m.snap = m.ctrl.Snapshot()
			m.refreshViewport()
		}
		return m, waitForFrame(m.frames)

	case disconnectedMsg:
		m.disconnected = true
		m.logger.Warn("connection lost")
		return m, nil
	}

	return m, nil
}

// applyTheme rebuilds the styles from the session's current theme.
func (m *Model) applyTheme() {
	m.palette = PaletteFor(m.snap.Theme)
	m.styles = NewStyles(m.palette)
}

// applyLayout resizes the viewport for the current terminal and whatever
// chrome is showing.
func (m *Model) applyLayout() {
	if m.width == 0 {
		return
	}
	w := m.width - sidebarWidth - 4
	if w < 20 {
		w = 20
	}
	h := m.height - 7
	if m.snap.PickerOpen {
		h -= pickerHeight()
	}
	if h < 3 {
		h = 3
	}
	m.vp.Width = w
	m.vp.Height = h
}

// shutdown tears the connection down before quitting.
func (m *Model) shutdown() {
	if m.conn != nil {
		m.conn.Close()
	}
	if m.cancel != nil {
		m.cancel()
	}
}
