package session

import (
	"errors"
	"log/slog"

	"github.com/cloudzz-dev/parley/internal/protocol"
)

// Phase is where the session is in its lifecycle. It only ever moves
// forward: Connecting to Registering to Active.
type Phase int

const (
	// PhaseConnecting covers everything before a display name is known.
	PhaseConnecting Phase = iota
	// PhaseRegistering means the register frame went out and nothing has
	// come back yet. The protocol has no explicit ack.
	PhaseRegistering
	// PhaseActive begins with the first fully decoded inbound frame.
	PhaseActive
)

func (p Phase) String() string {
	switch p {
	case PhaseConnecting:
		return "connecting"
	case PhaseRegistering:
		return "registering"
	case PhaseActive:
		return "active"
	}
	return "unknown"
}

// Sender hands one encoded frame to the transport. Send is best effort and
// must not block; the transport owns queueing and delivery.
type Sender interface {
	Send(frame []byte) error
}

// Controller owns all session state and is the only writer to it. Every
// method reports whether the state visible in a Snapshot changed, which is
// the render layer's cue to redraw. The controller is not safe for
// concurrent use; the update loop that drives it is single threaded and
// the transport delivers frames through that same loop.
type Controller struct {
	self        string
	phase       Phase
	roster      Roster
	log         MessageLog
	reactions   ReactionLedger
	theme       Theme
	pickerOpen  bool
	composition string
	notice      string

	tx     Sender
	logger *slog.Logger
}

// New creates the session for a chosen display name and registers it right
// away: exactly one register frame goes out and the session enters
// PhaseRegistering. A failed send is logged and the session carries on;
// the server may still answer, and if it never does the phase simply
// stays put.
func New(displayName string, tx Sender, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		self:   displayName,
		phase:  PhaseRegistering,
		theme:  DefaultTheme,
		tx:     tx,
		logger: logger,
	}
	data, err := protocol.Encode(protocol.Register{DisplayName: displayName})
	if err != nil {
		c.logger.Error("encode register frame", "error", err)
		return c
	}
	if err := c.tx.Send(data); err != nil {
		c.logger.Error("send register frame", "error", err)
	}
	c.logger.Info("registering", "name", displayName)
	return c
}

// Self returns the local display name.
func (c *Controller) Self() string { return c.self }

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// HandleFrame feeds one raw inbound frame through the session and reports
// whether a redraw is needed. Wire input can never take the session down:
// malformed frames are dropped, and well-formed frames with a missing
// payload are logged and ignored. Any frame that fully decodes counts as
// proof the server is talking to us and completes registration.
func (c *Controller) HandleFrame(raw []byte) bool {
	frame, err := protocol.Decode(raw)
	if err != nil {
		if errors.Is(err, protocol.ErrMissingPayload) {
			c.logger.Warn("ignoring frame with missing payload", "error", err)
		} else {
			c.logger.Warn("dropping undecodable frame", "error", err)
		}
		return false
	}

	if c.phase == PhaseRegistering {
		c.phase = PhaseActive
		c.logger.Info("session active")
	}

	switch f := frame.(type) {
	case protocol.Roster:
		c.roster.Replace(f.Names)
		c.logger.Debug("roster replaced", "participants", c.roster.Len())
		return true
	case protocol.ChatMessage:
		pos := c.log.Append(Message{Sender: f.Sender, Body: f.Body})
		c.logger.Debug("message appended", "position", pos, "sender", f.Sender)
		return true
	default:
		// A register frame carries nothing a client can use.
		c.logger.Debug("ignoring inbound register frame")
		return false
	}
}

// SetComposition mirrors the input buffer into the session. Typing is not a
// redraw trigger; the input widget paints itself.
func (c *Controller) SetComposition(text string) {
	c.composition = text
}

// Composition returns the current draft text.
func (c *Controller) Composition() string { return c.composition }

// SubmitComposition sends the draft as a chat message and clears it. An
// empty draft does nothing at all. The message is not appended locally;
// it shows up when the server echoes it back, same as on every other
// client. A send failure keeps that contract: the draft is still cleared,
// the failure becomes a notice, and the message is simply gone.
func (c *Controller) SubmitComposition() bool {
	if c.composition == "" {
		return false
	}
	body := c.composition
	c.composition = ""
	changed := c.notice != ""
	c.notice = ""

	data, err := protocol.Encode(protocol.ChatMessage{Sender: c.self, Body: body})
	if err != nil {
		c.logger.Error("encode chat frame", "error", err)
		c.notice = "message could not be encoded"
		return true
	}
	if err := c.tx.Send(data); err != nil {
		c.logger.Error("send chat frame", "error", err)
		c.notice = "send failed, message was not delivered"
		return true
	}
	c.logger.Debug("chat frame sent", "bytes", len(data))
	return changed
}

// React adds one reaction to the message at pos. Positions outside the log
// are refused so the ledger never holds a key with no message behind it.
func (c *Controller) React(pos int, emoji string) bool {
	if pos < 0 || pos >= c.log.Len() {
		c.logger.Warn("reaction for unknown message", "position", pos)
		return false
	}
	count := c.reactions.Increment(pos, emoji)
	c.logger.Debug("reaction added", "position", pos, "emoji", emoji, "count", count)
	return true
}

// SetTheme selects a visual preset.
func (c *Controller) SetTheme(t Theme) bool {
	c.theme = t
	return true
}

// Theme returns the selected preset.
func (c *Controller) Theme() Theme { return c.theme }

// ToggleEmojiPicker flips the picker open or closed.
func (c *Controller) ToggleEmojiPicker() bool {
	c.pickerOpen = !c.pickerOpen
	return true
}

// PickEmoji appends emoji to the draft, separated by a space, and closes
// the picker no matter how it was opened.
func (c *Controller) PickEmoji(emoji string) bool {
	c.composition = c.composition + " " + emoji
	c.pickerOpen = false
	return true
}

// ClearNotice drops the transient notice once the render layer has shown
// it long enough.
func (c *Controller) ClearNotice() bool {
	if c.notice == "" {
		return false
	}
	c.notice = ""
	return true
}

// Snapshot is an immutable copy of everything the render layer may draw.
// Mutating a snapshot never touches the session.
type Snapshot struct {
	Phase        Phase
	Self         string
	Participants []Participant
	Messages     []Message
	Reactions    map[int]map[string]int
	Theme        Theme
	PickerOpen   bool
	Composition  string
	Notice       string
}

// Snapshot copies the current session state out for rendering.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Phase:        c.phase,
		Self:         c.self,
		Participants: c.roster.Participants(),
		Messages:     c.log.All(),
		Reactions:    c.reactions.All(),
		Theme:        c.theme,
		PickerOpen:   c.pickerOpen,
		Composition:  c.composition,
		Notice:       c.notice,
	}
}
