package session

// Message is one chat line as the session keeps it. Messages are immutable
// once appended and their log position is their identity for the rest of
// the session; reactions are keyed by that position.
type Message struct {
	Sender string
	Body   string
}

// MessageLog is the append-only message history in receipt order. Sending
// does not touch it: a sent message only appears once the server echoes it
// back, so the log is the same on every client.
type MessageLog struct {
	messages []Message
}

// Append adds m at the end and returns its position. Positions start at 0
// and grow by exactly one per append; nothing is ever removed or reordered.
func (l *MessageLog) Append(m Message) int {
	l.messages = append(l.messages, m)
	return len(l.messages) - 1
}

// Get returns the message at pos, or false if pos has never been assigned.
func (l *MessageLog) Get(pos int) (Message, bool) {
	if pos < 0 || pos >= len(l.messages) {
		return Message{}, false
	}
	return l.messages[pos], true
}

// Len reports the number of messages appended so far.
func (l *MessageLog) Len() int { return len(l.messages) }

// All returns a copy of the log in receipt order.
func (l *MessageLog) All() []Message {
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}
