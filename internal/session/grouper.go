package session

// GroupStarts reports, for each message, whether it opens a new visual
// group. The first message always does; any later message does exactly when
// its sender differs from the one before it. Consecutive messages from the
// same sender collapse under one header, however far apart in time they
// arrived.
func GroupStarts(messages []Message) []bool {
	starts := make([]bool, len(messages))
	for i := range messages {
		starts[i] = i == 0 || messages[i].Sender != messages[i-1].Sender
	}
	return starts
}
