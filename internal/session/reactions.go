package session

// ReactionLedger tallies reaction emoji per message position. Tallies are
// created lazily on first use and only ever grow; reacting twice with the
// same emoji counts twice, there is no per-user dedup anywhere in the
// protocol to lean on.
type ReactionLedger struct {
	tallies map[int]map[string]int
}

// Increment adds one to the count of emoji on the message at pos and
// returns the new count. The ledger does not know how long the log is;
// callers must only pass positions that exist.
func (rl *ReactionLedger) Increment(pos int, emoji string) int {
	if rl.tallies == nil {
		rl.tallies = make(map[int]map[string]int)
	}
	tally := rl.tallies[pos]
	if tally == nil {
		tally = make(map[string]int)
		rl.tallies[pos] = tally
	}
	tally[emoji]++
	return tally[emoji]
}

// Count returns the current tally of emoji on the message at pos.
func (rl *ReactionLedger) Count(pos int, emoji string) int {
	return rl.tallies[pos][emoji]
}

// For returns a copy of every tally on the message at pos. Messages nobody
// reacted to yield an empty map.
func (rl *ReactionLedger) For(pos int) map[string]int {
	out := make(map[string]int, len(rl.tallies[pos]))
	for emoji, n := range rl.tallies[pos] {
		out[emoji] = n
	}
	return out
}

// All returns a copy of the whole ledger keyed by message position.
// Positions nobody reacted to are absent.
func (rl *ReactionLedger) All() map[int]map[string]int {
	out := make(map[int]map[string]int, len(rl.tallies))
	for pos, tally := range rl.tallies {
		cp := make(map[string]int, len(tally))
		for emoji, n := range tally {
			cp[emoji] = n
		}
		out[pos] = cp
	}
	return out
}
