// Package session holds the client-side core of a chat session: who is
// present, what has been said, how messages were reacted to, and the state
// machine that moves all of it forward. Nothing in here touches the network
// or the terminal; the transport feeds frames in and the render layer reads
// snapshots out.
package session

import "net/url"

// avatarBase is the service every participant avatar is fetched from. The
// image is derived purely from the display name, so two clients always
// agree on a participant's picture without exchanging it.
const avatarBase = "https://avatars.dicebear.com/api/adventurer-neutral/"

// Participant is one entry in the roster.
type Participant struct {
	Name      string
	AvatarURL string
}

// AvatarURL derives the avatar image location for a display name.
func AvatarURL(name string) string {
	return avatarBase + url.PathEscape(name) + ".svg"
}

// Roster is the current participant list. The server owns it: each users
// frame replaces the list wholesale, in server order, and there is no
// incremental add or remove.
type Roster struct {
	participants []Participant
}

// Replace commits names as the new authoritative list. An empty list is a
// valid roster, not an error.
func (r *Roster) Replace(names []string) {
	ps := make([]Participant, len(names))
	for i, name := range names {
		ps[i] = Participant{Name: name, AvatarURL: AvatarURL(name)}
	}
	r.participants = ps
}

// Participants returns a copy of the committed list in server order.
func (r *Roster) Participants() []Participant {
	out := make([]Participant, len(r.participants))
	copy(out, r.participants)
	return out
}

// Len reports how many participants are present.
func (r *Roster) Len() int { return len(r.participants) }
