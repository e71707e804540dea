package session

import (
	"reflect"
	"testing"
)

func TestAvatarURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain name",
			in:   "alice",
			want: "https://avatars.dicebear.com/api/adventurer-neutral/alice.svg",
		},
		{
			name: "space is escaped",
			in:   "alice smith",
			want: "https://avatars.dicebear.com/api/adventurer-neutral/alice%20smith.svg",
		},
		{
			name: "slash is escaped",
			in:   "a/b",
			want: "https://avatars.dicebear.com/api/adventurer-neutral/a%2Fb.svg",
		},
		{
			name: "unicode name",
			in:   "héloïse",
			want: "https://avatars.dicebear.com/api/adventurer-neutral/h%C3%A9lo%C3%AFse.svg",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AvatarURL(tt.in); got != tt.want {
				t.Errorf("AvatarURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRosterReplace(t *testing.T) {
	var r Roster

	r.Replace([]string{"alice", "bob"})
	got := r.Participants()
	want := []Participant{
		{Name: "alice", AvatarURL: AvatarURL("alice")},
		{Name: "bob", AvatarURL: AvatarURL("bob")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("after first replace: %#v, want %#v", got, want)
	}

	// A replace is wholesale: participants absent from the new list are
	// gone, and the new order is the server's order.
	r.Replace([]string{"carol", "alice"})
	got = r.Participants()
	if len(got) != 2 || got[0].Name != "carol" || got[1].Name != "alice" {
		t.Fatalf("after second replace: %#v", got)
	}

	r.Replace(nil)
	if r.Len() != 0 {
		t.Errorf("after empty replace: Len() = %d, want 0", r.Len())
	}
}

func TestRosterParticipantsIsACopy(t *testing.T) {
	var r Roster
	r.Replace([]string{"alice", "bob"})

	got := r.Participants()
	got[0].Name = "mallory"

	if again := r.Participants(); again[0].Name != "alice" {
		t.Errorf("mutating a returned slice changed the roster: %#v", again)
	}
}
