package session

import (
	"reflect"
	"testing"
)

func TestGroupStarts(t *testing.T) {
	msg := func(sender string) Message { return Message{Sender: sender, Body: "x"} }

	tests := []struct {
		name string
		in   []Message
		want []bool
	}{
		{
			name: "empty log",
			in:   nil,
			want: []bool{},
		},
		{
			name: "single message",
			in:   []Message{msg("alice")},
			want: []bool{true},
		},
		{
			name: "run collapses under one header",
			in:   []Message{msg("alice"), msg("alice"), msg("alice")},
			want: []bool{true, false, false},
		},
		{
			name: "alternating senders all start groups",
			in:   []Message{msg("alice"), msg("bob"), msg("alice"), msg("bob")},
			want: []bool{true, true, true, true},
		},
		{
			name: "returning sender starts a fresh group",
			in:   []Message{msg("alice"), msg("alice"), msg("bob"), msg("alice")},
			want: []bool{true, false, true, true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GroupStarts(tt.in)
			if len(got) != len(tt.in) {
				t.Fatalf("GroupStarts returned %d entries for %d messages", len(got), len(tt.in))
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GroupStarts(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
