package session

import (
	"reflect"
	"testing"
)

func TestMessageLogAppend(t *testing.T) {
	var l MessageLog

	msgs := []Message{
		{Sender: "alice", Body: "one"},
		{Sender: "bob", Body: "two"},
		{Sender: "alice", Body: "one"}, // identical content is still a new entry
	}
	for i, m := range msgs {
		if pos := l.Append(m); pos != i {
			t.Fatalf("Append #%d returned position %d", i, pos)
		}
	}
	if l.Len() != len(msgs) {
		t.Fatalf("Len() = %d, want %d", l.Len(), len(msgs))
	}
	for i, want := range msgs {
		got, ok := l.Get(i)
		if !ok || got != want {
			t.Errorf("Get(%d) = %v, %v; want %v, true", i, got, ok, want)
		}
	}
}

func TestMessageLogGetOutOfRange(t *testing.T) {
	var l MessageLog
	l.Append(Message{Sender: "alice", Body: "hi"})

	for _, pos := range []int{-1, 1, 99} {
		if _, ok := l.Get(pos); ok {
			t.Errorf("Get(%d) = ok, want missing", pos)
		}
	}
}

func TestMessageLogAllIsACopy(t *testing.T) {
	var l MessageLog
	l.Append(Message{Sender: "alice", Body: "hi"})

	got := l.All()
	got[0].Body = "changed"

	want := Message{Sender: "alice", Body: "hi"}
	if again, _ := l.Get(0); again != want {
		t.Errorf("mutating All() result changed the log: %#v", again)
	}
	if !reflect.DeepEqual(l.All(), []Message{want}) {
		t.Errorf("All() = %#v, want %#v", l.All(), []Message{want})
	}
}
