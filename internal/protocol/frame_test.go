package protocol

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Frame
	}{
		{
			name: "users frame",
			in:   `{"messageType":"users","dataArray":["alice","bob"],"data":null}`,
			want: Roster{Names: []string{"alice", "bob"}},
		},
		{
			name: "empty roster is a valid roster",
			in:   `{"messageType":"users","dataArray":[],"data":null}`,
			want: Roster{Names: []string{}},
		},
		{
			name: "register frame",
			in:   `{"messageType":"register","dataArray":null,"data":"alice"}`,
			want: Register{DisplayName: "alice"},
		},
		{
			name: "message frame with nested payload",
			in:   `{"messageType":"message","dataArray":null,"data":"{\"from\":\"bob\",\"message\":\"hello\"}"}`,
			want: ChatMessage{Sender: "bob", Body: "hello"},
		},
		{
			name: "message body keeps unicode and emoji",
			in:   `{"messageType":"message","dataArray":null,"data":"{\"from\":\"héloïse\",\"message\":\"salut 👋\"}"}`,
			want: ChatMessage{Sender: "héloïse", Body: "salut 👋"},
		},
		{
			name: "absent payload keys decode same as null",
			in:   `{"messageType":"users","dataArray":["alice"]}`,
			want: Roster{Names: []string{"alice"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.in))
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{
			name:    "users without dataArray",
			in:      `{"messageType":"users","dataArray":null,"data":null}`,
			wantErr: ErrMissingPayload,
		},
		{
			name:    "register without data",
			in:      `{"messageType":"register","dataArray":null,"data":null}`,
			wantErr: ErrMissingPayload,
		},
		{
			name:    "message without data",
			in:      `{"messageType":"message","dataArray":null,"data":null}`,
			wantErr: ErrMissingPayload,
		},
		{
			name:    "unknown discriminant",
			in:      `{"messageType":"presence","dataArray":null,"data":"x"}`,
			wantErr: ErrUnknownType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.in))
			if got != nil {
				t.Errorf("Decode(%q) = %#v, want nil frame", tt.in, got)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "not json", in: `not even json`},
		{name: "truncated object", in: `{"messageType":"users"`},
		{name: "wrong payload type", in: `{"messageType":"users","dataArray":"alice"}`},
		{name: "nested payload not json", in: `{"messageType":"message","data":"hello there"}`},
		{name: "nested payload truncated", in: `{"messageType":"message","data":"{\"from\":\"bob\""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.in))
			if err == nil {
				t.Fatalf("Decode(%q) = %#v, want error", tt.in, got)
			}
			if errors.Is(err, ErrMissingPayload) {
				t.Errorf("Decode(%q) reported a missing payload, want plain decode error", tt.in)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		frame Frame
		want  string
	}{
		{
			name:  "register",
			frame: Register{DisplayName: "alice"},
			want:  `{"messageType":"register","dataArray":null,"data":"alice"}`,
		},
		{
			name:  "roster",
			frame: Roster{Names: []string{"alice", "bob"}},
			want:  `{"messageType":"users","dataArray":["alice","bob"],"data":null}`,
		},
		{
			name:  "nil roster becomes empty list not null",
			frame: Roster{},
			want:  `{"messageType":"users","dataArray":[],"data":null}`,
		},
		{
			name:  "message nests a second json document",
			frame: ChatMessage{Sender: "bob", Body: "hello"},
			want:  `{"messageType":"message","dataArray":null,"data":"{\"from\":\"bob\",\"message\":\"hello\"}"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.frame)
			if err != nil {
				t.Fatalf("Encode(%#v) error = %v", tt.frame, err)
			}
			if string(got) != tt.want {
				t.Errorf("Encode(%#v) = %s, want %s", tt.frame, got, tt.want)
			}
		})
	}
}

// Every frame must survive an encode/decode round trip unchanged, so that
// anything this client says could have been said to it.
func TestRoundTrip(t *testing.T) {
	frames := []Frame{
		Register{DisplayName: "alice"},
		Register{DisplayName: ""},
		Roster{Names: []string{"alice", "bob", "carol"}},
		Roster{Names: []string{}},
		ChatMessage{Sender: "alice", Body: "plain text"},
		ChatMessage{Sender: "bob", Body: `quotes " and \ backslashes`},
		ChatMessage{Sender: "carol", Body: "emoji 🎉 and\nnewlines"},
		ChatMessage{Sender: "dave", Body: `{"from":"x","message":"y"}`},
	}
	for _, frame := range frames {
		data, err := Encode(frame)
		if err != nil {
			t.Fatalf("Encode(%#v) error = %v", frame, err)
		}
		got, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode(Encode(%#v)) error = %v, wire %s", frame, err, data)
		}
		if !reflect.DeepEqual(got, frame) {
			t.Errorf("round trip changed %#v into %#v", frame, got)
		}
	}
}

func TestEncodeAlwaysEmitsBothPayloadKeys(t *testing.T) {
	for _, frame := range []Frame{Register{DisplayName: "a"}, Roster{Names: []string{"a"}}, ChatMessage{Sender: "a", Body: "b"}} {
		data, err := Encode(frame)
		if err != nil {
			t.Fatalf("Encode(%#v) error = %v", frame, err)
		}
		for _, key := range []string{`"messageType"`, `"dataArray"`, `"data"`} {
			if !strings.Contains(string(data), key) {
				t.Errorf("Encode(%#v) = %s, missing %s", frame, data, key)
			}
		}
	}
}
