// Package protocol implements the JSON wire codec shared with the chat
// server. Every frame is a single JSON object with a messageType
// discriminant and at most one payload field; "message" frames carry their
// sender and body as a nested JSON document inside the data string.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Wire discriminants.
const (
	typeUsers    = "users"
	typeRegister = "register"
	typeMessage  = "message"
)

// ErrMissingPayload reports a frame whose discriminant is known but whose
// required payload field is null or absent. Such frames are well-formed
// JSON and must be ignored rather than treated as garbage.
var ErrMissingPayload = errors.New("required payload field missing")

// ErrUnknownType reports a frame whose discriminant is not part of the
// protocol. The frame is dropped; new server-side kinds must not kill old
// clients.
var ErrUnknownType = errors.New("unknown message type")

// Frame is one decoded protocol message. The set of implementations is
// closed: Roster, Register and ChatMessage are the only frame kinds.
type Frame interface {
	frameType() string
}

// Roster is the authoritative list of connected participants. It replaces
// any previously known list wholesale; the wire never patches a roster
// incrementally.
type Roster struct {
	Names []string
}

// Register announces a display name to the server. Clients send it exactly
// once, immediately after connecting.
type Register struct {
	DisplayName string
}

// ChatMessage is a single chat line attributed to a sender.
type ChatMessage struct {
	Sender string
	Body   string
}

func (Roster) frameType() string      { return typeUsers }
func (Register) frameType() string    { return typeRegister }
func (ChatMessage) frameType() string { return typeMessage }

// envelope is the raw wire shape. Both payload keys are always emitted;
// which one is non-null depends on MessageType.
type envelope struct {
	MessageType string   `json:"messageType"`
	DataArray   []string `json:"dataArray"`
	Data        *string  `json:"data"`
}

// chatPayload is the nested document inside a "message" frame's data field.
type chatPayload struct {
	From    string `json:"from"`
	Message string `json:"message"`
}

// Decode parses one wire frame. Malformed JSON, an undecodable nested
// payload and an unknown discriminant all return an error; a known
// discriminant with a null payload returns an error wrapping
// ErrMissingPayload so callers can tell a protocol violation from noise.
func Decode(data []byte) (Frame, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("malformed frame: %w", err)
	}
	switch env.MessageType {
	case typeUsers:
		if env.DataArray == nil {
			return nil, fmt.Errorf("%s frame: %w", typeUsers, ErrMissingPayload)
		}
		return Roster{Names: env.DataArray}, nil
	case typeRegister:
		if env.Data == nil {
			return nil, fmt.Errorf("%s frame: %w", typeRegister, ErrMissingPayload)
		}
		return Register{DisplayName: *env.Data}, nil
	case typeMessage:
		if env.Data == nil {
			return nil, fmt.Errorf("%s frame: %w", typeMessage, ErrMissingPayload)
		}
		var p chatPayload
		if err := json.Unmarshal([]byte(*env.Data), &p); err != nil {
			return nil, fmt.Errorf("malformed message payload: %w", err)
		}
		return ChatMessage{Sender: p.From, Body: p.Message}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownType, env.MessageType)
	}
}

// Encode serializes f into its wire form. A nil roster encodes as an empty
// dataArray, never null: every encoded frame must decode back without being
// mistaken for a violation.
func Encode(f Frame) ([]byte, error) {
	env := envelope{MessageType: f.frameType()}
	switch f := f.(type) {
	case Roster:
		env.DataArray = f.Names
		if env.DataArray == nil {
			env.DataArray = []string{}
		}
	case Register:
		name := f.DisplayName
		env.Data = &name
	case ChatMessage:
		nested, err := json.Marshal(chatPayload{From: f.Sender, Message: f.Body})
		if err != nil {
			return nil, fmt.Errorf("encode message payload: %w", err)
		}
		s := string(nested)
		env.Data = &s
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return data, nil
}
