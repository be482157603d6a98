package http

import (
	"encoding/json"
	"testing"

	"github.com/VaradVelangi/Sync-Slate/internal/core"
	"github.com/VaradVelangi/Sync-Slate/internal/proto"
)

func TestInboundJoinRequest(t *testing.T) {
	client := core.NewClient("s1")

	cmd, protoErr, err := inboundToCommand(client, proto.Inbound{
		Event: proto.EventJoinRequest,
		Data:  json.RawMessage(`{"roomId":"r1","username":"alice"}`),
	})
	if err != nil || protoErr != nil {
		t.Fatalf("unexpected errors: %v %v", err, protoErr)
	}
	if cmd.Kind != core.CommandJoin || cmd.RoomID != "r1" || cmd.Username != "alice" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestInboundSendMessageRelabeled(t *testing.T) {
	client := core.NewClient("s1")

	payload := `{"message":{"text":"hi"}}`
	cmd, protoErr, err := inboundToCommand(client, proto.Inbound{
		Event: proto.EventSendMessage,
		Data:  json.RawMessage(payload),
	})
	if err != nil || protoErr != nil {
		t.Fatalf("unexpected errors: %v %v", err, protoErr)
	}
	if cmd.Kind != core.CommandBroadcast || cmd.Event != proto.EventReceiveMessage {
		t.Fatalf("send-message must be relabeled receive-message: %+v", cmd)
	}
	if string(cmd.Data) != payload {
		t.Fatalf("payload must pass through untouched: %s", cmd.Data)
	}
}

func TestInboundSyncFileStructureStripsRoutingKey(t *testing.T) {
	client := core.NewClient("s1")

	cmd, protoErr, err := inboundToCommand(client, proto.Inbound{
		Event: proto.EventSyncFileStructure,
		Data:  json.RawMessage(`{"fileStructure":{"id":"root"},"openFiles":[],"activeFile":null,"socketId":"s2"}`),
	})
	if err != nil || protoErr != nil {
		t.Fatalf("unexpected errors: %v %v", err, protoErr)
	}
	if cmd.Kind != core.CommandUnicast || cmd.Target != "s2" {
		t.Fatalf("unexpected command: %+v", cmd)
	}

	var out proto.SyncFileStructureData
	if err := json.Unmarshal(cmd.Data, &out); err != nil {
		t.Fatalf("unmarshal outbound payload: %v", err)
	}
	if out.SocketID != "" {
		t.Fatalf("routing key must be stripped from the delivered payload: %+v", out)
	}
	if string(out.FileStructure) != `{"id":"root"}` {
		t.Fatalf("file structure altered: %s", out.FileStructure)
	}
}

func TestInboundStatusEvents(t *testing.T) {
	client := core.NewClient("s1")

	cmd, _, err := inboundToCommand(client, proto.Inbound{
		Event: proto.EventUserOffline,
		Data:  json.RawMessage(`{"socketId":"s9"}`),
	})
	if err != nil {
		t.Fatalf("map offline: %v", err)
	}
	if cmd.Kind != core.CommandSetStatus || cmd.SocketID != "s9" || cmd.Status != core.StatusOffline {
		t.Fatalf("unexpected offline command: %+v", cmd)
	}

	cmd, _, err = inboundToCommand(client, proto.Inbound{
		Event: proto.EventUserOnline,
		Data:  json.RawMessage(`{"socketId":"s9"}`),
	})
	if err != nil {
		t.Fatalf("map online: %v", err)
	}
	if cmd.Status != core.StatusOnline {
		t.Fatalf("unexpected online command: %+v", cmd)
	}
}

func TestInboundRequestDrawingEnrichedWithSender(t *testing.T) {
	client := core.NewClient("s1")

	cmd, _, err := inboundToCommand(client, proto.Inbound{Event: proto.EventRequestDrawing})
	if err != nil {
		t.Fatalf("map request-drawing: %v", err)
	}
	if cmd.Kind != core.CommandBroadcast || cmd.Event != proto.EventRequestDrawing {
		t.Fatalf("unexpected command: %+v", cmd)
	}

	var data proto.SocketIDData
	if err := json.Unmarshal(cmd.Data, &data); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if data.SocketID != "s1" {
		t.Fatalf("payload must carry the requester's identity, got %q", data.SocketID)
	}
}

func TestInboundUnknownEvent(t *testing.T) {
	client := core.NewClient("s1")

	cmd, protoErr, err := inboundToCommand(client, proto.Inbound{Event: "no-such-event"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd != nil {
		t.Fatalf("unknown events must not produce a command: %+v", cmd)
	}
	if protoErr == nil || protoErr.Code != core.ErrCodeInvalidMessage {
		t.Fatalf("expected invalid_message error, got %+v", protoErr)
	}
}

func TestOutboundStatusNaming(t *testing.T) {
	out := outboundFromEvent(&core.Event{
		Kind:     core.EventStatusChanged,
		SocketID: "s1",
		Status:   core.StatusOffline,
	})
	if out.Event != proto.EventUserOffline {
		t.Fatalf("expected offline event name, got %q", out.Event)
	}

	out = outboundFromEvent(&core.Event{
		Kind:     core.EventStatusChanged,
		SocketID: "s1",
		Status:   core.StatusOnline,
	})
	if out.Event != proto.EventUserOnline {
		t.Fatalf("expected online event name, got %q", out.Event)
	}
}

func TestOutboundTypingNaming(t *testing.T) {
	p := core.Participant{SocketID: "s1", Username: "alice", RoomID: "r1", Typing: true, CursorPosition: 7}

	out := outboundFromEvent(&core.Event{Kind: core.EventTyping, Typing: true, User: p})
	if out.Event != proto.EventTypingStart {
		t.Fatalf("expected typing-start, got %q", out.Event)
	}
	data, ok := out.Data.(proto.UserData)
	if !ok {
		t.Fatalf("unexpected data type %T", out.Data)
	}
	if data.User.CursorPosition != 7 || !data.User.Typing {
		t.Fatalf("typing broadcast must carry the full record: %+v", data.User)
	}

	out = outboundFromEvent(&core.Event{Kind: core.EventTyping, Typing: false, User: p})
	if out.Event != proto.EventTypingPause {
		t.Fatalf("expected typing-pause, got %q", out.Event)
	}
}

func TestOutboundUsernameExistsHasNoPayload(t *testing.T) {
	out := outboundFromEvent(&core.Event{Kind: core.EventUsernameExists})
	if out.Event != proto.EventUsernameExists || out.Data != nil {
		t.Fatalf("unexpected rejection frame: %+v", out)
	}
}
