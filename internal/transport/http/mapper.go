package http

import (
	"encoding/json"

	"github.com/VaradVelangi/Sync-Slate/internal/core"
	"github.com/VaradVelangi/Sync-Slate/internal/proto"
)

// inboundToCommand translates a wire frame into a hub command. A non-nil
// proto.Error means the frame was understood but rejected; the caller
// replies and keeps the connection open.
func inboundToCommand(client *core.Client, inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Event {
	case proto.EventJoinRequest:
		var join proto.JoinRequestData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, nil, err
		}
		// Username is accepted as-is, empty included.
		return &core.Command{
			Kind:     core.CommandJoin,
			Client:   client,
			RoomID:   join.RoomID,
			Username: join.Username,
		}, nil, nil

	case proto.EventDirectoryCreated, proto.EventDirectoryUpdated,
		proto.EventDirectoryRenamed, proto.EventDirectoryDeleted,
		proto.EventFileCreated, proto.EventFileUpdated,
		proto.EventFileRenamed, proto.EventFileDeleted,
		proto.EventDrawingUpdate:
		return &core.Command{
			Kind:   core.CommandBroadcast,
			Client: client,
			Event:  inbound.Event,
			Data:   inbound.Data,
		}, nil, nil

	case proto.EventSendMessage:
		// Relabeled on the way out; payload passes through untouched.
		return &core.Command{
			Kind:   core.CommandBroadcast,
			Client: client,
			Event:  proto.EventReceiveMessage,
			Data:   inbound.Data,
		}, nil, nil

	case proto.EventSyncFileStructure:
		var sync proto.SyncFileStructureData
		if err := json.Unmarshal(inbound.Data, &sync); err != nil {
			return nil, nil, err
		}
		target := sync.SocketID
		sync.SocketID = ""
		data, err := json.Marshal(sync)
		if err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:   core.CommandUnicast,
			Client: client,
			Event:  proto.EventSyncFileStructure,
			Data:   data,
			Target: target,
		}, nil, nil

	case proto.EventSyncDrawing:
		var sync proto.SyncDrawingData
		if err := json.Unmarshal(inbound.Data, &sync); err != nil {
			return nil, nil, err
		}
		target := sync.SocketID
		sync.SocketID = ""
		data, err := json.Marshal(sync)
		if err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:   core.CommandUnicast,
			Client: client,
			Event:  proto.EventSyncDrawing,
			Data:   data,
			Target: target,
		}, nil, nil

	case proto.EventUserOffline, proto.EventUserOnline:
		var subject proto.SocketIDData
		if err := json.Unmarshal(inbound.Data, &subject); err != nil {
			return nil, nil, err
		}
		status := core.StatusOnline
		if inbound.Event == proto.EventUserOffline {
			status = core.StatusOffline
		}
		return &core.Command{
			Kind:     core.CommandSetStatus,
			Client:   client,
			SocketID: subject.SocketID,
			Status:   status,
		}, nil, nil

	case proto.EventTypingStart:
		var typing proto.TypingStartData
		if err := json.Unmarshal(inbound.Data, &typing); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:           core.CommandTyping,
			Client:         client,
			Typing:         true,
			CursorPosition: typing.CursorPosition,
		}, nil, nil

	case proto.EventTypingPause:
		return &core.Command{
			Kind:   core.CommandTyping,
			Client: client,
			Typing: false,
		}, nil, nil

	case proto.EventRequestDrawing:
		// Broadcast enriched with the requester's own identity so peers
		// know whom to sync back to.
		data, err := json.Marshal(proto.SocketIDData{SocketID: client.ID})
		if err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:   core.CommandBroadcast,
			Client: client,
			Event:  proto.EventRequestDrawing,
			Data:   data,
		}, nil, nil

	default:
		return nil, &proto.Error{Code: core.ErrCodeInvalidMessage, Msg: "unknown event type"}, nil
	}
}

// outboundFromEvent translates a hub event into a wire frame.
func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventJoinAccepted:
		users := make([]proto.User, 0, len(event.Users))
		for _, p := range event.Users {
			users = append(users, userFromParticipant(p))
		}
		return proto.Outbound{
			Event: proto.EventJoinAccepted,
			Data: proto.JoinAcceptedData{
				User:  userFromParticipant(event.User),
				Users: users,
			},
		}
	case core.EventUsernameExists:
		return proto.Outbound{Event: proto.EventUsernameExists}
	case core.EventUserJoined:
		return proto.Outbound{
			Event: proto.EventUserJoined,
			Data:  proto.UserData{User: userFromParticipant(event.User)},
		}
	case core.EventUserDisconnected:
		return proto.Outbound{
			Event: proto.EventUserDisconnected,
			Data:  proto.UserData{User: userFromParticipant(event.User)},
		}
	case core.EventStatusChanged:
		name := proto.EventUserOnline
		if event.Status == core.StatusOffline {
			name = proto.EventUserOffline
		}
		return proto.Outbound{
			Event: name,
			Data:  proto.SocketIDData{SocketID: event.SocketID},
		}
	case core.EventTyping:
		name := proto.EventTypingPause
		if event.Typing {
			name = proto.EventTypingStart
		}
		return proto.Outbound{
			Event: name,
			Data:  proto.UserData{User: userFromParticipant(event.User)},
		}
	case core.EventRelay:
		return proto.Outbound{Event: event.Name, Data: event.Data}
	default:
		return proto.Outbound{
			Event: proto.EventError,
			Error: &proto.Error{Code: "unknown", Msg: "unknown event"},
		}
	}
}

func userFromParticipant(p core.Participant) proto.User {
	u := proto.User{
		Username:       p.Username,
		RoomID:         p.RoomID,
		Status:         string(p.Status),
		CursorPosition: p.CursorPosition,
		Typing:         p.Typing,
		SocketID:       p.SocketID,
	}
	if p.CurrentFile != nil {
		u.CurrentFile = json.RawMessage(*p.CurrentFile)
	}
	return u
}
