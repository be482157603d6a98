package core

import "encoding/json"

// CommandKind describes what the client wants the relay to do.
type CommandKind int

const (
	// CommandJoin requests membership in a room under a username.
	CommandJoin CommandKind = iota
	// CommandBroadcast fans a payload out to the sender's room.
	CommandBroadcast
	// CommandUnicast delivers a payload to one named connection.
	CommandUnicast
	// CommandSetStatus marks the named participant online or offline.
	CommandSetStatus
	// CommandTyping updates the sender's typing state and cursor.
	CommandTyping
)

// Command is an action requested by a connected client. Fields beyond
// Kind and Client are populated per kind by the transport mapper.
type Command struct {
	Kind   CommandKind
	Client *Client

	// CommandJoin
	RoomID   string
	Username string

	// CommandBroadcast / CommandUnicast: wire event name, payload, and
	// (for unicast) the target connection identity.
	Event  string
	Data   json.RawMessage
	Target string

	// CommandSetStatus: subject connection identity and new status.
	SocketID string
	Status   Status

	// CommandTyping
	Typing         bool
	CursorPosition int
}
