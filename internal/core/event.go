package core

import "encoding/json"

// EventKind is a notification the hub emits to clients.
type EventKind int

const (
	// EventJoinAccepted replies to a successful join with the joiner's
	// record and the room's full member list.
	EventJoinAccepted EventKind = iota
	// EventUsernameExists rejects a join whose username is taken.
	EventUsernameExists
	// EventUserJoined announces a new room member to its peers.
	EventUserJoined
	// EventUserDisconnected announces a departure to the former room.
	EventUserDisconnected
	// EventStatusChanged announces an online/offline transition.
	EventStatusChanged
	// EventTyping announces a typing start or pause with the full
	// participant record.
	EventTyping
	// EventRelay fans a client payload out verbatim under Name.
	EventRelay
)

// Event is sent to clients to describe what happened in the system.
// Participant data is copied by value so the write loops never alias
// records the hub goroutine may still mutate.
type Event struct {
	Kind EventKind

	// EventRelay
	Name string
	Data json.RawMessage

	// Participant payloads
	User  Participant
	Users []Participant

	// EventStatusChanged
	SocketID string
	Status   Status

	// EventTyping
	Typing bool
}
