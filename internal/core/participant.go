package core

// Status describes a participant's reported presence.
type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// Participant is one connected user's session state within a room.
// SocketID is assigned by the transport layer and never reused for the
// lifetime of the connection; Username and RoomID are fixed at join time.
type Participant struct {
	SocketID       string
	Username       string
	RoomID         string
	Status         Status
	Typing         bool
	CursorPosition int
	CurrentFile    *string
}
