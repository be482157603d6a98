package proto

import "encoding/json"

// Inbound is the envelope for frames coming from the client.
type Inbound struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Outbound is the envelope for frames sent to the client.
type Outbound struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// Wire event names. These are the compatibility surface for clients and
// must not change.
const (
	EventJoinRequest       = "join-request"
	EventJoinAccepted      = "join-accepted"
	EventUserJoined        = "user-joined"
	EventUserDisconnected  = "user-disconnected"
	EventUsernameExists    = "username-exists"
	EventSyncFileStructure = "sync-file-structure"
	EventDirectoryCreated  = "directory-created"
	EventDirectoryUpdated  = "directory-updated"
	EventDirectoryRenamed  = "directory-renamed"
	EventDirectoryDeleted  = "directory-deleted"
	EventFileCreated       = "file-created"
	EventFileUpdated       = "file-updated"
	EventFileRenamed       = "file-renamed"
	EventFileDeleted       = "file-deleted"
	EventUserOffline       = "offline"
	EventUserOnline        = "online"
	EventSendMessage       = "send-message"
	EventReceiveMessage    = "receive-message"
	EventTypingStart       = "typing-start"
	EventTypingPause       = "typing-pause"
	EventRequestDrawing    = "request-drawing"
	EventSyncDrawing       = "sync-drawing"
	EventDrawingUpdate     = "drawing-update"
	EventError             = "error"
)

// User mirrors the participant record as clients see it.
type User struct {
	Username       string          `json:"username"`
	RoomID         string          `json:"roomId"`
	Status         string          `json:"status"`
	CursorPosition int             `json:"cursorPosition"`
	Typing         bool            `json:"typing"`
	SocketID       string          `json:"socketId"`
	CurrentFile    json.RawMessage `json:"currentFile"`
}

// JoinRequestData asks for membership in a room. The username is taken
// as-is: empty strings are legal and still subject to the room-scoped
// uniqueness check.
type JoinRequestData struct {
	RoomID   string `json:"roomId"`
	Username string `json:"username"`
}

// JoinAcceptedData replies to the joiner with its own record and the
// room's member list, which includes the joiner itself.
type JoinAcceptedData struct {
	User  User   `json:"user"`
	Users []User `json:"users"`
}

// UserData wraps a single participant record for join, disconnect, and
// typing events.
type UserData struct {
	User User `json:"user"`
}

// SocketIDData names a connection: the subject of a status change, the
// requester of a drawing, or a unicast routing key.
type SocketIDData struct {
	SocketID string `json:"socketId"`
}

// SyncFileStructureData carries a full file-tree snapshot to one named
// connection. SocketID is the routing key on the way in and is stripped
// before delivery.
type SyncFileStructureData struct {
	FileStructure json.RawMessage `json:"fileStructure"`
	OpenFiles     json.RawMessage `json:"openFiles"`
	ActiveFile    json.RawMessage `json:"activeFile"`
	SocketID      string          `json:"socketId,omitempty"`
}

// TypingStartData reports the sender's caret offset.
type TypingStartData struct {
	CursorPosition int `json:"cursorPosition"`
}

// SyncDrawingData carries the canvas state to one named connection.
// As with file-structure sync, SocketID routes and is stripped.
type SyncDrawingData struct {
	DrawingData json.RawMessage `json:"drawingData"`
	SocketID    string          `json:"socketId,omitempty"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
