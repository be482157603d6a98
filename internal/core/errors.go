package core

import "errors"

// Error codes for protocol errors surfaced to clients.
const (
	ErrCodeBadRequest     = "bad_request"
	ErrCodeInvalidMessage = "invalid_message"
)

// ErrDuplicateIdentity signals that the transport handed the hub a
// connection identity that is already registered. This is an invariant
// violation, not a user-facing condition: the offending connection is
// closed.
var ErrDuplicateIdentity = errors.New("duplicate connection identity")

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}
