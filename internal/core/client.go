package core

// Client is one connection as seen by the hub. ID is the opaque identity
// assigned by the transport at accept time; Events carries outbound
// events to the connection's write loop.
type Client struct {
	ID     string
	Events chan *Event
}

// NewClient constructs a client with an initialized event channel.
func NewClient(id string) *Client {
	return &Client{
		ID:     id,
		Events: make(chan *Event, 16),
	}
}
