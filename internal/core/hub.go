package core

import (
	"context"

	"github.com/rs/zerolog"
)

// Hub routes events between connections. A single goroutine (Run) owns
// the registry and the client table, so membership mutation is atomic
// with respect to the room-scoped username uniqueness invariant without
// any locking. Delivery is fire-and-forget: a recipient whose event
// buffer is full is skipped, never awaited.
type Hub struct {
	registry   *Registry
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	commands   chan *Command
	queries    chan *roomQuery
	log        *zerolog.Logger
}

type roomQuery struct {
	roomID string
	reply  chan []Participant
}

// NewHub creates a hub. Run must be started before clients are
// registered.
func NewHub(logger *zerolog.Logger) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		registry:   NewRegistry(),
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		commands:   make(chan *Command),
		queries:    make(chan *roomQuery),
		log:        logger,
	}
}

// RegisterClient makes a connection known to the hub. The connection is
// not in any room until a join command succeeds.
func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
}

// UnregisterClient removes a disconnecting client. The departure is
// announced to the client's room before its record is removed.
func (h *Hub) UnregisterClient(c *Client) {
	h.unregister <- c
}

// Dispatch submits a command for processing. Commands from a single
// connection are processed in submission order.
func (h *Hub) Dispatch(cmd *Command) {
	h.commands <- cmd
}

// RoomUsers returns a snapshot of the participants currently in roomID.
func (h *Hub) RoomUsers(ctx context.Context, roomID string) ([]Participant, error) {
	q := &roomQuery{roomID: roomID, reply: make(chan []Participant, 1)}
	select {
	case h.queries <- q:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case users := <-q.reply:
		return users, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Run processes hub traffic until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case c := <-h.register:
			h.clients[c.ID] = c
		case c := <-h.unregister:
			h.handleDisconnect(c)
		case cmd := <-h.commands:
			h.handleCommand(cmd)
		case q := <-h.queries:
			q.reply <- h.snapshotRoom(q.roomID)
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) handleCommand(cmd *Command) {
	switch cmd.Kind {
	case CommandJoin:
		h.handleJoin(cmd)
	case CommandBroadcast:
		h.handleBroadcast(cmd)
	case CommandUnicast:
		h.handleUnicast(cmd)
	case CommandSetStatus:
		h.handleSetStatus(cmd)
	case CommandTyping:
		h.handleTyping(cmd)
	}
}

func (h *Hub) handleJoin(cmd *Command) {
	if h.registry.UsernameExists(cmd.RoomID, cmd.Username) {
		h.log.Debug().
			Str("socket_id", cmd.Client.ID).
			Str("room_id", cmd.RoomID).
			Str("username", cmd.Username).
			Msg("join rejected: username taken")
		h.send(cmd.Client, &Event{Kind: EventUsernameExists})
		return
	}

	p := &Participant{
		SocketID: cmd.Client.ID,
		Username: cmd.Username,
		RoomID:   cmd.RoomID,
		Status:   StatusOnline,
	}
	if err := h.registry.Add(p); err != nil {
		h.log.Error().
			Err(err).
			Str("socket_id", cmd.Client.ID).
			Str("room_id", cmd.RoomID).
			Msg("closing connection")
		h.closeClient(cmd.Client)
		return
	}

	h.log.Info().
		Str("socket_id", p.SocketID).
		Str("room_id", p.RoomID).
		Str("username", p.Username).
		Msg("user joined")

	h.broadcast(p.RoomID, cmd.Client.ID, &Event{Kind: EventUserJoined, User: *p})
	h.send(cmd.Client, &Event{
		Kind:  EventJoinAccepted,
		User:  *p,
		Users: h.snapshotRoom(p.RoomID),
	})
}

// handleDisconnect announces the departure before removing the record:
// a listener must never see the announcement while the participant is
// still resolvable, and the record must not outlive the announcement.
func (h *Hub) handleDisconnect(c *Client) {
	if p, ok := h.registry.Find(c.ID); ok {
		h.log.Info().
			Str("socket_id", p.SocketID).
			Str("room_id", p.RoomID).
			Str("username", p.Username).
			Msg("user disconnected")
		h.broadcast(p.RoomID, c.ID, &Event{Kind: EventUserDisconnected, User: *p})
		h.registry.Remove(c.ID)
	}
	delete(h.clients, c.ID)
}

func (h *Hub) handleBroadcast(cmd *Command) {
	p, ok := h.registry.Find(cmd.Client.ID)
	if !ok {
		h.log.Debug().
			Str("socket_id", cmd.Client.ID).
			Str("event", cmd.Event).
			Msg("dropping event from connection with no room")
		return
	}
	h.broadcast(p.RoomID, cmd.Client.ID, &Event{Kind: EventRelay, Name: cmd.Event, Data: cmd.Data})
}

func (h *Hub) handleUnicast(cmd *Command) {
	target, ok := h.clients[cmd.Target]
	if !ok {
		h.log.Debug().
			Str("socket_id", cmd.Client.ID).
			Str("target", cmd.Target).
			Str("event", cmd.Event).
			Msg("dropping unicast to unknown target")
		return
	}
	h.send(target, &Event{Kind: EventRelay, Name: cmd.Event, Data: cmd.Data})
}

// handleSetStatus updates the participant named by the payload, which is
// not necessarily the sender, and resolves the broadcast room from that
// same identity. Unknown identities are tolerated: stale status events
// may reference already-disconnected connections.
func (h *Hub) handleSetStatus(cmd *Command) {
	p, ok := h.registry.Find(cmd.SocketID)
	if !ok {
		return
	}
	p.Status = cmd.Status
	h.broadcast(p.RoomID, cmd.Client.ID, &Event{
		Kind:     EventStatusChanged,
		SocketID: cmd.SocketID,
		Status:   cmd.Status,
	})
}

func (h *Hub) handleTyping(cmd *Command) {
	p, ok := h.registry.Find(cmd.Client.ID)
	if !ok {
		return
	}
	p.Typing = cmd.Typing
	if cmd.Typing {
		p.CursorPosition = cmd.CursorPosition
	}
	h.broadcast(p.RoomID, cmd.Client.ID, &Event{Kind: EventTyping, Typing: cmd.Typing, User: *p})
}

// broadcast sends an event to every room member except exceptID.
func (h *Hub) broadcast(roomID, exceptID string, ev *Event) {
	for _, p := range h.registry.ListByRoom(roomID) {
		if p.SocketID == exceptID {
			continue
		}
		if c, ok := h.clients[p.SocketID]; ok {
			h.send(c, ev)
		}
	}
}

func (h *Hub) send(c *Client, ev *Event) {
	select {
	case c.Events <- ev:
	default:
		// Drop if slow consumer.
	}
}

// closeClient evicts a connection after an invariant violation. Closing
// the event channel makes the connection's write loop exit, which tears
// the socket down.
func (h *Hub) closeClient(c *Client) {
	h.registry.Remove(c.ID)
	delete(h.clients, c.ID)
	close(c.Events)
}

func (h *Hub) snapshotRoom(roomID string) []Participant {
	members := h.registry.ListByRoom(roomID)
	out := make([]Participant, 0, len(members))
	for _, p := range members {
		out = append(out, *p)
	}
	return out
}
