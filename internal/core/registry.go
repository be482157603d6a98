package core

// Registry holds every connected participant, indexed by connection
// identity with a secondary index per room. It carries no locking: the
// hub goroutine is its only caller.
type Registry struct {
	byID   map[string]*Participant
	byRoom map[string]map[string]*Participant
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]*Participant),
		byRoom: make(map[string]map[string]*Participant),
	}
}

// Add inserts a participant. Returns ErrDuplicateIdentity if the
// connection identity is already present.
func (r *Registry) Add(p *Participant) error {
	if _, exists := r.byID[p.SocketID]; exists {
		return ErrDuplicateIdentity
	}
	r.byID[p.SocketID] = p

	room := r.byRoom[p.RoomID]
	if room == nil {
		room = make(map[string]*Participant)
		r.byRoom[p.RoomID] = room
	}
	room[p.SocketID] = p
	return nil
}

// Remove deletes a participant by identity. No-op if absent. A room with
// no remaining members is dropped from the index.
func (r *Registry) Remove(socketID string) {
	p, ok := r.byID[socketID]
	if !ok {
		return
	}
	delete(r.byID, socketID)

	if room, ok := r.byRoom[p.RoomID]; ok {
		delete(room, socketID)
		if len(room) == 0 {
			delete(r.byRoom, p.RoomID)
		}
	}
}

// Find returns the participant for a connection identity.
func (r *Registry) Find(socketID string) (*Participant, bool) {
	p, ok := r.byID[socketID]
	return p, ok
}

// ListByRoom returns every participant whose roomId matches. Order is
// unspecified.
func (r *Registry) ListByRoom(roomID string) []*Participant {
	room := r.byRoom[roomID]
	if len(room) == 0 {
		return nil
	}
	out := make([]*Participant, 0, len(room))
	for _, p := range room {
		out = append(out, p)
	}
	return out
}

// UsernameExists reports whether the username is already taken in the
// room. Comparison is case-sensitive with no normalization.
func (r *Registry) UsernameExists(roomID, username string) bool {
	for _, p := range r.byRoom[roomID] {
		if p.Username == username {
			return true
		}
	}
	return false
}
