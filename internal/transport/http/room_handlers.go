package http

import (
	"context"
	stdhttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/VaradVelangi/Sync-Slate/internal/core"
	"github.com/VaradVelangi/Sync-Slate/internal/proto"
)

// RoomHandlers provides HTTP handlers for room inspection endpoints.
type RoomHandlers struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewRoomHandlers creates a new room handlers instance.
func NewRoomHandlers(hub *core.Hub, logger *zerolog.Logger) *RoomHandlers {
	return &RoomHandlers{
		hub: hub,
		log: logger,
	}
}

// RoomUsersResponse represents a room occupancy snapshot.
type RoomUsersResponse struct {
	RoomID string       `json:"roomId"`
	Users  []proto.User `json:"users"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListUsers returns the current members of a room. An unknown room is
// not an error: rooms exist only as their membership, so it yields an
// empty list.
// GET /api/rooms/:roomId/users
func (h *RoomHandlers) ListUsers(c *gin.Context) {
	roomID := c.Param("roomId")

	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
	defer cancel()

	members, err := h.hub.RoomUsers(ctx, roomID)
	if err != nil {
		h.log.Error().Err(err).Str("room_id", roomID).Msg("room snapshot failed")
		c.JSON(stdhttp.StatusServiceUnavailable, ErrorResponse{Error: "hub unavailable"})
		return
	}

	users := make([]proto.User, 0, len(members))
	for _, p := range members {
		users = append(users, userFromParticipant(p))
	}
	c.JSON(stdhttp.StatusOK, RoomUsersResponse{RoomID: roomID, Users: users})
}
