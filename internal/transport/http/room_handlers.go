package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/avetisov/matchroom-server/internal/core"
)

// RoomHandlers provides read-only HTTP handlers for inspecting live
// rooms. All answers come from hub snapshots, so they observe a
// consistent state without touching the hub's internals.
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

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RoomSummary is the list form of a room.
type RoomSummary struct {
	Code    string   `json:"code"`
	Players []string `json:"players"`
	Started bool     `json:"started"`
}

// ListRooms returns a summary of every live room.
// GET /api/rooms
func (h *RoomHandlers) ListRooms(c *gin.Context) {
	views, err := h.hub.Snapshot(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to snapshot rooms")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	response := make([]RoomSummary, 0, len(views))
	for _, view := range views {
		names := make([]string, 0, len(view.Players))
		for _, p := range view.Players {
			names = append(names, p.Name)
		}
		response = append(response, RoomSummary{
			Code:    view.Code,
			Players: names,
			Started: view.Game.Started,
		})
	}

	h.log.Debug().Int("room_count", len(response)).Msg("rooms listed")
	c.JSON(http.StatusOK, response)
}

// GetRoom returns the full view of one room.
// GET /api/rooms/:code
func (h *RoomHandlers) GetRoom(c *gin.Context) {
	code := c.Param("code")

	views, err := h.hub.Snapshot(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to snapshot rooms")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	for _, view := range views {
		if view.Code == code {
			c.JSON(http.StatusOK, wireRoom(view))
			return
		}
	}
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "room not found"})
}
