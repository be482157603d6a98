package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/VaradVelangi/Sync-Slate/internal/config"
	"github.com/VaradVelangi/Sync-Slate/internal/core"
)

// NewServer builds the HTTP server: health check, room inspection API,
// and the WebSocket endpoint.
func NewServer(hub *core.Hub, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", healthHandler)

	rooms := NewRoomHandlers(hub, logger)
	router.GET("/api/rooms/:roomId/users", rooms.ListUsers)

	router.GET("/ws", gin.WrapH(NewWSHandler(hub, cfg.WSMessageRateLimit, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
