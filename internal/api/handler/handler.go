package handler

import (
	"context"
	"log/slog"

	"chatgogo/chatsettings/internal/config"
	"chatgogo/chatsettings/internal/models"
	"chatgogo/chatsettings/internal/settingshub"
	"chatgogo/chatsettings/internal/storage"

	"github.com/gin-gonic/gin"
)

// PinnedMirror forwards newly stored pinned messages elsewhere.
type PinnedMirror interface {
	MirrorPinned(ctx context.Context, peerID int64, settings models.ChatSettings) error
}

// Handler holds the dependencies of the HTTP API. Hub and Mirror are optional.
type Handler struct {
	Storage storage.Storage
	Hub     *settingshub.ManagerService
	Mirror  PinnedMirror
	Auth    config.AuthConfig

	log *slog.Logger
}

func NewHandler(s storage.Storage, hub *settingshub.ManagerService, mirror PinnedMirror, auth config.AuthConfig, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		Storage: s,
		Hub:     hub,
		Mirror:  mirror,
		Auth:    auth,
		log:     log.With(slog.String("component", "api")),
	}
}

// RegisterRoutes mounts every endpoint on r.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/anonid", h.GetAnonID)

	v1 := r.Group("/v1")
	v1.POST("/chat-settings/decode", h.DecodeSettings)
	v1.GET("/chats/:peer_id/settings", h.GetSettings)
	v1.GET("/chats/:peer_id/settings/history", h.GetHistory)

	authed := v1.Group("/", h.RequireAuth())
	authed.PUT("/chats/:peer_id/settings", h.PutSettings)
	authed.GET("/chats/:peer_id/settings/ws", h.ServeWebSocket)
}
