package handler

import (
	"log/slog"
	"net/http"

	"chatgogo/chatsettings/internal/settingshub"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// TODO: restrict origins once the dashboard host is fixed.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket streams decoded settings updates of one peer.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	peerID, ok := peerIDParam(c)
	if !ok {
		return
	}
	if h.Hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Live updates are disabled"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.log.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	client := settingshub.NewWebSocketClient(h.Hub, conn, peerID)
	select {
	case h.Hub.RegisterCh <- client:
	case <-h.Hub.Done():
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		conn.Close()
		return
	}
	client.Run()

	h.log.Info("websocket subscriber connected",
		slog.Int64("peer_id", peerID),
		slog.String("client_id", client.ID),
		slog.String("anon_id", c.GetString(anonIDKey)))
}
