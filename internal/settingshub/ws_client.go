package settingshub

import (
	"log/slog"
	"time"

	"chatgogo/chatsettings/internal/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 16
)

// WebSocketClient streams settings updates of one peer over a WebSocket.
// The connection is write-only from the server's point of view; inbound
// frames are read only to process control messages.
type WebSocketClient struct {
	ID     string
	PeerID int64
	Conn   *websocket.Conn
	Hub    *ManagerService
	Send   chan models.SettingsUpdate
}

func NewWebSocketClient(hub *ManagerService, conn *websocket.Conn, peerID int64) *WebSocketClient {
	return &WebSocketClient{
		ID:     uuid.New().String(),
		PeerID: peerID,
		Conn:   conn,
		Hub:    hub,
		Send:   make(chan models.SettingsUpdate, sendBuffer),
	}
}

func (c *WebSocketClient) GetClientID() string                          { return c.ID }
func (c *WebSocketClient) GetPeerID() int64                             { return c.PeerID }
func (c *WebSocketClient) GetSendChannel() chan<- models.SettingsUpdate { return c.Send }

func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close stops writePump, which in turn closes the connection.
func (c *WebSocketClient) Close() {
	close(c.Send)
}

func (c *WebSocketClient) readPump() {
	defer func() {
		c.Hub.Unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.log.Warn("websocket read failed", slog.String("client_id", c.ID), slog.Any("error", err))
			}
			return
		}
	}
}

func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case update, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteJSON(update); err != nil {
				c.Hub.log.Warn("websocket write failed", slog.String("client_id", c.ID), slog.Any("error", err))
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
