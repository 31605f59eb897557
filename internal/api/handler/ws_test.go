package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chatgogo/chatsettings/internal/settingshub"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeWebSocket_HubStoppedClosesConnection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := settingshub.NewManagerService(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	hub.Run(ctx)

	h := NewHandler(new(MockStorage), hub, nil, testAuth, nil)
	r := gin.New()
	h.RegisterRoutes(r)
	srv := httptest.NewServer(r)
	defer srv.Close()

	token, err := h.generateJWT("anon-1")
	require.NoError(t, err)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/chats/42/settings/ws?token=" + token

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}
