package settingshub_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chatgogo/chatsettings/internal/models"
	"chatgogo/chatsettings/internal/settingshub"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebSocketClient_StreamsUpdates(t *testing.T) {
	hub := startHub(t)
	registered := make(chan struct{}, 1)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := settingshub.NewWebSocketClient(hub, conn, 42)
		hub.RegisterCh <- client
		client.Run()
		registered <- struct{}{}
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	select {
	case <-registered:
	case <-time.After(time.Second):
		t.Fatal("client was not registered")
	}

	hub.EventCh <- models.SettingsEvent{PeerID: 42, SnapshotID: "s1", Document: []byte(teamDocument)}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got models.SettingsUpdate
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "s1", got.SnapshotID)
	assert.Equal(t, "Team", got.Settings.Title)
	assert.Equal(t, int32(3), got.Settings.MembersCount)
}
