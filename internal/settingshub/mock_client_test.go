package settingshub_test

import (
	"sync/atomic"

	"chatgogo/chatsettings/internal/models"
)

type MockClient struct {
	id          string
	peerID      int64
	closed      atomic.Int32
	RecvChannel chan models.SettingsUpdate
}

func newMockClient(id string, peerID int64, buffer int) *MockClient {
	return &MockClient{
		id:          id,
		peerID:      peerID,
		RecvChannel: make(chan models.SettingsUpdate, buffer),
	}
}

func (c *MockClient) GetClientID() string { return c.id }

func (c *MockClient) GetPeerID() int64 { return c.peerID }

func (c *MockClient) GetSendChannel() chan<- models.SettingsUpdate {
	return c.RecvChannel
}

func (c *MockClient) Run() {
	// Not needed for testing
}

func (c *MockClient) Close() {
	c.closed.Add(1)
}

func (c *MockClient) CloseCount() int {
	return int(c.closed.Load())
}
