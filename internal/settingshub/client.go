package settingshub

import "chatgogo/chatsettings/internal/models"

// Client is one live subscriber to the settings of a single peer.
type Client interface {
	// GetClientID returns the identifier the hub keys the client by.
	GetClientID() string
	// GetPeerID returns the conversation whose updates the client receives.
	GetPeerID() int64
	// GetSendChannel returns the channel the hub writes updates to.
	GetSendChannel() chan<- models.SettingsUpdate
	// Run starts the client's pumps.
	Run()
	// Close releases the connection. The hub calls it exactly once.
	Close()
}
