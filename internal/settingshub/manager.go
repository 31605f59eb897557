package settingshub

import (
	"context"
	"log/slog"

	"chatgogo/chatsettings/internal/decode"
	"chatgogo/chatsettings/internal/models"

	"github.com/redis/go-redis/v9"
)

// Subscriber opens the pub/sub subscription carrying settings events.
type Subscriber interface {
	SubscribeToAllPeers(ctx context.Context) *redis.PubSub
}

// ManagerService fans settings events out to the live clients of each peer.
// All client bookkeeping happens on the Run goroutine.
type ManagerService struct {
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client
	EventCh      chan models.SettingsEvent

	Subscriber Subscriber

	log  *slog.Logger
	done chan struct{}
}

// NewManagerService Constructor. sub may be nil, in which case only events
// sent on EventCh are delivered.
func NewManagerService(sub Subscriber, log *slog.Logger) *ManagerService {
	if log == nil {
		log = slog.Default()
	}
	return &ManagerService{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		EventCh:      make(chan models.SettingsEvent),
		Subscriber:   sub,
		log:          log.With(slog.String("component", "settingshub")),
		done:         make(chan struct{}),
	}
}

// Done is closed once Run has returned.
func (m *ManagerService) Done() <-chan struct{} {
	return m.done
}

// Run serves registrations and events until ctx is cancelled, then closes
// every remaining client.
func (m *ManagerService) Run(ctx context.Context) {
	defer close(m.done)

	if m.Subscriber != nil {
		m.startPubSubListener(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			for id, client := range m.Clients {
				delete(m.Clients, id)
				client.Close()
			}
			m.log.Info("hub stopped")
			return

		case client := <-m.RegisterCh:
			m.Clients[client.GetClientID()] = client
			m.log.Debug("client registered",
				slog.String("client_id", client.GetClientID()),
				slog.Int64("peer_id", client.GetPeerID()))

		case client := <-m.UnregisterCh:
			m.removeClient(client.GetClientID())

		case event := <-m.EventCh:
			m.handleEvent(event)
		}
	}
}

// Unregister asks the hub to drop client. It does not block once the hub
// has stopped.
func (m *ManagerService) Unregister(client Client) {
	select {
	case m.UnregisterCh <- client:
	case <-m.done:
	}
}

func (m *ManagerService) removeClient(id string) {
	client, ok := m.Clients[id]
	if !ok {
		return
	}
	delete(m.Clients, id)
	client.Close()
	m.log.Debug("client unregistered", slog.String("client_id", id))
}

func (m *ManagerService) handleEvent(event models.SettingsEvent) {
	settings, err := decode.DecodeChatSettings(event.Document)
	if err != nil {
		m.log.Warn("dropping undecodable settings event",
			slog.Int64("peer_id", event.PeerID),
			slog.String("snapshot_id", event.SnapshotID),
			slog.Any("error", err))
		return
	}

	update := models.SettingsUpdate{
		PeerID:     event.PeerID,
		SnapshotID: event.SnapshotID,
		Settings:   settings,
	}
	for id, client := range m.Clients {
		if client.GetPeerID() != event.PeerID {
			continue
		}
		select {
		case client.GetSendChannel() <- update:
		default:
			m.log.Warn("client too slow, disconnecting", slog.String("client_id", id))
			m.removeClient(id)
		}
	}
}
