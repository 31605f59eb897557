package settingshub

import (
	"context"
	"encoding/json"
	"log/slog"

	"chatgogo/chatsettings/internal/models"
)

// startPubSubListener forwards events from every peer channel to EventCh.
func (m *ManagerService) startPubSubListener(ctx context.Context) {
	pubsub := m.Subscriber.SubscribeToAllPeers(ctx)
	go func() {
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event models.SettingsEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					m.log.Error("failed to unmarshal settings event",
						slog.String("channel", msg.Channel), slog.Any("error", err))
					continue
				}
				select {
				case m.EventCh <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}
