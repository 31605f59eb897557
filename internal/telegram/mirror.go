// Package telegram mirrors pinned messages of stored chat settings into a
// Telegram chat.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"chatgogo/chatsettings/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	maxMessageLength = 4096
	maxPayloadLength = 64
)

// Sender is the part of *tgbotapi.BotAPI the mirror uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Mirror posts a summary of each new pinned message to one chat.
type Mirror struct {
	Bot    Sender
	ChatID int64
	log    *slog.Logger
}

// NewMirror authorises the bot token and returns a mirror into chatID.
func NewMirror(token string, chatID int64, log *slog.Logger) (*Mirror, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	bot.Debug = false
	log.Info("telegram mirror authorised", slog.String("bot", bot.Self.UserName), slog.Int64("chat_id", chatID))
	return NewMirrorWithSender(bot, chatID, log), nil
}

func NewMirrorWithSender(bot Sender, chatID int64, log *slog.Logger) *Mirror {
	if log == nil {
		log = slog.Default()
	}
	return &Mirror{Bot: bot, ChatID: chatID, log: log.With(slog.String("component", "telegram"))}
}

// MirrorPinned sends the pinned message of settings, if any.
func (m *Mirror) MirrorPinned(ctx context.Context, peerID int64, settings models.ChatSettings) error {
	if settings.PinnedMessage == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := BuildPinnedMessage(m.ChatID, peerID, settings.Title, *settings.PinnedMessage)
	sent, err := m.Bot.Send(msg)
	if err != nil {
		m.log.Error("failed to mirror pinned message", slog.Int64("peer_id", peerID), slog.Any("error", err))
		return fmt.Errorf("send pinned message: %w", err)
	}
	m.log.Debug("pinned message mirrored",
		slog.Int64("peer_id", peerID),
		slog.Int("telegram_message_id", sent.MessageID))
	return nil
}

// BuildPinnedMessage renders a plain-text summary of pm.
func BuildPinnedMessage(chatID, peerID int64, title string, pm models.PinnedMessage) tgbotapi.MessageConfig {
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "📌 Pinned in %q (peer %d)\n", title, peerID)
	} else {
		fmt.Fprintf(&b, "📌 Pinned in peer %d\n", peerID)
	}
	fmt.Fprintf(&b, "message %d from %d\n", pm.ID, pm.FromID)

	if pm.Text != "" {
		b.WriteString("\n")
		b.WriteString(pm.Text)
		b.WriteString("\n")
	}
	if n := len(pm.FwdMessages); n > 0 {
		fmt.Fprintf(&b, "\n↪️ %d forwarded\n", n)
	}
	if pm.Geo != nil && pm.Geo.Place != nil && pm.Geo.Place.Title != "" {
		fmt.Fprintf(&b, "📍 %s\n", pm.Geo.Place.Title)
	}
	if len(pm.Attachments) > 0 {
		b.WriteString("\nAttachments:\n")
		for _, a := range pm.Attachments {
			fmt.Fprintf(&b, "• %s", a.Type)
			if p := shorten(a.Payload, maxPayloadLength); p != "" {
				fmt.Fprintf(&b, ": %s", p)
			}
			b.WriteString("\n")
		}
	}

	return tgbotapi.NewMessage(chatID, shorten(strings.TrimRight(b.String(), "\n"), maxMessageLength))
}

// shorten cuts s to at most limit runes, marking the cut with an ellipsis.
func shorten(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit-1]) + "…"
}
