package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"chatgogo/chatsettings/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no snapshot or cached document exists.
var ErrNotFound = errors.New("not found")

const (
	documentKeyPrefix   = "chat_settings:doc:"
	eventChannelPrefix  = "chat_settings:events:"
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// Storage is what the HTTP handlers and the hub need from persistence.
type Storage interface {
	SaveSnapshot(ctx context.Context, snap *models.ChatSettingsSnapshot) error
	LatestSnapshot(ctx context.Context, peerID int64) (*models.ChatSettingsSnapshot, error)
	ListSnapshots(ctx context.Context, peerID int64, limit int) ([]models.ChatSettingsSnapshot, error)

	CacheDocument(ctx context.Context, peerID int64, document []byte) error
	CachedDocument(ctx context.Context, peerID int64) ([]byte, error)

	PublishEvent(ctx context.Context, event models.SettingsEvent) error
}

// Service stores snapshots in PostgreSQL and keeps the latest raw document
// of each peer in Redis.
type Service struct {
	DB       *gorm.DB
	Redis    *redis.Client
	CacheTTL time.Duration
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client, cacheTTL time.Duration) *Service {
	return &Service{
		DB:       db,
		Redis:    rdb,
		CacheTTL: cacheTTL,
	}
}

// Migrate creates or updates the snapshot table.
func (s *Service) Migrate() error {
	return s.DB.AutoMigrate(&models.ChatSettingsSnapshot{})
}

// DocumentKey is the Redis key caching the latest document of a peer.
func DocumentKey(peerID int64) string {
	return documentKeyPrefix + strconv.FormatInt(peerID, 10)
}

// EventChannel is the pub/sub channel carrying updates of a peer.
func EventChannel(peerID int64) string {
	return eventChannelPrefix + strconv.FormatInt(peerID, 10)
}

// EventPattern matches the event channels of every peer.
func EventPattern() string {
	return eventChannelPrefix + "*"
}

// ClampHistoryLimit maps a requested page size onto the allowed range.
func ClampHistoryLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultHistoryLimit
	case limit > maxHistoryLimit:
		return maxHistoryLimit
	default:
		return limit
	}
}

// SaveSnapshot inserts a new snapshot; its ID is assigned by the model hook.
func (s *Service) SaveSnapshot(ctx context.Context, snap *models.ChatSettingsSnapshot) error {
	if err := s.DB.WithContext(ctx).Create(snap).Error; err != nil {
		slog.Error("failed to save settings snapshot", slog.Int64("peer_id", snap.PeerID), slog.Any("error", err))
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// LatestSnapshot returns the newest snapshot of a peer.
func (s *Service) LatestSnapshot(ctx context.Context, peerID int64) (*models.ChatSettingsSnapshot, error) {
	var snap models.ChatSettingsSnapshot
	err := s.DB.WithContext(ctx).
		Where("peer_id = ?", peerID).
		Order("created_at desc").
		First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("latest snapshot for %d: %w", peerID, err)
	}
	return &snap, nil
}

// ListSnapshots returns up to limit snapshots of a peer, newest first.
func (s *Service) ListSnapshots(ctx context.Context, peerID int64, limit int) ([]models.ChatSettingsSnapshot, error) {
	var snaps []models.ChatSettingsSnapshot
	err := s.DB.WithContext(ctx).
		Where("peer_id = ?", peerID).
		Order("created_at desc").
		Limit(ClampHistoryLimit(limit)).
		Find(&snaps).Error
	if err != nil {
		return nil, fmt.Errorf("list snapshots for %d: %w", peerID, err)
	}
	return snaps, nil
}

// CacheDocument stores the raw document of a peer for CacheTTL.
func (s *Service) CacheDocument(ctx context.Context, peerID int64, document []byte) error {
	return s.Redis.Set(ctx, DocumentKey(peerID), document, s.CacheTTL).Err()
}

// CachedDocument returns the cached raw document, or ErrNotFound.
func (s *Service) CachedDocument(ctx context.Context, peerID int64) ([]byte, error) {
	doc, err := s.Redis.Get(ctx, DocumentKey(peerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// PublishEvent announces a stored snapshot on the peer's channel.
func (s *Service) PublishEvent(ctx context.Context, event models.SettingsEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.Redis.Publish(ctx, EventChannel(event.PeerID), payload).Err()
}

// SubscribeToAllPeers subscribes to the event channel of every peer.
func (s *Service) SubscribeToAllPeers(ctx context.Context) *redis.PubSub {
	return s.Redis.PSubscribe(ctx, EventPattern())
}
