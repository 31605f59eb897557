package handler

import (
	"context"

	"chatgogo/chatsettings/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a testify mock of storage.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveSnapshot(ctx context.Context, snap *models.ChatSettingsSnapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}

func (m *MockStorage) LatestSnapshot(ctx context.Context, peerID int64) (*models.ChatSettingsSnapshot, error) {
	args := m.Called(ctx, peerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatSettingsSnapshot), args.Error(1)
}

func (m *MockStorage) ListSnapshots(ctx context.Context, peerID int64, limit int) ([]models.ChatSettingsSnapshot, error) {
	args := m.Called(ctx, peerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatSettingsSnapshot), args.Error(1)
}

func (m *MockStorage) CacheDocument(ctx context.Context, peerID int64, document []byte) error {
	args := m.Called(ctx, peerID, document)
	return args.Error(0)
}

func (m *MockStorage) CachedDocument(ctx context.Context, peerID int64) ([]byte, error) {
	args := m.Called(ctx, peerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStorage) PublishEvent(ctx context.Context, event models.SettingsEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockMirror struct {
	mock.Mock
}

func (m *MockMirror) MirrorPinned(ctx context.Context, peerID int64, settings models.ChatSettings) error {
	args := m.Called(ctx, peerID, settings)
	return args.Error(0)
}
