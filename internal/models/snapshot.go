package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ChatSettingsSnapshot is one stored version of a chat's settings document.
// The searchable columns are denormalised from the decoded record; Document
// keeps the source so the record can always be decoded again.
type ChatSettingsSnapshot struct {
	// ID is the snapshot UUID, generated on insert.
	ID string `gorm:"type:uuid;primaryKey" json:"id"`
	// PeerID identifies the conversation the settings belong to.
	PeerID int64 `gorm:"not null;index:idx_peer_created" json:"peer_id"`
	// Title and OwnerID mirror the decoded settings.
	Title   string `gorm:"type:text" json:"title"`
	OwnerID int64  `json:"owner_id"`
	// MembersCount mirrors members_count.
	MembersCount int32 `json:"members_count"`
	// AdminIDs and ActiveIDs use PostgreSQL bigint arrays.
	AdminIDs  pq.Int64Array `gorm:"type:bigint[]" json:"admin_ids"`
	ActiveIDs pq.Int64Array `gorm:"type:bigint[]" json:"active_ids"`
	// PinnedMessageID is nil when nothing is pinned.
	PinnedMessageID *int32 `json:"pinned_message_id,omitempty"`
	// AttachmentTypes lists the pinned message's attachment tags in order.
	AttachmentTypes pq.StringArray `gorm:"type:text[]" json:"attachment_types"`
	// Document is the raw settings document as received.
	Document string `gorm:"type:jsonb;not null" json:"-"`
	// CreatedAt orders snapshots of the same peer.
	CreatedAt time.Time `gorm:"index:idx_peer_created" json:"created_at"`
}

// NewSnapshot builds an unsaved snapshot of settings decoded from document.
func NewSnapshot(peerID int64, settings ChatSettings, document []byte) *ChatSettingsSnapshot {
	snap := &ChatSettingsSnapshot{
		PeerID:       peerID,
		Title:        settings.Title,
		OwnerID:      settings.OwnerID,
		MembersCount: settings.MembersCount,
		AdminIDs:     pq.Int64Array(settings.AdminIDs),
		ActiveIDs:    pq.Int64Array(settings.ActiveIDs),
		Document:     string(document),
	}
	if pm := settings.PinnedMessage; pm != nil {
		id := pm.ID
		snap.PinnedMessageID = &id
		for _, a := range pm.Attachments {
			snap.AttachmentTypes = append(snap.AttachmentTypes, string(a.Type))
		}
	}
	return snap
}

// BeforeCreate is a GORM hook that assigns a UUID when ID is empty.
func (s *ChatSettingsSnapshot) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
