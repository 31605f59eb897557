package models

import "encoding/json"

// SettingsEvent is published on the pub/sub channel of a peer after its
// settings were stored. Document is the raw source, not the decoded record,
// so every subscriber decodes with its own code version.
type SettingsEvent struct {
	PeerID     int64           `json:"peer_id"`
	SnapshotID string          `json:"snapshot_id"`
	Document   json.RawMessage `json:"document"`
}

// SettingsUpdate is what live subscribers receive.
type SettingsUpdate struct {
	PeerID     int64        `json:"peer_id"`
	SnapshotID string       `json:"snapshot_id"`
	Settings   ChatSettings `json:"settings"`
}
