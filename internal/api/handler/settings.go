package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"chatgogo/chatsettings/internal/decode"
	"chatgogo/chatsettings/internal/jsontree"
	"chatgogo/chatsettings/internal/models"
	"chatgogo/chatsettings/internal/storage"

	"github.com/gin-gonic/gin"
)

const (
	sourceHeader   = "X-Settings-Source"
	sourceCache    = "cache"
	sourceSnapshot = "snapshot"
)

// DecodeSettings decodes the request body without storing anything.
func (h *Handler) DecodeSettings(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
		return
	}
	settings, err := decode.DecodeChatSettings(body)
	if err != nil {
		respondDecodeError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// PutSettings stores a new version of a peer's settings and announces it.
func (h *Handler) PutSettings(c *gin.Context) {
	peerID, ok := peerIDParam(c)
	if !ok {
		return
	}
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
		return
	}
	settings, err := decode.DecodeChatSettings(body)
	if err != nil {
		respondDecodeError(c, err)
		return
	}

	ctx := c.Request.Context()
	snap := models.NewSnapshot(peerID, settings, body)
	if err := h.Storage.SaveSnapshot(ctx, snap); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store settings"})
		return
	}
	log := h.log.With(slog.Int64("peer_id", peerID), slog.String("snapshot_id", snap.ID))

	// The snapshot is the source of truth; the steps below are best effort.
	if err := h.Storage.CacheDocument(ctx, peerID, body); err != nil {
		log.Warn("failed to cache settings document", slog.Any("error", err))
	}
	event := models.SettingsEvent{PeerID: peerID, SnapshotID: snap.ID, Document: body}
	if err := h.Storage.PublishEvent(ctx, event); err != nil {
		log.Warn("failed to publish settings event", slog.Any("error", err))
	}
	if h.Mirror != nil {
		if err := h.Mirror.MirrorPinned(ctx, peerID, settings); err != nil {
			log.Warn("failed to mirror pinned message", slog.Any("error", err))
		}
	}

	log.Info("settings stored", slog.String("anon_id", c.GetString(anonIDKey)))
	c.JSON(http.StatusCreated, gin.H{"snapshot_id": snap.ID})
}

// GetSettings returns the current settings of a peer, decoded from the
// cached document or, on a cache miss, from the latest snapshot.
func (h *Handler) GetSettings(c *gin.Context) {
	peerID, ok := peerIDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	source := sourceCache
	doc, err := h.Storage.CachedDocument(ctx, peerID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			h.log.Warn("settings cache unavailable", slog.Int64("peer_id", peerID), slog.Any("error", err))
		}
		snap, err := h.Storage.LatestSnapshot(ctx, peerID)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No settings stored for this chat"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
			return
		}
		source = sourceSnapshot
		doc = []byte(snap.Document)
		if err := h.Storage.CacheDocument(ctx, peerID, doc); err != nil {
			h.log.Warn("failed to refill settings cache", slog.Int64("peer_id", peerID), slog.Any("error", err))
		}
	}

	settings, err := decode.DecodeChatSettings(doc)
	if err != nil {
		h.log.Error("stored settings no longer decode",
			slog.Int64("peer_id", peerID), slog.String("source", source), slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored settings are invalid"})
		return
	}
	c.Header(sourceHeader, source)
	c.JSON(http.StatusOK, settings)
}

// GetHistory lists snapshot summaries of a peer, newest first.
func (h *Handler) GetHistory(c *gin.Context) {
	peerID, ok := peerIDParam(c)
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = n
	}

	snaps, err := h.Storage.ListSnapshots(c.Request.Context(), peerID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}
	if snaps == nil {
		snaps = []models.ChatSettingsSnapshot{}
	}
	c.JSON(http.StatusOK, gin.H{"peer_id": peerID, "snapshots": snaps})
}

func peerIDParam(c *gin.Context) (int64, bool) {
	peerID, err := strconv.ParseInt(c.Param("peer_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "peer_id must be an integer"})
		return 0, false
	}
	return peerID, true
}

// respondDecodeError maps decoder failures to 400 (unparsable text) or
// 422 (well-formed JSON of the wrong shape).
func respondDecodeError(c *gin.Context, err error) {
	var tm *jsontree.TypeMismatchError
	switch {
	case errors.As(err, &tm):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    tm.Error(),
			"path":     tm.Path,
			"expected": tm.Expected,
			"actual":   tm.Actual.String(),
		})
	case errors.Is(err, jsontree.ErrSyntax):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode settings"})
	}
}
