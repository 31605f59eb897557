package models

import "chatgogo/chatsettings/internal/jsontree"

// AttachmentType is the discriminator of a message attachment.
type AttachmentType string

const (
	AttachmentPhoto        AttachmentType = "photo"
	AttachmentVideo        AttachmentType = "video"
	AttachmentAudio        AttachmentType = "audio"
	AttachmentDoc          AttachmentType = "doc"
	AttachmentLink         AttachmentType = "link"
	AttachmentMarket       AttachmentType = "market"
	AttachmentWall         AttachmentType = "wall"
	AttachmentWallReply    AttachmentType = "wall_reply"
	AttachmentSticker      AttachmentType = "sticker"
	AttachmentGift         AttachmentType = "gift"
	AttachmentAudioMessage AttachmentType = "audio_message"
	AttachmentPoll         AttachmentType = "poll"
	AttachmentGraffiti     AttachmentType = "graffiti"
	AttachmentCall         AttachmentType = "call"
)

// AttachmentShape records which wire form an attachment was read from.
type AttachmentShape int

const (
	// ShapeTuple is the compact [type, payload, ...] array form.
	ShapeTuple AttachmentShape = iota
	// ShapeObject is the conventional {"type": ..., "<type>": {...}} form.
	ShapeObject
)

// MessageAttachment is one attachment of a message. Only the type tag is
// interpreted; Payload and Raw are kept for a per-type decoding pass.
type MessageAttachment struct {
	Type AttachmentType `json:"type"`
	// Payload is the tuple's second element, or the compact JSON of the
	// typed sub-object for the object form.
	Payload string          `json:"payload,omitempty"`
	Shape   AttachmentShape `json:"-"`
	// Raw is the source node: the whole tuple or the whole object. It
	// shares the parsed tree, which is read-only through Node.
	Raw jsontree.Node `json:"-"`
}

// Trailing returns tuple elements after the payload (index 2 onwards).
// Object-form attachments have none.
func (a MessageAttachment) Trailing() []jsontree.Node {
	if a.Shape != ShapeTuple || a.Raw.Len() <= 2 {
		return nil
	}
	return a.Raw.Elements()[2:]
}
