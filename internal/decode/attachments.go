package decode

import (
	"chatgogo/chatsettings/internal/jsontree"
	"chatgogo/chatsettings/internal/models"
)

// AttachmentsForm is the wire form of an attachments member.
type AttachmentsForm int

const (
	// RawTuples is an array of [type, payload, ...] tuples. Elements that
	// are not well-formed tuples are dropped without error.
	RawTuples AttachmentsForm = iota
	// GenericSequence is any non-array node: a single attachment object,
	// or null.
	GenericSequence
)

func (f AttachmentsForm) String() string {
	if f == RawTuples {
		return "raw_tuples"
	}
	return "generic_sequence"
}

// ClassifyAttachments picks the form of an attachments node. Every array is
// read as tuples, whatever its elements are.
func ClassifyAttachments(n jsontree.Node) AttachmentsForm {
	if n.Kind() == jsontree.KindArray {
		return RawTuples
	}
	return GenericSequence
}

// Attachments decodes the attachments member of a message in either form.
var Attachments Decoder[[]models.MessageAttachment] = DecoderFunc[[]models.MessageAttachment](func(n jsontree.Node) ([]models.MessageAttachment, error) {
	switch ClassifyAttachments(n) {
	case RawTuples:
		return TupleAttachments(n), nil
	default:
		return attachmentSequence.Decode(n)
	}
})

// MessageAttachment decodes one attachment object:
//
//	{"type": "photo", "photo": {...}}
//
// Payload is the compact JSON of the member named by the type, or of the
// whole object when there is no such member. A string member is taken
// verbatim.
var MessageAttachment Decoder[models.MessageAttachment] = DecoderFunc[models.MessageAttachment](decodeAttachmentObject)

var attachmentSequence = OneOrMany(MessageAttachment)

func decodeAttachmentObject(n jsontree.Node) (models.MessageAttachment, error) {
	if n.Kind() != jsontree.KindObject {
		return models.MessageAttachment{}, jsontree.Mismatch("object", n)
	}

	a := models.MessageAttachment{Shape: models.ShapeObject, Raw: n}
	if jsontree.Has(n, "type") {
		tag, err := jsontree.String(n, "type")
		if err != nil {
			return models.MessageAttachment{}, err
		}
		a.Type = models.AttachmentType(tag)
	}

	payload := n
	if a.Type != "" {
		if sub, ok := n.Get(string(a.Type)); ok {
			payload = sub
		}
	}
	if s, err := payload.AsString(); err == nil {
		a.Payload = s
		return a, nil
	}
	raw, err := payload.Raw()
	if err != nil {
		return models.MessageAttachment{}, err
	}
	a.Payload = string(raw)
	return a, nil
}

// TupleAttachments reads an array of [type, payload, ...] tuples in order.
// It never fails: an element that is not an array, has fewer than two
// elements, or whose first two elements are not strings is skipped.
func TupleAttachments(arr jsontree.Node) []models.MessageAttachment {
	out := make([]models.MessageAttachment, 0, arr.Len())
	for _, el := range arr.Elements() {
		if a, ok := tupleAttachment(el); ok {
			out = append(out, a)
		}
	}
	return out
}

func tupleAttachment(el jsontree.Node) (models.MessageAttachment, bool) {
	if el.Kind() != jsontree.KindArray || el.Len() < 2 {
		return models.MessageAttachment{}, false
	}
	tag, err := el.Index(0).AsString()
	if err != nil {
		return models.MessageAttachment{}, false
	}
	payload, err := el.Index(1).AsString()
	if err != nil {
		return models.MessageAttachment{}, false
	}
	return models.MessageAttachment{
		Type:    models.AttachmentType(tag),
		Payload: payload,
		Shape:   models.ShapeTuple,
		Raw:     el,
	}, true
}
