package decode_test

import (
	"testing"

	"chatgogo/chatsettings/internal/decode"
	"chatgogo/chatsettings/internal/jsontree"
	"chatgogo/chatsettings/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyAttachments(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want decode.AttachmentsForm
	}{
		{"empty array", `[]`, decode.RawTuples},
		{"tuples", `[["photo","p1"]]`, decode.RawTuples},
		{"tuples mixed with junk", `[["photo","p1"], "junk", {"type":"doc"}]`, decode.RawTuples},
		{"bare strings", `["photo", "p1"]`, decode.RawTuples},
		{"objects only", `[{"type":"photo"}, {"type":"doc"}]`, decode.RawTuples},
		{"single object", `{"type":"generic","decode":"path"}`, decode.GenericSequence},
		{"null", `null`, decode.GenericSequence},
		{"string", `"photo"`, decode.GenericSequence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decode.ClassifyAttachments(jsontree.MustParse(tt.src)))
		})
	}
}

func TestTupleAttachments_WellFormedKeepsOrder(t *testing.T) {
	arr := jsontree.MustParse(`[["photo","p1"],["audio","a1"],["doc","d1","extra",{"k":1}],["photo","p2"]]`)

	got := decode.TupleAttachments(arr)

	require.Len(t, got, 4)
	wantTags := []string{"photo", "audio", "doc", "photo"}
	wantPayloads := []string{"p1", "a1", "d1", "p2"}
	for i, a := range got {
		assert.Equal(t, models.AttachmentType(wantTags[i]), a.Type, "index %d", i)
		assert.Equal(t, wantPayloads[i], a.Payload, "index %d", i)
		assert.Equal(t, models.ShapeTuple, a.Shape)
	}
	assert.Len(t, got[2].Trailing(), 2)
	assert.Equal(t, 4, got[2].Raw.Len(), "the whole tuple is kept")
}

func TestTupleAttachments_SkipsMalformedElements(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"bare string", `[["photo","p1"], "audio"]`, []string{"photo"}},
		{"tuple of one", `[["photo"], ["audio","a1"]]`, []string{"audio"}},
		{"empty tuple", `[[], ["audio","a1"]]`, []string{"audio"}},
		{"numeric tag", `[[1,"p1"], ["audio","a1"]]`, []string{"audio"}},
		{"object payload", `[["photo",{"id":1}], ["audio","a1"]]`, []string{"audio"}},
		{"null payload", `[["photo",null], ["doc","d1"]]`, []string{"doc"}},
		{"object element", `[{"type":"photo"}, ["doc","d1"]]`, []string{"doc"}},
		{"number element", `[42, ["doc","d1"], null]`, []string{"doc"}},
		{"nothing valid", `[1, "x", [true, false]]`, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decode.TupleAttachments(jsontree.MustParse(tt.src))
			tags := make([]string, 0, len(got))
			for _, a := range got {
				tags = append(tags, string(a.Type))
			}
			assert.Equal(t, tt.want, tags)
		})
	}
}

func TestAttachments_MalformedElementDoesNotFailDecode(t *testing.T) {
	doc := `{"pinned_message": {"attachments": [["photo","p1"], "junk", ["x"]]}}`

	s, err := decode.DecodeChatSettings([]byte(doc))
	require.NoError(t, err)
	require.NotNil(t, s.PinnedMessage)
	require.Len(t, s.PinnedMessage.Attachments, 1)
	assert.Equal(t, models.AttachmentPhoto, s.PinnedMessage.Attachments[0].Type)
	assert.Equal(t, "p1", s.PinnedMessage.Attachments[0].Payload)
}

func TestAttachments_SingleObjectFallsBackToGenericPath(t *testing.T) {
	doc := `{"pinned_message": {"attachments": {"type":"generic","decode":"path"}}}`

	s, err := decode.DecodeChatSettings([]byte(doc))
	require.NoError(t, err, "an object is not a type mismatch for attachments")
	require.NotNil(t, s.PinnedMessage)
	require.Len(t, s.PinnedMessage.Attachments, 1)

	a := s.PinnedMessage.Attachments[0]
	assert.Equal(t, models.AttachmentType("generic"), a.Type)
	assert.Equal(t, models.ShapeObject, a.Shape)
	assert.JSONEq(t, `{"type":"generic","decode":"path"}`, a.Payload)
	assert.Nil(t, a.Trailing())
}

func TestAttachments_ObjectArrayIsReadAsTuples(t *testing.T) {
	n := jsontree.MustParse(`[
		{"type": "photo", "photo": {"id": 456, "owner_id": -1}},
		{"type": 5},
		["doc", "d1"]
	]`)

	got, err := decode.Attachments.Decode(n)
	require.NoError(t, err)
	require.Len(t, got, 1, "object elements are not tuples and are skipped")
	assert.Equal(t, models.AttachmentDoc, got[0].Type)
	assert.Equal(t, models.ShapeTuple, got[0].Shape)
}

func TestAttachments_MalformedObjectElementDoesNotFailDecode(t *testing.T) {
	doc := `{"title": "T", "pinned_message": {"attachments": [{"type": 5}]}}`

	s, err := decode.DecodeChatSettings([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "T", s.Title)
	require.NotNil(t, s.PinnedMessage)
	assert.NotNil(t, s.PinnedMessage.Attachments)
	assert.Empty(t, s.PinnedMessage.Attachments)
}

func TestAttachments_EmptyAndNull(t *testing.T) {
	got, err := decode.Attachments.Decode(jsontree.MustParse(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = decode.Attachments.Decode(jsontree.MustParse(`null`))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAttachments_ScalarIsMismatch(t *testing.T) {
	for _, src := range []string{`"photo"`, `7`, `true`} {
		_, err := decode.Attachments.Decode(jsontree.MustParse(src))
		assert.ErrorIs(t, err, jsontree.ErrTypeMismatch, "input %s", src)
	}
}

func TestMessageAttachment_RequiresObject(t *testing.T) {
	_, err := decode.MessageAttachment.Decode(jsontree.MustParse(`["photo","p1"]`))
	assert.ErrorIs(t, err, jsontree.ErrTypeMismatch)
}
