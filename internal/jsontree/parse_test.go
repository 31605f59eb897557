package jsontree_test

import (
	"testing"

	"chatgogo/chatsettings/internal/jsontree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Kinds(t *testing.T) {
	tests := []struct {
		src  string
		kind jsontree.Kind
	}{
		{`null`, jsontree.KindNull},
		{`true`, jsontree.KindBool},
		{`42`, jsontree.KindNumber},
		{`"s"`, jsontree.KindString},
		{`[1,"a"]`, jsontree.KindArray},
		{`{"a":1}`, jsontree.KindObject},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			n, err := jsontree.Parse([]byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, n.Kind())
		})
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	for _, src := range []string{``, `   `, `{"a":`, `{} {}`, `[1,]`} {
		_, err := jsontree.Parse([]byte(src))
		assert.ErrorIs(t, err, jsontree.ErrSyntax, "input %q", src)
		assert.NotErrorIs(t, err, jsontree.ErrTypeMismatch)
	}
}

func TestParseJSONC(t *testing.T) {
	src := []byte(`{
		// chat title
		"title": "Team", /* owner */
		"owner_id": 501,
	}`)

	n, err := jsontree.ParseJSONC(src)
	require.NoError(t, err)

	title, err := jsontree.String(n, "title")
	require.NoError(t, err)
	assert.Equal(t, "Team", title)

	owner, err := jsontree.Int64(n, "owner_id")
	require.NoError(t, err)
	assert.Equal(t, int64(501), owner)
}

func TestNode_ArrayAccess(t *testing.T) {
	n := jsontree.MustParse(`["photo", "p1", 99]`)

	assert.Equal(t, 3, n.Len())
	s, err := n.Index(0).AsString()
	require.NoError(t, err)
	assert.Equal(t, "photo", s)
	assert.True(t, n.Index(5).IsNull())
	assert.True(t, n.Index(-1).IsNull())
	assert.Len(t, n.Elements(), 3)

	// Non-arrays have no elements.
	assert.Equal(t, 0, jsontree.MustParse(`{}`).Len())
	assert.Nil(t, jsontree.MustParse(`"x"`).Elements())
}

func TestNode_RawIsCompactAndSorted(t *testing.T) {
	n := jsontree.MustParse(`{ "b": [1, 2], "a": {"id": 9007199254740993} }`)

	raw, err := n.Raw()
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":{"id":9007199254740993},"b":[1,2]}`, string(raw))
	assert.Equal(t, []string{"a", "b"}, n.Keys())
}

func TestParse_RejectsInvalidUTF8(t *testing.T) {
	_, err := jsontree.Parse([]byte("{\"title\":\"\xff\"}"))
	assert.ErrorIs(t, err, jsontree.ErrSyntax)

	n, err := jsontree.Parse([]byte(`{"title":"привіт"}`))
	require.NoError(t, err)
	title, err := jsontree.String(n, "title")
	require.NoError(t, err)
	assert.Equal(t, "привіт", title)
}

func TestNode_ElementsAreCopies(t *testing.T) {
	n := jsontree.MustParse(`["photo","p1"]`)

	elems := n.Elements()
	elems[0] = jsontree.MustParse(`"changed"`)

	tag, err := n.Index(0).AsString()
	require.NoError(t, err)
	assert.Equal(t, "photo", tag)
}
