package decode_test

import (
	"testing"

	"chatgogo/chatsettings/internal/decode"
	"chatgogo/chatsettings/internal/jsontree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	Name string
	X, Y int64
}

var pointFields = decode.Fields[point]{
	"name": decode.Str(func(p *point) *string { return &p.Name }),
	"x":    decode.Int64(func(p *point) *int64 { return &p.X }),
	"y":    decode.Int64(func(p *point) *int64 { return &p.Y }),
}

func TestFields_PresentOnlyAndUnknownIgnored(t *testing.T) {
	p, err := pointFields.Decode(jsontree.MustParse(`{"x": 3, "z": "ignored"}`))
	require.NoError(t, err)
	assert.Equal(t, point{X: 3}, p)
}

func TestFields_FirstErrorReturnsZero(t *testing.T) {
	p, err := pointFields.Decode(jsontree.MustParse(`{"name": "a", "x": 1, "y": "two"}`))
	require.Error(t, err)
	assert.Equal(t, point{}, p)

	var tm *jsontree.TypeMismatchError
	require.ErrorAs(t, err, &tm)
	assert.Equal(t, "y", tm.Path)
}

func TestSliceAndPtr(t *testing.T) {
	points := decode.Slice[point](pointFields)

	got, err := points.Decode(jsontree.MustParse(`[{"x":1},{"x":2}]`))
	require.NoError(t, err)
	assert.Equal(t, []point{{X: 1}, {X: 2}}, got)

	got, err = points.Decode(jsontree.MustParse(`null`))
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = points.Decode(jsontree.MustParse(`{"x":1}`))
	assert.ErrorIs(t, err, jsontree.ErrTypeMismatch)

	ptr := decode.Ptr[point](pointFields)
	p, err := ptr.Decode(jsontree.MustParse(`null`))
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = ptr.Decode(jsontree.MustParse(`{"name":"n"}`))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "n", p.Name)
}

func TestOneOrMany(t *testing.T) {
	d := decode.OneOrMany[point](pointFields)

	got, err := d.Decode(jsontree.MustParse(`{"y": 9}`))
	require.NoError(t, err)
	assert.Equal(t, []point{{Y: 9}}, got)

	got, err = d.Decode(jsontree.MustParse(`[{"y": 1}, {"y": 2}]`))
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
