// Package decode turns parsed chat settings documents into typed records.
//
// Records are decoded through Decoder values. Objects use a Fields table
// that maps member names to setters; members missing from the document are
// left at their zero value and members unknown to the table are ignored.
// A scalar of the wrong kind fails the whole decode with a
// *jsontree.TypeMismatchError carrying the path of the bad member.
//
// Every package-level decoder is immutable once the package is initialised,
// so decoding is safe from any number of goroutines.
package decode

import (
	"chatgogo/chatsettings/internal/jsontree"
)

// Decoder decodes a node into a T.
type Decoder[T any] interface {
	Decode(n jsontree.Node) (T, error)
}

// DecoderFunc adapts a function to Decoder.
type DecoderFunc[T any] func(n jsontree.Node) (T, error)

func (f DecoderFunc[T]) Decode(n jsontree.Node) (T, error) { return f(n) }

// Slice decodes an array with elem, keeping order. Null decodes to nil.
func Slice[T any](elem Decoder[T]) Decoder[[]T] {
	return DecoderFunc[[]T](func(n jsontree.Node) ([]T, error) {
		if n.IsNull() {
			return nil, nil
		}
		if n.Kind() != jsontree.KindArray {
			return nil, jsontree.Mismatch("array", n)
		}
		out := make([]T, 0, n.Len())
		for i, el := range n.Elements() {
			v, err := elem.Decode(el)
			if err != nil {
				return nil, jsontree.AtIndex(err, i)
			}
			out = append(out, v)
		}
		return out, nil
	})
}

// OneOrMany is Slice that also accepts a single object as a one-element
// sequence.
func OneOrMany[T any](elem Decoder[T]) Decoder[[]T] {
	many := Slice(elem)
	return DecoderFunc[[]T](func(n jsontree.Node) ([]T, error) {
		if n.Kind() != jsontree.KindObject {
			return many.Decode(n)
		}
		v, err := elem.Decode(n)
		if err != nil {
			return nil, err
		}
		return []T{v}, nil
	})
}

// Ptr decodes into a freshly allocated T. Null decodes to nil.
func Ptr[T any](d Decoder[T]) Decoder[*T] {
	return DecoderFunc[*T](func(n jsontree.Node) (*T, error) {
		if n.IsNull() {
			return nil, nil
		}
		v, err := d.Decode(n)
		if err != nil {
			return nil, err
		}
		return &v, nil
	})
}
