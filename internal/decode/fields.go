package decode

import (
	"chatgogo/chatsettings/internal/jsontree"
)

// Setter copies the member key of obj into rec. It is only called when the
// member is present.
type Setter[T any] func(rec *T, obj jsontree.Node, key string) error

// Fields decodes an object into a T by running the setter of every present
// member. The record under construction never escapes: on the first error
// the zero T is returned.
type Fields[T any] map[string]Setter[T]

func (f Fields[T]) Decode(n jsontree.Node) (T, error) {
	var zero T
	if n.Kind() != jsontree.KindObject {
		return zero, jsontree.Mismatch("object", n)
	}

	var rec T
	// Keys are sorted, so the reported error is stable across runs.
	for _, key := range n.Keys() {
		set, ok := f[key]
		if !ok {
			continue
		}
		if err := set(&rec, n, key); err != nil {
			return zero, err
		}
	}
	return rec, nil
}

// Str sets a string (or string-kinded) field.
func Str[T any, S ~string](field func(*T) *S) Setter[T] {
	return func(rec *T, obj jsontree.Node, key string) error {
		v, err := jsontree.String(obj, key)
		if err != nil {
			return err
		}
		*field(rec) = S(v)
		return nil
	}
}

func Bool[T any](field func(*T) *bool) Setter[T] {
	return func(rec *T, obj jsontree.Node, key string) error {
		v, err := jsontree.Bool(obj, key)
		if err != nil {
			return err
		}
		*field(rec) = v
		return nil
	}
}

func Int32[T any](field func(*T) *int32) Setter[T] {
	return func(rec *T, obj jsontree.Node, key string) error {
		v, err := jsontree.Int32(obj, key)
		if err != nil {
			return err
		}
		*field(rec) = v
		return nil
	}
}

func Int64[T any](field func(*T) *int64) Setter[T] {
	return func(rec *T, obj jsontree.Node, key string) error {
		v, err := jsontree.Int64(obj, key)
		if err != nil {
			return err
		}
		*field(rec) = v
		return nil
	}
}

func Float64[T any](field func(*T) *float64) Setter[T] {
	return func(rec *T, obj jsontree.Node, key string) error {
		v, err := jsontree.Float64(obj, key)
		if err != nil {
			return err
		}
		*field(rec) = v
		return nil
	}
}

// Int64s sets a field from an array of integers. A single non-integer
// element fails the field.
func Int64s[T any](field func(*T) *[]int64) Setter[T] {
	return func(rec *T, obj jsontree.Node, key string) error {
		sub, _ := jsontree.Field(obj, key)
		v, err := jsontree.Int64s(sub)
		if err != nil {
			return jsontree.AtKey(err, key)
		}
		*field(rec) = v
		return nil
	}
}

// With sets a field through another decoder.
func With[T, V any](d Decoder[V], field func(*T) *V) Setter[T] {
	return func(rec *T, obj jsontree.Node, key string) error {
		sub, _ := jsontree.Field(obj, key)
		v, err := d.Decode(sub)
		if err != nil {
			return jsontree.AtKey(err, key)
		}
		*field(rec) = v
		return nil
	}
}
