// Package jsontree holds the generic JSON tree consumed by the decoders and
// the field extractor used to read typed scalars out of it.
//
// A Node never mutates the value it wraps and never hands it out: callers
// only see copies (scalars, fresh Node slices, encoded bytes). One parsed
// tree may therefore be shared by decoded records and read by any number
// of goroutines.
package jsontree

import (
	"math"
	"sort"
	"strconv"

	json "github.com/goccy/go-json"
)

// Kind is the JSON kind of a Node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Node is one value of a parsed JSON document. The zero Node is JSON null.
type Node struct {
	v any
}

// Kind reports the JSON kind of the node.
func (n Node) Kind() Kind {
	switch n.v.(type) {
	case bool:
		return KindBool
	case json.Number, float64:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindNull
	}
}

// IsNull reports whether the node is JSON null.
func (n Node) IsNull() bool { return n.Kind() == KindNull }

// Len returns the number of elements of an array node, or 0.
func (n Node) Len() int {
	arr, _ := n.v.([]any)
	return len(arr)
}

// Index returns the i-th element of an array node. Out of range yields null.
func (n Node) Index(i int) Node {
	arr, _ := n.v.([]any)
	if i < 0 || i >= len(arr) {
		return Node{}
	}
	return Node{v: arr[i]}
}

// Elements returns the elements of an array node in document order.
func (n Node) Elements() []Node {
	arr, _ := n.v.([]any)
	if arr == nil {
		return nil
	}
	out := make([]Node, len(arr))
	for i, v := range arr {
		out[i] = Node{v: v}
	}
	return out
}

// Get returns the member named key of an object node.
func (n Node) Get(key string) (Node, bool) {
	obj, ok := n.v.(map[string]any)
	if !ok {
		return Node{}, false
	}
	v, ok := obj[key]
	if !ok {
		return Node{}, false
	}
	return Node{v: v}, true
}

// Keys returns the member names of an object node, sorted.
func (n Node) Keys() []string {
	obj, _ := n.v.(map[string]any)
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Raw returns the compact JSON encoding of the node. Object members are
// emitted in key order.
func (n Node) Raw() ([]byte, error) {
	return json.Marshal(n.v)
}

// AsString reads a string node.
func (n Node) AsString() (string, error) {
	s, ok := n.v.(string)
	if !ok {
		return "", mismatch("string", n)
	}
	return s, nil
}

// AsBool reads a boolean node.
func (n Node) AsBool() (bool, error) {
	b, ok := n.v.(bool)
	if !ok {
		return false, mismatch("boolean", n)
	}
	return b, nil
}

// AsFloat64 reads a number node as float64.
func (n Node) AsFloat64() (float64, error) {
	switch v := n.v.(type) {
	case json.Number:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return 0, mismatch("number", n)
		}
		return f, nil
	case float64:
		return v, nil
	default:
		return 0, mismatch("number", n)
	}
}

// maxExactFloat is the largest magnitude a float64 holds without losing
// integer precision.
const maxExactFloat = 1 << 53

// AsInt64 reads an integral number node. Fractional literals and values that
// do not fit in 64 bits are mismatches.
func (n Node) AsInt64() (int64, error) {
	switch v := n.v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(v), 10, 64); err == nil {
			return i, nil
		}
		// Literals such as 1e3 or 501.0 are still integers.
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil || !isExactInteger(f) {
			return 0, mismatch("int64", n)
		}
		return int64(f), nil
	case float64:
		if !isExactInteger(v) {
			return 0, mismatch("int64", n)
		}
		return int64(v), nil
	default:
		return 0, mismatch("int64", n)
	}
}

// AsInt32 reads an integral number node that fits in 32 bits.
func (n Node) AsInt32() (int32, error) {
	i, err := n.AsInt64()
	if err != nil {
		return 0, mismatch("int32", n)
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return 0, mismatch("int32", n)
	}
	return int32(i), nil
}

func isExactInteger(f float64) bool {
	return f == math.Trunc(f) && math.Abs(f) <= maxExactFloat
}
