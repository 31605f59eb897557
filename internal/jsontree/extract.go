package jsontree

// Has reports whether obj is an object with a member named key. A member
// holding JSON null is present.
func Has(obj Node, key string) bool {
	_, ok := obj.Get(key)
	return ok
}

// Field returns the member named key of obj.
func Field(obj Node, key string) (Node, bool) {
	return obj.Get(key)
}

// String reads a string member. An absent member yields ErrAbsent, a member
// of another kind a TypeMismatchError whose path is key.
func String(obj Node, key string) (string, error) {
	n, ok := obj.Get(key)
	if !ok {
		return "", ErrAbsent
	}
	s, err := n.AsString()
	return s, AtKey(err, key)
}

// Bool reads a boolean member.
func Bool(obj Node, key string) (bool, error) {
	n, ok := obj.Get(key)
	if !ok {
		return false, ErrAbsent
	}
	b, err := n.AsBool()
	return b, AtKey(err, key)
}

// Int64 reads an integral member that fits in 64 bits.
func Int64(obj Node, key string) (int64, error) {
	n, ok := obj.Get(key)
	if !ok {
		return 0, ErrAbsent
	}
	i, err := n.AsInt64()
	return i, AtKey(err, key)
}

// Int32 reads an integral member that fits in 32 bits.
func Int32(obj Node, key string) (int32, error) {
	n, ok := obj.Get(key)
	if !ok {
		return 0, ErrAbsent
	}
	i, err := n.AsInt32()
	return i, AtKey(err, key)
}

// Float64 reads a number member.
func Float64(obj Node, key string) (float64, error) {
	n, ok := obj.Get(key)
	if !ok {
		return 0, ErrAbsent
	}
	f, err := n.AsFloat64()
	return f, AtKey(err, key)
}

// Int64s reads every element of an array node as a 64-bit integer, in
// order. One bad element fails the whole array.
func Int64s(arr Node) ([]int64, error) {
	if arr.Kind() != KindArray {
		return nil, mismatch("array", arr)
	}
	out := make([]int64, 0, arr.Len())
	for i, el := range arr.Elements() {
		v, err := el.AsInt64()
		if err != nil {
			return nil, AtIndex(err, i)
		}
		out = append(out, v)
	}
	return out, nil
}
