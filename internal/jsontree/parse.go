package jsontree

import (
	"bytes"
	"errors"
	"unicode/utf8"

	json "github.com/goccy/go-json"
	"github.com/tidwall/jsonc"
)

// Parse parses one JSON document. Numbers keep their literal text so that
// 64-bit identifiers never round-trip through float64.
func Parse(data []byte) (Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Node{}, &SyntaxError{Err: errors.New("empty document")}
	}
	// Invalid UTF-8 is rejected, not replaced with U+FFFD.
	if !utf8.Valid(data) {
		return Node{}, &SyntaxError{Err: errors.New("document is not valid UTF-8")}
	}
	if !json.Valid(data) {
		return Node{}, &SyntaxError{Err: errors.New("malformed document")}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Node{}, &SyntaxError{Err: err}
	}
	return Node{v: v}, nil
}

// ParseJSONC parses JSON with comments and trailing commas.
func ParseJSONC(data []byte) (Node, error) {
	return Parse(jsonc.ToJSON(data))
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(s string) Node {
	n, err := Parse([]byte(s))
	if err != nil {
		panic(err)
	}
	return n
}
