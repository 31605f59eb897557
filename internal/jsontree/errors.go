package jsontree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrTypeMismatch matches every *TypeMismatchError.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrAbsent is returned by the field extractors when the key is missing.
	ErrAbsent = errors.New("field absent")
	// ErrSyntax matches every *SyntaxError.
	ErrSyntax = errors.New("invalid json")
)

// TypeMismatchError reports a present value whose JSON kind does not match
// what the reader expected.
type TypeMismatchError struct {
	// Path locates the value, e.g. "pinned_message.attachments[2]". Empty
	// for the root.
	Path     string
	Expected string
	Actual   Kind
}

func (e *TypeMismatchError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
	}
	return fmt.Sprintf("type mismatch at %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

func mismatch(expected string, n Node) error {
	return &TypeMismatchError{Expected: expected, Actual: n.Kind()}
}

// Mismatch builds a TypeMismatchError for n at the root path.
func Mismatch(expected string, n Node) error { return mismatch(expected, n) }

// AtKey prefixes the path of a TypeMismatchError with an object key. Other
// errors are returned unchanged.
func AtKey(err error, key string) error {
	tm, ok := err.(*TypeMismatchError)
	if !ok {
		return err
	}
	path := key
	switch {
	case tm.Path == "":
	case strings.HasPrefix(tm.Path, "["):
		path += tm.Path
	default:
		path += "." + tm.Path
	}
	return &TypeMismatchError{Path: path, Expected: tm.Expected, Actual: tm.Actual}
}

// AtIndex prefixes the path of a TypeMismatchError with an array index.
func AtIndex(err error, i int) error {
	tm, ok := err.(*TypeMismatchError)
	if !ok {
		return err
	}
	path := "[" + strconv.Itoa(i) + "]"
	switch {
	case tm.Path == "":
	case strings.HasPrefix(tm.Path, "["):
		path += tm.Path
	default:
		path += "." + tm.Path
	}
	return &TypeMismatchError{Path: path, Expected: tm.Expected, Actual: tm.Actual}
}

// SyntaxError wraps a failure to parse JSON text.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string { return "invalid json: " + e.Err.Error() }

func (e *SyntaxError) Unwrap() error { return e.Err }

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }
