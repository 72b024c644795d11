//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a hash operation is called with
	// an input that carries neither text, bytes, nor a file path.
	ErrInvalidInput = errors.New("md5: no input")

	// ErrUnknownEncoding is returned for text encoding names that do
	// not resolve to a known encoding.
	ErrUnknownEncoding = errors.New("md5: unknown encoding")
)

// IOError describes a failure to access or read a file input. No
// digest is produced for the file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("md5: %s %s: %s", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// EncodingError describes a text input that can not be represented in
// the selected text encoding.
type EncodingError struct {
	Encoding string
	Err      error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("md5: encoding %s: %s", e.Encoding, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
