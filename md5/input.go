//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/markkurossi/md5/env"
)

// Kind defines the input kinds.
type Kind int

// Input kinds.
const (
	KindNone Kind = iota
	KindText
	KindBytes
	KindFile
)

var kinds = map[Kind]string{
	KindNone:  "none",
	KindText:  "text",
	KindBytes: "bytes",
	KindFile:  "file",
}

func (k Kind) String() string {
	name, ok := kinds[k]
	if ok {
		return name
	}
	return fmt.Sprintf("{Kind %d}", int(k))
}

// Input defines the data to hash. It is created with Text, Bytes, or
// File. The zero Input is invalid.
type Input struct {
	kind Kind
	text string
	data []byte
	path string
}

// Text creates a text input. The text is encoded with the configured
// text encoding before hashing.
func Text(s string) Input {
	return Input{
		kind: KindText,
		text: s,
	}
}

// Bytes creates an in-memory byte sequence input.
func Bytes(data []byte) Input {
	return Input{
		kind: KindBytes,
		data: data,
	}
}

// File creates a file input for the file path.
func File(path string) Input {
	return Input{
		kind: KindFile,
		path: path,
	}
}

// Kind returns the input kind.
func (in Input) Kind() Kind {
	return in.kind
}

// Path returns the file path of a file input.
func (in Input) Path() string {
	return in.path
}

func (in Input) String() string {
	switch in.kind {
	case KindText:
		return strconv.Quote(in.text)
	case KindBytes:
		return fmt.Sprintf("%d bytes", len(in.data))
	case KindFile:
		return in.path
	default:
		return in.kind.String()
	}
}

// Hash computes the MD5 digest of the input and returns it as 32
// lowercase hex digits.
func Hash(in Input, config *env.Config) (string, error) {
	digest, _, err := hash(in, config)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(digest[:]), nil
}

func hash(in Input, config *env.Config) ([Size]byte, uint64, error) {
	switch in.kind {
	case KindText:
		data, err := Encode(in.text, config.GetEncoding())
		if err != nil {
			return [Size]byte{}, 0, err
		}
		return Sum(data), uint64(len(data)), nil

	case KindBytes:
		return Sum(in.data), uint64(len(in.data)), nil

	case KindFile:
		return HashFile(in.path)

	default:
		return [Size]byte{}, 0, ErrInvalidInput
	}
}
