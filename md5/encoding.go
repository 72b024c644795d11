//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Encode converts the text s into the byte sequence of the named text
// encoding. The text must be valid UTF-8 and every rune must be
// representable in the target encoding.
func Encode(s, name string) ([]byte, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = name
	}

	_, _, err = transform.String(encoding.UTF8Validator, s)
	if err != nil {
		return nil, &EncodingError{
			Encoding: canonical,
			Err:      err,
		}
	}
	if canonical == "utf-8" {
		return []byte(s), nil
	}

	data, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, &EncodingError{
			Encoding: canonical,
			Err:      err,
		}
	}
	return data, nil
}
