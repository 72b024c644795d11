//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"bufio"
	"errors"
	"io"
	"os"
)

const readBufferSize = 64 * 1024

// HashReader computes the MD5 digest of the data read from r until
// EOF. The data is processed one block at a time so its size is not
// limited by memory. HashReader returns the digest and the number of
// bytes read. On error, no digest is returned.
func HashReader(r io.Reader) ([Size]byte, uint64, error) {
	in := bufio.NewReaderSize(r, readBufferSize)

	var buf [BlockSize]byte
	var length uint64
	state := Init()

	for {
		n, err := io.ReadFull(in, buf[:])
		length += uint64(n)
		switch err {
		case nil:
			state = Block(state, buf[:])

		case io.EOF, io.ErrUnexpectedEOF:
			// The final partial block pads into one or two blocks.
			state = blocks(state, pad(buf[:n], length))
			return state.Digest(), length, nil

		default:
			return [Size]byte{}, length, err
		}
	}
}

// HashFile computes the MD5 digest of the file path. The file is
// opened read-only and read sequentially.
func HashFile(path string) ([Size]byte, uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return [Size]byte{}, 0, &IOError{
			Op:   "open",
			Path: path,
			Err:  unwrapPathError(err),
		}
	}
	defer f.Close()

	digest, length, err := HashReader(f)
	if err != nil {
		return [Size]byte{}, 0, &IOError{
			Op:   "read",
			Path: path,
			Err:  unwrapPathError(err),
		}
	}
	return digest, length, nil
}

func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
