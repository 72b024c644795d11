//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package md5 implements the MD5 message digest algorithm as defined
// in RFC 1321.
//
// MD5 is cryptographically broken and should not be used for secure
// applications. This package exists for compatibility with systems
// that identify data by its MD5 digest.
package md5

import (
	"encoding/binary"
	"encoding/hex"
	"math"
)

// The size of an MD5 digest in bytes.
const Size = 16

// The blocksize of MD5 in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
)

// sines holds the round constants floor(2^32 * |sin(i+1)|), i = 0..63.
var sines = func() [64]uint32 {
	var t [64]uint32
	for i := range t {
		t[i] = uint32(math.Floor(math.Ldexp(math.Abs(math.Sin(float64(i+1))), 32)))
	}
	return t
}()

// shifts holds the per-round shift amounts. Row r is used by round
// group r and column j%4 by round j.
var shifts = [4][4]int{
	{7, 12, 17, 22},
	{5, 9, 14, 20},
	{4, 11, 16, 23},
	{6, 10, 15, 21},
}

// State holds the four running MD5 state words.
type State struct {
	A, B, C, D uint32
}

// Init returns the initial MD5 state.
func Init() State {
	return State{
		A: init0,
		B: init1,
		C: init2,
		D: init3,
	}
}

// Digest serializes the state words in little-endian byte order.
func (s State) Digest() [Size]byte {
	var digest [Size]byte

	binary.LittleEndian.PutUint32(digest[0:], s.A)
	binary.LittleEndian.PutUint32(digest[4:], s.B)
	binary.LittleEndian.PutUint32(digest[8:], s.C)
	binary.LittleEndian.PutUint32(digest[12:], s.D)

	return digest
}

// String returns the digest of the state as 32 lowercase hex digits.
func (s State) String() string {
	digest := s.Digest()
	return hex.EncodeToString(digest[:])
}

// Block folds one 64-byte block into the state s and returns the new
// state. It panics if block is shorter than BlockSize bytes.
func Block(s State, block []byte) State {
	var x [16]uint32

	_ = block[BlockSize-1]
	for i := 0; i < 16; i++ {
		x[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	a, b, c, d := s.A, s.B, s.C, s.D

	// The four 16-round groups differ only in the round function and
	// the message word schedule k.
	j := 0
	for ; j < 16; j++ {
		t := roundF(b, c, d) + x[j] + sines[j] + a
		t = modularAdd(rotateLeft(t, shifts[0][j&3]), b)
		a, b, c, d = d, t, b, c
	}
	for ; j < 32; j++ {
		t := roundG(b, c, d) + x[(5*j+1)&0xf] + sines[j] + a
		t = modularAdd(rotateLeft(t, shifts[1][j&3]), b)
		a, b, c, d = d, t, b, c
	}
	for ; j < 48; j++ {
		t := roundH(b, c, d) + x[(3*j+5)&0xf] + sines[j] + a
		t = modularAdd(rotateLeft(t, shifts[2][j&3]), b)
		a, b, c, d = d, t, b, c
	}
	for ; j < 64; j++ {
		t := roundI(b, c, d) + x[(7*j)&0xf] + sines[j] + a
		t = modularAdd(rotateLeft(t, shifts[3][j&3]), b)
		a, b, c, d = d, t, b, c
	}

	return State{
		A: modularAdd(s.A, a),
		B: modularAdd(s.B, b),
		C: modularAdd(s.C, c),
		D: modularAdd(s.D, d),
	}
}

// blocks folds all complete blocks of p into the state s.
func blocks(s State, p []byte) State {
	for len(p) >= BlockSize {
		s = Block(s, p[:BlockSize])
		p = p[BlockSize:]
	}
	return s
}

// Pad returns msg followed by the MD5 padding and the 64-bit
// little-endian bit length of msg. The result length is a positive
// multiple of BlockSize.
func Pad(msg []byte) []byte {
	return pad(msg, uint64(len(msg)))
}

// pad pads the message tail msg of a message with total length bytes.
// The bit length is taken modulo 2^64.
func pad(msg []byte, length uint64) []byte {
	// Add a 1 bit and 0 bits until 56 bytes mod 64.
	var t uint64
	if length%64 < 56 {
		t = 56 - length%64
	} else {
		t = 64 + 56 - length%64
	}

	buf := make([]byte, len(msg)+int(t)+8)
	copy(buf, msg)
	buf[len(msg)] = 0x80

	// Length in bits.
	binary.LittleEndian.PutUint64(buf[len(buf)-8:], length<<3)

	return buf
}

// Sum returns the MD5 digest of data.
func Sum(data []byte) [Size]byte {
	state := Init()
	length := uint64(len(data))

	n := len(data) &^ (BlockSize - 1)
	state = blocks(state, data[:n])
	state = blocks(state, pad(data[n:], length))

	return state.Digest()
}

// Hex returns the MD5 digest of data as 32 lowercase hex digits.
func Hex(data []byte) string {
	digest := Sum(data)
	return hex.EncodeToString(digest[:])
}
