//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"fmt"
	"math/bits"
)

// Variant selects one of the four MD5 round functions.
type Variant int

// Round function variants, in the order of the round groups.
const (
	F Variant = iota
	G
	H
	I
)

var variants = map[Variant]string{
	F: "F",
	G: "G",
	H: "H",
	I: "I",
}

func (v Variant) String() string {
	name, ok := variants[v]
	if ok {
		return name
	}
	return fmt.Sprintf("{Variant %d}", int(v))
}

// modularAdd returns a+b mod 2^32.
func modularAdd(a, b uint32) uint32 {
	return a + b
}

// rotateLeft rotates x left by n bits, 0 < n < 32.
func rotateLeft(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, n)
}

func roundF(b, c, d uint32) uint32 {
	return b&c | ^b&d
}

func roundG(b, c, d uint32) uint32 {
	return b&d | c&^d
}

func roundH(b, c, d uint32) uint32 {
	return b ^ c ^ d
}

func roundI(b, c, d uint32) uint32 {
	return c ^ (b | ^d)
}

// RoundFunction evaluates the round function variant v for the words
// b, c, and d. It is the dispatching form of the round functions that
// Block unrolls per round group.
func RoundFunction(v Variant, b, c, d uint32) uint32 {
	switch v {
	case F:
		return roundF(b, c, d)
	case G:
		return roundG(b, c, d)
	case H:
		return roundH(b, c, d)
	case I:
		return roundI(b, c, d)
	default:
		panic("md5: invalid round function variant " + v.String())
	}
}
