//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	"testing"
)

func TestModularAdd(t *testing.T) {
	tests := []struct {
		a, b, sum uint32
	}{
		{0, 0, 0},
		{1, 2, 3},
		{0xffffffff, 1, 0},
		{0xffffffff, 0xffffffff, 0xfffffffe},
		{0x80000000, 0x80000000, 0},
	}
	for _, test := range tests {
		if sum := modularAdd(test.a, test.b); sum != test.sum {
			t.Errorf("modularAdd(%08x, %08x): got %08x, expected %08x",
				test.a, test.b, sum, test.sum)
		}
	}
}

func TestRotateLeft(t *testing.T) {
	tests := []struct {
		x      uint32
		n      int
		result uint32
	}{
		{0x00000001, 1, 0x00000002},
		{0x80000000, 1, 0x00000001},
		{0x12345678, 4, 0x23456781},
		{0x12345678, 31, 0x091a2b3c},
		{0xf0000000, 7, 0x00000078},
	}
	for _, test := range tests {
		if r := rotateLeft(test.x, test.n); r != test.result {
			t.Errorf("rotateLeft(%08x, %d): got %08x, expected %08x",
				test.x, test.n, r, test.result)
		}
	}
}

func TestRoundFunction(t *testing.T) {
	words := []uint32{0, 0xffffffff, 0x12345678, 0x9abcdef0, 0xdeadbeef}
	for _, b := range words {
		for _, c := range words {
			for _, d := range words {
				f := (b & c) | (^b & d)
				g := (b & d) | (c & ^d)
				h := b ^ c ^ d
				i := c ^ (b | ^d)

				for v, want := range map[Variant]uint32{
					F: f, G: g, H: h, I: i,
				} {
					got := RoundFunction(v, b, c, d)
					if got != want {
						t.Errorf("%v(%08x, %08x, %08x): got %08x, expected %08x",
							v, b, c, d, got, want)
					}
				}
			}
		}
	}
}

func TestRoundFunctionInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("RoundFunction did not panic for invalid variant")
		}
	}()
	RoundFunction(Variant(4), 1, 2, 3)
}

func TestVariantString(t *testing.T) {
	if s := H.String(); s != "H" {
		t.Errorf("H.String: got %q", s)
	}
	if s := Variant(9).String(); s != "{Variant 9}" {
		t.Errorf("Variant(9).String: got %q", s)
	}
}
