// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package gf256 implements GF(2⁸), the field with 256 elements.
//
// The field is GF(2)[x]/(x⁸+x⁴+x³+x²+1), modulus 0x11d, the conventional
// choice in storage and coding applications. Every byte value is a valid
// element. Multiplication and division go through generated discrete log and
// antilog tables for the primitive element 2 (see tables.go, regenerated by
// internal/generator). Addition is XOR, and subtraction equals addition since
// the characteristic is 2.
package gf256

import (
	"math/rand"
	"strconv"

	"github.com/consensys/galois/field"
)

// Element is an element of GF(2⁸). The zero value is the field's zero.
type Element uint8

var _ field.Element[Element] = Element(0)

// New returns the element encoded by v. Every byte is a valid element.
func New(v uint8) Element {
	return Element(v)
}

// Uint8 returns the canonical encoding of x.
func (x Element) Uint8() uint8 {
	return uint8(x)
}

// Zero returns the additive identity.
func (Element) Zero() Element {
	return 0
}

// IsZero reports whether x is the additive identity.
func (x Element) IsZero() bool {
	return x == 0
}

// One returns the multiplicative identity.
func (Element) One() Element {
	return 1
}

// IsOne reports whether x is the multiplicative identity.
func (x Element) IsOne() bool {
	return x == 1
}

// Random returns a uniform element drawn from rng.
func (Element) Random(rng *rand.Rand) Element {
	return Element(rng.Intn(256))
}

// Add returns x+y. Addition in characteristic 2 is XOR.
func (x Element) Add(y Element) Element {
	return x ^ y
}

// Sub returns x-y, which equals x+y in characteristic 2.
func (x Element) Sub(y Element) Element {
	return x ^ y
}

// Mul returns x*y via the log tables: x*y = g^(log x + log y).
func (x Element) Mul(y Element) Element {
	if x == 0 || y == 0 {
		return 0
	}
	s := int(logTable[x]) + int(logTable[y])
	if s >= 255 {
		s -= 255
	}
	return Element(expTable[s])
}

// Div returns x/y. The result is absent when y is zero.
func (x Element) Div(y Element) (Element, bool) {
	if y == 0 {
		return 0, false
	}
	if x == 0 {
		return 0, true
	}
	d := int(logTable[x]) - int(logTable[y])
	if d < 0 {
		d += 255
	}
	return Element(expTable[d]), true
}

// Inverse returns 1/x. The result is absent when x is zero.
func (x Element) Inverse() (Element, bool) {
	if x == 0 {
		return 0, false
	}
	return Element(expTable[255-logTable[x]]), true
}

// Equal reports whether x and y are the same element.
func (x Element) Equal(y Element) bool {
	return x == y
}

func (x Element) String() string {
	return strconv.Itoa(int(x))
}
