// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package gf4 implements GF(4), the field with four elements.
//
// GF(4) is GF(2)[x]/(x²+x+1); its elements are {0, 1, α, α+1} where α is a
// root of x²+x+1, so α² = α+1. The field has characteristic 2, hence
// subtraction coincides with addition. All arithmetic is table lookups on the
// canonical encoding 0, 1, 2, 3.
package gf4

import (
	"math/rand"

	"github.com/consensys/galois/field"
)

// Element is an element of GF(4). The zero value is the field's zero.
type Element uint8

const (
	Zero         Element = iota // additive identity
	One                         // multiplicative identity
	Alpha                       // α, a root of x²+x+1
	AlphaPlusOne                // α+1 = α²
)

var _ field.Element[Element] = Element(0)

// row x, column y
var addTable = [4][4]Element{
	{Zero, One, Alpha, AlphaPlusOne},
	{One, Zero, AlphaPlusOne, Alpha},
	{Alpha, AlphaPlusOne, Zero, One},
	{AlphaPlusOne, Alpha, One, Zero},
}

var mulTable = [4][4]Element{
	{Zero, Zero, Zero, Zero},
	{Zero, One, Alpha, AlphaPlusOne},
	{Zero, Alpha, AlphaPlusOne, One},
	{Zero, AlphaPlusOne, One, Alpha},
}

// row x, column y-1; the y = 0 column does not exist
var divTable = [4][3]Element{
	{Zero, Zero, Zero},
	{One, AlphaPlusOne, Alpha},
	{Alpha, One, AlphaPlusOne},
	{AlphaPlusOne, Alpha, One},
}

// New returns the element encoded by v. The result is absent when v is not a
// valid encoding (v > 3).
func New(v uint8) (Element, bool) {
	if v > uint8(AlphaPlusOne) {
		return Zero, false
	}
	return Element(v), true
}

// Uint8 returns the canonical encoding of x.
func (x Element) Uint8() uint8 {
	return uint8(x)
}

// Zero returns the additive identity.
func (Element) Zero() Element {
	return Zero
}

// IsZero reports whether x is the additive identity.
func (x Element) IsZero() bool {
	return x == Zero
}

// One returns the multiplicative identity.
func (Element) One() Element {
	return One
}

// IsOne reports whether x is the multiplicative identity.
func (x Element) IsOne() bool {
	return x == One
}

// Random returns a uniform element drawn from rng.
func (Element) Random(rng *rand.Rand) Element {
	return Element(rng.Intn(4))
}

// Add returns x+y.
func (x Element) Add(y Element) Element {
	return addTable[x][y]
}

// Sub returns x-y. In characteristic 2 every element is its own additive
// inverse, so this equals Add.
func (x Element) Sub(y Element) Element {
	return addTable[x][y]
}

// Mul returns x*y.
func (x Element) Mul(y Element) Element {
	return mulTable[x][y]
}

// Div returns x/y. The result is absent when y is zero.
func (x Element) Div(y Element) (Element, bool) {
	if y == Zero {
		return Zero, false
	}
	return divTable[x][y-1], true
}

// Equal reports whether x and y are the same element.
func (x Element) Equal(y Element) bool {
	return x == y
}

func (x Element) String() string {
	switch x {
	case One:
		return "1"
	case Alpha:
		return "α"
	case AlphaPlusOne:
		return "α+1"
	default:
		return "0"
	}
}
