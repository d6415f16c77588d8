// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package koalabear adapts the gnark-crypto KoalaBear field (the 31-bit prime
// 2³¹-2²⁴+1) to the field.Element contract.
//
// gnark-crypto elements use pointer receivers and in-place mutation; the
// adapter re-exposes them as immutable values so they can serve as polynomial
// coefficients.
package koalabear

import (
	"math/rand"

	"github.com/consensys/galois/field"
	fr "github.com/consensys/gnark-crypto/field/koalabear"
)

// Element is an element of the KoalaBear prime field. The zero value is the
// field's zero.
type Element struct {
	v fr.Element
}

var _ field.Element[Element] = Element{}

var modulus = fr.Modulus().Int64()

// New returns the element v mod q.
func New(v uint64) Element {
	return Element{v: fr.NewElement(v)}
}

// Zero returns the additive identity.
func (Element) Zero() Element {
	return Element{}
}

// IsZero reports whether x is the additive identity.
func (x Element) IsZero() bool {
	return x.v.IsZero()
}

// One returns the multiplicative identity.
func (Element) One() Element {
	var o fr.Element
	o.SetOne()
	return Element{v: o}
}

// IsOne reports whether x is the multiplicative identity.
func (x Element) IsOne() bool {
	return x.v.IsOne()
}

// Random returns a uniform element drawn from rng.
func (Element) Random(rng *rand.Rand) Element {
	return Element{v: fr.NewElement(uint64(rng.Int63n(modulus)))}
}

// Add returns x+y.
func (x Element) Add(y Element) Element {
	var r fr.Element
	r.Add(&x.v, &y.v)
	return Element{v: r}
}

// Sub returns x-y.
func (x Element) Sub(y Element) Element {
	var r fr.Element
	r.Sub(&x.v, &y.v)
	return Element{v: r}
}

// Mul returns x*y.
func (x Element) Mul(y Element) Element {
	var r fr.Element
	r.Mul(&x.v, &y.v)
	return Element{v: r}
}

// Div returns x/y. The result is absent when y is zero.
func (x Element) Div(y Element) (Element, bool) {
	if y.v.IsZero() {
		return Element{}, false
	}
	var r fr.Element
	r.Div(&x.v, &y.v)
	return Element{v: r}, true
}

// Equal reports whether x and y are the same element.
func (x Element) Equal(y Element) bool {
	return x.v.Equal(&y.v)
}

func (x Element) String() string {
	return x.v.String()
}
