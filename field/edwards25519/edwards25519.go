// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package edwards25519 adapts the scalar field of edwards25519 (the prime
// order l = 2²⁵² + 27742317777372353535851937790883648493 of the curve's
// large subgroup) to the field.Element contract, on top of
// filippo.io/edwards25519.
package edwards25519

import (
	"encoding/binary"
	"encoding/hex"
	"math/rand"

	"filippo.io/edwards25519"

	"github.com/consensys/galois/field"
)

// Element is an element of the edwards25519 scalar field. The zero value is
// the field's zero.
type Element struct {
	v edwards25519.Scalar
}

var _ field.Element[Element] = Element{}

var scalarOne = func() edwards25519.Scalar {
	var b [32]byte
	b[0] = 1
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(b[:])
	if err != nil {
		panic(err)
	}
	return *s
}()

// New returns the element v mod l.
func New(v uint64) Element {
	var b [32]byte
	binary.LittleEndian.PutUint64(b[:8], v)
	// a 64-bit value is always canonical (l > 2^64)
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(b[:])
	if err != nil {
		panic(err)
	}
	return Element{v: *s}
}

// FromCanonicalBytes returns the element encoded by the 32-byte little-endian
// value b. The result is absent when b is not a canonical encoding (not 32
// bytes, or ≥ l).
func FromCanonicalBytes(b []byte) (Element, bool) {
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(b)
	if err != nil {
		return Element{}, false
	}
	return Element{v: *s}, true
}

// Bytes returns the canonical 32-byte little-endian encoding of x.
func (x Element) Bytes() []byte {
	return x.v.Bytes()
}

// Zero returns the additive identity.
func (Element) Zero() Element {
	return Element{}
}

// IsZero reports whether x is the additive identity.
func (x Element) IsZero() bool {
	return x.v.Equal(edwards25519.NewScalar()) == 1
}

// One returns the multiplicative identity.
func (Element) One() Element {
	return Element{v: scalarOne}
}

// IsOne reports whether x is the multiplicative identity.
func (x Element) IsOne() bool {
	return x.v.Equal(&scalarOne) == 1
}

// Random returns a uniform element drawn from rng, by reducing a 64-byte wide
// draw mod l.
func (Element) Random(rng *rand.Rand) Element {
	var buf [64]byte
	_, _ = rng.Read(buf[:]) // never fails
	s, err := new(edwards25519.Scalar).SetUniformBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return Element{v: *s}
}

// Add returns x+y.
func (x Element) Add(y Element) Element {
	var r edwards25519.Scalar
	r.Add(&x.v, &y.v)
	return Element{v: r}
}

// Sub returns x-y.
func (x Element) Sub(y Element) Element {
	var r edwards25519.Scalar
	r.Subtract(&x.v, &y.v)
	return Element{v: r}
}

// Mul returns x*y.
func (x Element) Mul(y Element) Element {
	var r edwards25519.Scalar
	r.Multiply(&x.v, &y.v)
	return Element{v: r}
}

// Div returns x/y. The result is absent when y is zero.
func (x Element) Div(y Element) (Element, bool) {
	if y.IsZero() {
		return Element{}, false
	}
	var inv, r edwards25519.Scalar
	inv.Invert(&y.v)
	r.Multiply(&x.v, &inv)
	return Element{v: r}, true
}

// Equal reports whether x and y are the same element.
func (x Element) Equal(y Element) bool {
	return x.v.Equal(&y.v) == 1
}

func (x Element) String() string {
	return hex.EncodeToString(x.v.Bytes())
}
