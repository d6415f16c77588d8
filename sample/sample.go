// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package sample draws random field vectors and polynomials.
//
// Every function takes the randomness source as an explicit argument; the
// package keeps no global generator state, so callers control seeding and
// reproducibility. NewSource builds a deterministic byte-seeded source for
// that purpose.
package sample

import (
	"fmt"
	"math/rand"

	"github.com/bits-and-blooms/bitset"

	"github.com/consensys/galois/field"
	"github.com/consensys/galois/polynomial"
)

// Vector returns length elements drawn uniformly from rng.
func Vector[E field.Element[E]](rng *rand.Rand, length int) []E {
	var sample E
	v := make([]E, length)
	for i := range v {
		v[i] = sample.Random(rng)
	}
	return v
}

// ErrorVector returns a vector of the given length with exactly weight
// non-zero entries at uniformly shuffled positions. The non-zero values are
// drawn uniformly from the field's units.
func ErrorVector[E field.Element[E]](rng *rand.Rand, length, weight int) ([]E, error) {
	if length < 0 {
		return nil, fmt.Errorf("negative length %d", length)
	}
	if weight < 0 || weight > length {
		return nil, fmt.Errorf("weight %d out of range for length %d", weight, length)
	}

	var sample E
	zero := sample.Zero()
	v := make([]E, length)
	for i := range v {
		v[i] = zero
	}
	for i := 0; i < weight; i++ {
		e := sample.Random(rng)
		for e.IsZero() {
			e = sample.Random(rng)
		}
		v[i] = e
	}
	rng.Shuffle(length, func(i, j int) {
		v[i], v[j] = v[j], v[i]
	})
	return v, nil
}

// Polynomial returns a polynomial of exactly the given degree: coefficients
// drawn uniformly from rng, with the leading coefficient re-drawn until
// non-zero.
func Polynomial[E field.Element[E]](rng *rand.Rand, degree int) (polynomial.Polynomial[E], error) {
	if degree < 0 {
		return polynomial.New[E](), fmt.Errorf("negative degree %d", degree)
	}

	var sample E
	coefficients := Vector[E](rng, degree+1)
	for coefficients[degree].IsZero() {
		coefficients[degree] = sample.Random(rng)
	}
	return polynomial.FromCoefficients(coefficients), nil
}

// Support returns the positions of the non-zero entries of v.
func Support[E field.Element[E]](v []E) *bitset.BitSet {
	s := bitset.New(uint(len(v)))
	for i, e := range v {
		if !e.IsZero() {
			s.Set(uint(i))
		}
	}
	return s
}
