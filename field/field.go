// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package field defines the contract a finite field element must satisfy to be
// usable as a polynomial coefficient.
//
// The contract is a self-referential generic interface: a concrete element
// type E declares itself as its own operand type, so all arithmetic stays
// fully typed with no runtime assertions. Implementations are immutable
// values; every operation returns a new element and never mutates its
// receiver or argument. That makes shared elements safe to use from
// concurrent goroutines without synchronization.
//
// Division is the only partial operation. Dividing by the additive identity
// has no result, and implementations report that through the second return
// value instead of panicking.
package field

import "math/rand"

// Element is implemented by the element type of a finite field.
//
// Zero, One and Random mint new values and ignore the receiver; they exist on
// the element (rather than on a separate factory type) so that generic code
// holding any E can produce the identities of the same field.
type Element[E any] interface {
	Zero() E                 // Zero returns the additive identity.
	IsZero() bool            // IsZero reports whether the element is the additive identity.
	One() E                  // One returns the multiplicative identity.
	IsOne() bool             // IsOne reports whether the element is the multiplicative identity.
	Random(rng *rand.Rand) E // Random returns a uniform element drawn from rng.
	Add(y E) E               // Add x+y
	Sub(y E) E               // Sub x-y
	Mul(y E) E               // Mul x*y
	Div(y E) (E, bool)       // Div x/y; the result is absent when y is zero.
	Equal(y E) bool          // Equal reports whether two elements are the same field value.
}
