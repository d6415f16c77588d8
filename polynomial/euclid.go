// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package polynomial

import "github.com/consensys/galois/field"

// ExtendedGCD computes a greatest common divisor of poly and modulus and,
// when the Euclidean remainder sequence reaches the constant one, the Bézout
// coefficient t with t*poly ≡ 1 (mod modulus).
//
// The function is specialized for modular inversion, not general gcd: it
// requires deg(modulus) > deg(poly) and poly non-zero, and reports a
// violation of either precondition as both results absent. When the remainder
// sequence instead ends in zero, the gcd (the last non-zero remainder, not
// normalized to be monic) is reported with the inverse absent: poly and
// modulus are not coprime, or poly is a constant and the sequence ends at it
// in one step.
func ExtendedGCD[E field.Element[E]](poly, modulus Polynomial[E]) (gcd, inverse Polynomial[E], gcdOK, inverseOK bool) {
	if modulus.Degree() <= poly.Degree() || poly.IsZero() {
		return New[E](), New[E](), false, false
	}

	rPrev, rCur := modulus, poly
	tPrev, tCur := New[E](), One[E]()

	for {
		quotient, remainder, ok := rPrev.DivMod(rCur)
		if !ok {
			// cannot occur while the preconditions hold: every divisor here
			// is a non-zero remainder
			return New[E](), New[E](), false, false
		}

		t := tPrev.Sub(quotient.Mul(tCur))
		rPrev, rCur = rCur, remainder
		tPrev, tCur = tCur, t

		switch {
		case rCur.IsOne():
			return rCur, tCur, true, true
		case rCur.IsZero():
			return rPrev, New[E](), true, false
		}
	}
}
