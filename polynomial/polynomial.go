// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package polynomial implements univariate polynomials over any finite field
// satisfying the field.Element contract.
//
// A polynomial is stored as its coefficient slice in ascending degree order:
// index 0 is the constant term. Every polynomial is kept in canonical form,
// meaning the slice carries no trailing zero coefficients; the zero polynomial
// is the single zero coefficient. Degree is the index of the last stored
// coefficient, so the zero polynomial has degree 0, indistinguishable by
// degree alone from a non-zero constant.
//
// Polynomials are immutable values. Operations return fresh results and never
// mutate their operands, so values can be shared freely across goroutines.
// Division and inversion are partial; their absent results are reported
// through an ok bool, never a panic.
package polynomial

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/gnark-crypto/utils"

	"github.com/consensys/galois/field"
)

// Polynomial is a univariate polynomial with coefficients in E, in canonical
// form. Use New or FromCoefficients to obtain one; the zero value of the
// struct is not a valid polynomial.
type Polynomial[E field.Element[E]] struct {
	coefficients []E
}

func zero[E field.Element[E]]() E {
	var e E
	return e.Zero()
}

// trim strips trailing zero coefficients in place and never returns an empty
// slice: stripping everything yields the single zero coefficient.
func trim[E field.Element[E]](coefficients []E) []E {
	last := len(coefficients) - 1
	for last >= 0 && coefficients[last].IsZero() {
		last--
	}
	if last < 0 {
		return []E{zero[E]()}
	}
	return coefficients[:last+1]
}

// New returns the zero polynomial.
func New[E field.Element[E]]() Polynomial[E] {
	return Polynomial[E]{coefficients: []E{zero[E]()}}
}

// One returns the constant polynomial 1.
func One[E field.Element[E]]() Polynomial[E] {
	var e E
	return Polynomial[E]{coefficients: []E{e.One()}}
}

// FromCoefficients returns the polynomial with the given coefficients in
// ascending degree order, brought to canonical form. The slice is copied; an
// empty or all-zero slice yields the zero polynomial.
func FromCoefficients[E field.Element[E]](coefficients []E) Polynomial[E] {
	c := make([]E, len(coefficients))
	copy(c, coefficients)
	return Polynomial[E]{coefficients: trim(c)}
}

// Degree returns the degree of p. By the canonical-form convention the zero
// polynomial has degree 0.
func (p Polynomial[E]) Degree() int {
	return len(p.coefficients) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial[E]) IsZero() bool {
	return len(p.coefficients) == 1 && p.coefficients[0].IsZero()
}

// IsOne reports whether p is the constant polynomial 1.
func (p Polynomial[E]) IsOne() bool {
	return len(p.coefficients) == 1 && p.coefficients[0].IsOne()
}

// Coefficient returns the coefficient of the degree-i term. The result is
// absent when i is negative or exceeds the degree.
func (p Polynomial[E]) Coefficient(i int) (E, bool) {
	if i < 0 || i >= len(p.coefficients) {
		return zero[E](), false
	}
	return p.coefficients[i], true
}

// Coefficients returns a copy of the canonical coefficient slice.
func (p Polynomial[E]) Coefficients() []E {
	c := make([]E, len(p.coefficients))
	copy(c, p.coefficients)
	return c
}

// Equal reports whether p and q are the same polynomial. Canonical form makes
// this a plain coefficient comparison.
func (p Polynomial[E]) Equal(q Polynomial[E]) bool {
	if len(p.coefficients) != len(q.coefficients) {
		return false
	}
	for i := range p.coefficients {
		if !p.coefficients[i].Equal(q.coefficients[i]) {
			return false
		}
	}
	return true
}

// Add returns p+q.
func (p Polynomial[E]) Add(q Polynomial[E]) Polynomial[E] {
	long, short := p.coefficients, q.coefficients
	if len(long) < len(short) {
		long, short = short, long
	}
	sum := make([]E, len(long))
	copy(sum, long)
	for i, c := range short {
		sum[i] = sum[i].Add(c)
	}
	return Polynomial[E]{coefficients: trim(sum)}
}

// Sub returns p-q.
func (p Polynomial[E]) Sub(q Polynomial[E]) Polynomial[E] {
	z := zero[E]()
	diff := make([]E, max(len(p.coefficients), len(q.coefficients)))
	for i := range diff {
		a, b := z, z
		if i < len(p.coefficients) {
			a = p.coefficients[i]
		}
		if i < len(q.coefficients) {
			b = q.coefficients[i]
		}
		diff[i] = a.Sub(b)
	}
	return Polynomial[E]{coefficients: trim(diff)}
}

// Mul returns p*q, by schoolbook convolution.
func (p Polynomial[E]) Mul(q Polynomial[E]) Polynomial[E] {
	z := zero[E]()
	prod := make([]E, len(p.coefficients)+len(q.coefficients)-1)
	for i := range prod {
		prod[i] = z
	}
	for i, a := range p.coefficients {
		for j, b := range q.coefficients {
			prod[i+j] = prod[i+j].Add(a.Mul(b))
		}
	}
	return Polynomial[E]{coefficients: trim(prod)}
}

// DivMod returns the Euclidean division of p by q: p = quotient*q + remainder
// with remainder either zero or of degree smaller than q. The results are
// absent when q is the zero polynomial. When deg(p) < deg(q) the quotient is
// zero and the remainder is p itself.
func (p Polynomial[E]) DivMod(q Polynomial[E]) (quotient, remainder Polynomial[E], ok bool) {
	if q.IsZero() {
		return New[E](), New[E](), false
	}
	if p.Degree() < q.Degree() {
		return New[E](), p, true
	}

	z := zero[E]()
	quot := make([]E, p.Degree()-q.Degree()+1)
	for i := range quot {
		quot[i] = z
	}
	qLead := q.coefficients[q.Degree()]

	rem := p
	for !rem.IsZero() && rem.Degree() >= q.Degree() {
		// q is non-zero and canonical, so its leading coefficient is invertible
		d, _ := rem.coefficients[rem.Degree()].Div(qLead)
		offset := rem.Degree() - q.Degree()
		quot[offset] = d

		next := make([]E, rem.Degree()+1)
		copy(next, rem.coefficients)
		for i, c := range q.coefficients {
			next[offset+i] = next[offset+i].Sub(d.Mul(c))
		}
		// the leading term cancelled, so the degree strictly drops here
		rem = Polynomial[E]{coefficients: trim(next)}
	}

	return Polynomial[E]{coefficients: trim(quot)}, rem, true
}

// Invert returns the multiplicative inverse of p in the quotient ring mod
// modulus, i.e. a polynomial t with p*t ≡ 1 (mod modulus). The result is
// absent when ExtendedGCD produces no such t: p zero, deg(modulus) ≤ deg(p),
// or a gcd other than the constant one.
func (p Polynomial[E]) Invert(modulus Polynomial[E]) (Polynomial[E], bool) {
	_, inverse, _, ok := ExtendedGCD(p, modulus)
	return inverse, ok
}

// Evaluate returns p(x), by Horner's rule.
func (p Polynomial[E]) Evaluate(x E) E {
	res := p.coefficients[len(p.coefficients)-1]
	for i := len(p.coefficients) - 2; i >= 0; i-- {
		res = res.Mul(x).Add(p.coefficients[i])
	}
	return res
}

func (p Polynomial[E]) String() string {
	if p.IsZero() {
		return "0"
	}

	var builder strings.Builder
	first := true
	for d := len(p.coefficients) - 1; d >= 0; d-- {
		c := p.coefficients[d]
		if c.IsZero() {
			continue
		}

		if !first {
			builder.WriteString(" + ")
		}
		first = false

		if !c.IsOne() || d == 0 {
			text := fmt.Sprintf("%v", c)
			if d != 0 && strings.ContainsAny(text, "+- ") {
				text = "(" + text + ")"
			}
			builder.WriteString(text)
		}

		if d != 0 {
			builder.WriteString("X")
		}
		if d > 1 {
			builder.WriteString(utils.ToSuperscript(strconv.Itoa(d)))
		}
	}

	return builder.String()
}
