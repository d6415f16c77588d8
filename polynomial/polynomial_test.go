package polynomial_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/consensys/galois/field/gf4"
	"github.com/consensys/galois/polynomial"
)

// poly builds a GF(4) polynomial from coefficients in ascending degree order.
func poly(coefficients ...gf4.Element) polynomial.Polynomial[gf4.Element] {
	return polynomial.FromCoefficients(coefficients)
}

func TestCanonicalForm(t *testing.T) {
	assert := require.New(t)

	z := polynomial.New[gf4.Element]()
	assert.True(z.IsZero())
	assert.Equal(0, z.Degree())

	one := polynomial.One[gf4.Element]()
	assert.True(one.IsOne())
	assert.False(one.IsZero())
	assert.Equal(0, one.Degree())

	// trailing zeros are stripped on construction
	p := poly(gf4.One, gf4.Alpha, gf4.Zero, gf4.Zero)
	assert.Equal(1, p.Degree())
	assert.Equal([]gf4.Element{gf4.One, gf4.Alpha}, p.Coefficients())

	// an all-zero or empty sequence is the zero polynomial
	assert.True(poly(gf4.Zero, gf4.Zero, gf4.Zero).IsZero())
	assert.True(poly().IsZero())
	assert.Equal(0, poly().Degree())

	// a lone non-zero constant is not one unless it is one
	assert.False(poly(gf4.Alpha).IsOne())
	assert.True(poly(gf4.One).IsOne())
}

func TestCoefficientAccess(t *testing.T) {
	assert := require.New(t)

	p := poly(gf4.One, gf4.Zero, gf4.AlphaPlusOne)

	c, ok := p.Coefficient(0)
	assert.True(ok)
	assert.Equal(gf4.One, c)

	c, ok = p.Coefficient(1)
	assert.True(ok)
	assert.Equal(gf4.Zero, c)

	c, ok = p.Coefficient(2)
	assert.True(ok)
	assert.Equal(gf4.AlphaPlusOne, c)

	_, ok = p.Coefficient(3)
	assert.False(ok)
	_, ok = p.Coefficient(-1)
	assert.False(ok)

	// the returned slice is a copy; writing to it must not reach p
	coeffs := p.Coefficients()
	coeffs[0] = gf4.Alpha
	c, _ = p.Coefficient(0)
	assert.Equal(gf4.One, c)
}

func TestEqual(t *testing.T) {
	assert := require.New(t)

	p := poly(gf4.One, gf4.Alpha)
	assert.True(p.Equal(poly(gf4.One, gf4.Alpha)))
	assert.False(p.Equal(poly(gf4.One, gf4.AlphaPlusOne)))
	assert.False(p.Equal(poly(gf4.One, gf4.Alpha, gf4.One)))
	assert.True(polynomial.New[gf4.Element]().Equal(poly(gf4.Zero)))
}

func TestAdd(t *testing.T) {
	assert := require.New(t)

	p := poly(gf4.One, gf4.Alpha, gf4.One)
	q := poly(gf4.AlphaPlusOne, gf4.Alpha)

	sum := p.Add(q)
	assert.Equal([]gf4.Element{gf4.Alpha, gf4.Zero, gf4.One}, sum.Coefficients())
	assert.True(sum.Equal(q.Add(p)))

	// additions that cancel the leading term must re-canonicalize
	cancelled := poly(gf4.One, gf4.One).Add(poly(gf4.Zero, gf4.One))
	assert.Equal(0, cancelled.Degree())
	assert.True(cancelled.IsOne())

	assert.True(p.Add(polynomial.New[gf4.Element]()).Equal(p))
}

func TestSub(t *testing.T) {
	assert := require.New(t)

	p := poly(gf4.One, gf4.Alpha, gf4.One)
	q := poly(gf4.AlphaPlusOne, gf4.Alpha)

	// in characteristic 2 subtraction coincides with addition
	assert.True(p.Sub(q).Equal(p.Add(q)))
	assert.True(p.Sub(p).IsZero())

	// the tail of a longer subtrahend still ends up negated into the result
	longer := poly(gf4.Zero, gf4.Zero, gf4.Zero, gf4.Alpha)
	diff := p.Sub(longer)
	assert.Equal(3, diff.Degree())
	c, _ := diff.Coefficient(3)
	assert.Equal(gf4.Alpha, c)
}

func TestMul(t *testing.T) {
	assert := require.New(t)

	p := poly(gf4.Zero, gf4.One, gf4.Alpha, gf4.Alpha, gf4.AlphaPlusOne)
	q := poly(gf4.AlphaPlusOne, gf4.Zero, gf4.One)

	product := p.Mul(q)
	want := []gf4.Element{gf4.Zero, gf4.AlphaPlusOne, gf4.One, gf4.Zero, gf4.Zero, gf4.Alpha, gf4.AlphaPlusOne}
	if diff := cmp.Diff(want, product.Coefficients()); diff != "" {
		t.Errorf("product coefficients mismatch (-want +got):\n%s", diff)
	}
	assert.True(product.Equal(q.Mul(p)))

	// multiplying by zero collapses to the canonical zero polynomial
	z := p.Mul(polynomial.New[gf4.Element]())
	assert.True(z.IsZero())
	assert.Equal(0, z.Degree())

	assert.True(p.Mul(polynomial.One[gf4.Element]()).Equal(p))
}

func TestDivMod(t *testing.T) {
	assert := require.New(t)

	p := poly(gf4.One, gf4.Zero, gf4.One, gf4.Alpha, gf4.AlphaPlusOne)
	d := poly(gf4.One, gf4.Alpha)

	quotient, remainder, ok := p.DivMod(d)
	assert.True(ok)
	if diff := cmp.Diff([]gf4.Element{gf4.Alpha, gf4.AlphaPlusOne, gf4.Zero, gf4.Alpha}, quotient.Coefficients()); diff != "" {
		t.Errorf("quotient mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]gf4.Element{gf4.AlphaPlusOne}, remainder.Coefficients()); diff != "" {
		t.Errorf("remainder mismatch (-want +got):\n%s", diff)
	}

	// p == quotient*d + remainder, and deg(remainder) < deg(d)
	assert.True(quotient.Mul(d).Add(remainder).Equal(p))
	assert.Less(remainder.Degree(), d.Degree())
}

func TestDivModEdgeCases(t *testing.T) {
	assert := require.New(t)

	zero := polynomial.New[gf4.Element]()
	d := poly(gf4.Zero, gf4.One) // X

	// dividing by the zero polynomial has no result
	for _, p := range []polynomial.Polynomial[gf4.Element]{zero, poly(gf4.Alpha), poly(gf4.One, gf4.Alpha, gf4.One)} {
		_, _, ok := p.DivMod(zero)
		assert.False(ok)
	}

	// zero divided by a non-zero polynomial is (zero, zero)
	quotient, remainder, ok := zero.DivMod(d)
	assert.True(ok)
	assert.True(quotient.IsZero())
	assert.True(remainder.IsZero())

	// dividend of smaller degree: quotient zero, remainder the dividend
	p := poly(gf4.One, gf4.Alpha)
	quotient, remainder, ok = p.DivMod(poly(gf4.One, gf4.Zero, gf4.One))
	assert.True(ok)
	assert.True(quotient.IsZero())
	assert.True(remainder.Equal(p))

	// constant by constant divides exactly
	quotient, remainder, ok = poly(gf4.Alpha).DivMod(poly(gf4.AlphaPlusOne))
	assert.True(ok)
	assert.True(remainder.IsZero())
	assert.True(quotient.Mul(poly(gf4.AlphaPlusOne)).Equal(poly(gf4.Alpha)))

	// exact division by a degree-1 polynomial leaves remainder zero
	q := poly(gf4.One, gf4.One).Mul(d)
	quotient, remainder, ok = q.DivMod(d)
	assert.True(ok)
	assert.True(remainder.IsZero())
	assert.True(quotient.Equal(poly(gf4.One, gf4.One)))
}

func TestEvaluate(t *testing.T) {
	assert := require.New(t)

	// p(X) = 1 + X² at α: 1 + α² = 1 + (α+1) = α
	p := poly(gf4.One, gf4.Zero, gf4.One)
	assert.Equal(gf4.Alpha, p.Evaluate(gf4.Alpha))
	assert.Equal(gf4.Zero, p.Evaluate(gf4.One))
	assert.Equal(gf4.One, p.Evaluate(gf4.Zero))

	assert.Equal(gf4.Zero, polynomial.New[gf4.Element]().Evaluate(gf4.Alpha))
}

func TestString(t *testing.T) {
	assert := require.New(t)

	assert.Equal("0", polynomial.New[gf4.Element]().String())
	assert.Equal("1", polynomial.One[gf4.Element]().String())
	assert.Equal("α", poly(gf4.Alpha).String())
	assert.Equal("X² + α+1", poly(gf4.AlphaPlusOne, gf4.Zero, gf4.One).String())
	assert.Equal("(α+1)X", poly(gf4.Zero, gf4.AlphaPlusOne).String())
	assert.Equal("αX³ + X + 1", poly(gf4.One, gf4.One, gf4.Zero, gf4.Alpha).String())
}

// Operations must never write through to their operands' coefficient storage.
func TestOperandsUnchanged(t *testing.T) {
	assert := require.New(t)

	p := poly(gf4.One, gf4.Alpha, gf4.AlphaPlusOne)
	q := poly(gf4.Alpha, gf4.One)
	pBefore := p.Coefficients()
	qBefore := q.Coefficients()

	p.Add(q)
	p.Sub(q)
	p.Mul(q)
	p.DivMod(q)
	q.DivMod(p)
	p.Invert(poly(gf4.Zero, gf4.One, gf4.Zero, gf4.Alpha))

	assert.Equal(pBefore, p.Coefficients())
	assert.Equal(qBefore, q.Coefficients())
}
