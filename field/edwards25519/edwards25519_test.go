package edwards25519

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/galois/field/fieldtest"
)

func TestNew(t *testing.T) {
	assert := require.New(t)

	assert.True(New(0).IsZero())
	assert.True(New(1).IsOne())
	assert.Equal(New(12), New(5).Add(New(7)))
	assert.Equal(New(35), New(5).Mul(New(7)))
}

func TestBytesRoundTrip(t *testing.T) {
	assert := require.New(t)

	x := New(123456789)
	y, ok := FromCanonicalBytes(x.Bytes())
	assert.True(ok)
	assert.True(x.Equal(y))

	// 32 bytes of 0xff is far above the group order
	var bad [32]byte
	for i := range bad {
		bad[i] = 0xff
	}
	_, ok = FromCanonicalBytes(bad[:])
	assert.False(ok)

	_, ok = FromCanonicalBytes([]byte{1, 2, 3})
	assert.False(ok)
}

func TestFieldAxioms(t *testing.T) {
	fieldtest.Run(t, Element{})
}
