// Package galois provides finite field arithmetic and univariate polynomial
// algebra over any such field.
//
// galois ships the following field implementations:
//   - GF(4), table-driven
//   - GF(2⁸), table-driven
//   - KoalaBear (31-bit prime field, via gnark-crypto)
//   - edwards25519 scalar field (via filippo.io/edwards25519)
//
// The polynomial package works over any of them, or over any custom type
// satisfying the field.Element contract, and provides the ring operations
// together with Euclidean division and modular inversion via the extended
// Euclidean algorithm.
package galois

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")
