// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package sample

import (
	"encoding/binary"
	"io"
	"math/rand"

	"golang.org/x/crypto/blake2b"

	"github.com/consensys/galois/logger"
)

// xofSource adapts a BLAKE2b XOF stream to math/rand's Source64.
type xofSource struct {
	xof blake2b.XOF
}

func newXOF(seed []byte) blake2b.XOF {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}
	_, _ = xof.Write(seed)
	return xof
}

func (s *xofSource) Uint64() uint64 {
	var buf [8]byte
	if _, err := io.ReadFull(s.xof, buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(buf[:])
}

func (s *xofSource) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

func (s *xofSource) Seed(seed int64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))
	s.xof = newXOF(buf[:])
}

// NewSource returns a randomness source whose stream is a BLAKE2b XOF over
// seed: two sources built from equal seeds produce identical draws. It is
// deterministic, not a cryptographic RNG; use it for reproducible sampling
// and tests.
func NewSource(seed []byte) *rand.Rand {
	log := logger.With("sample")
	log.Debug().Int("seedLen", len(seed)).Msg("new deterministic source")
	return rand.New(&xofSource{xof: newXOF(seed)})
}
