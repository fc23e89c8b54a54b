package reedsolomon

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNoFactors is returned when no generator table exists for an ECC length.
var ErrNoFactors = errors.New("reedsolomon: no generator for ecc length")

var (
	generatorsMu sync.Mutex
	generators   = []*Poly{onePoly}
)

// Factors returns the generator coefficients, lowest degree first, for a
// block with n error correction codewords.
func Factors(n int) ([]byte, error) {
	f, ok := factorSets[n]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoFactors, n)
	}
	out := make([]byte, len(f))
	copy(out, f)
	return out, nil
}

// Generator returns the generator polynomial (x + 2^1)(x + 2^2)...(x + 2^n).
func Generator(n int) *Poly {
	if n < 0 {
		panic("reedsolomon: negative generator degree")
	}
	generatorsMu.Lock()
	defer generatorsMu.Unlock()
	for d := len(generators); d <= n; d++ {
		generators = append(generators, generators[d-1].Multiply(NewPoly(1, Exp(d))))
	}
	return generators[n]
}

// Encode computes the error correction codewords for data using the
// generator coefficients in factors (lowest degree first). The result has
// len(factors) codewords, highest degree first, ready to follow the data.
func Encode(data, factors []byte) []byte {
	n := len(factors)
	if n == 0 {
		panic("reedsolomon: no error correction codewords")
	}
	reg := make([]byte, n)
	for _, d := range data {
		t := d ^ reg[n-1]
		for j := n - 1; j > 0; j-- {
			reg[j] = reg[j-1] ^ Multiply(t, factors[j])
		}
		reg[0] = Multiply(t, factors[0])
	}
	ecc := make([]byte, n)
	for i, c := range reg {
		ecc[n-1-i] = c
	}
	return ecc
}
