// Package encoder implements the ECC200 Data Matrix encoding pipeline: C40
// text encoding, Reed-Solomon error correction, module placement and region
// assembly.
package encoder

import (
	"fmt"

	"github.com/ericlevine/ecc200/bitutil"
)

// Codewords returns the data and error correction codewords for payload in
// the given symbol.
func Codewords(payload []byte, si SymbolInfo) ([]byte, error) {
	data, err := EncodeText(payload, si.DataCW)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", si, err)
	}
	return EncodeECC(data, si)
}

// Encode encodes payload into the given symbol.
func Encode(payload []byte, si SymbolInfo) (*bitutil.BitMatrix, error) {
	codewords, err := Codewords(payload, si)
	if err != nil {
		return nil, err
	}
	return Symbol(codewords, si)
}

// Symbol places a complete codeword stream and assembles the symbol.
func Symbol(codewords []byte, si SymbolInfo) (*bitutil.BitMatrix, error) {
	if len(codewords) != si.TotalCW() {
		return nil, fmt.Errorf("%w: %s needs %d codewords, got %d", ErrInvariant, si, si.TotalCW(), len(codewords))
	}
	mapping, err := Place(codewords, si.UsableRows(), si.UsableCols())
	if err != nil {
		return nil, err
	}
	return Assemble(mapping, si)
}
