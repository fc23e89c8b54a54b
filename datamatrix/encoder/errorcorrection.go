package encoder

import (
	"fmt"

	"github.com/ericlevine/ecc200/reedsolomon"
)

// EncodeECC appends the Reed-Solomon codewords for data, interleaving the
// blocks of larger symbols. Data codeword i belongs to block i mod B, and
// error correction codeword k of block b is stored at DataCW + k*B + b.
func EncodeECC(data []byte, si SymbolInfo) ([]byte, error) {
	if len(data) != si.DataCW {
		return nil, fmt.Errorf("%w: expected %d data codewords, got %d", ErrInvariant, si.DataCW, len(data))
	}
	factors, err := si.Factors()
	if err != nil {
		return nil, fmt.Errorf("datamatrix/encoder: %s: %w", si, err)
	}

	blockCount := si.BlockCount()
	result := make([]byte, si.TotalCW())
	copy(result, data)

	if blockCount == 1 {
		copy(result[si.DataCW:], reedsolomon.Encode(data, factors))
		return result, nil
	}

	block := make([]byte, 0, si.DataCW/blockCount)
	for b := 0; b < blockCount; b++ {
		block = block[:0]
		for i := b; i < si.DataCW; i += blockCount {
			block = append(block, data[i])
		}
		for k, c := range reedsolomon.Encode(block, factors) {
			result[si.DataCW+k*blockCount+b] = c
		}
	}
	return result, nil
}
