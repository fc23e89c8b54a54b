// Package decoder reads ECC200 Data Matrix symbols from bit matrices: it
// checks the finder patterns, reads and corrects the codewords and decodes
// the ASCII and C40 encodations.
package decoder

import (
	"fmt"

	"github.com/ericlevine/ecc200/bitutil"
	"github.com/ericlevine/ecc200/datamatrix/encoder"
	"github.com/ericlevine/ecc200/reedsolomon"
)

// DecoderResult holds the payload read from a symbol.
type DecoderResult struct {
	// Data is the decoded payload, one byte per character.
	Data []byte
	// Codewords are the corrected data codewords.
	Codewords       []byte
	ErrorsCorrected int
	Symbol          encoder.SymbolInfo
}

// Decode decodes a symbol. The matrix must be exactly the symbol, without
// quiet zone.
func Decode(bits *bitutil.BitMatrix) (*DecoderResult, error) {
	rawCodewords, si, err := ReadCodewords(bits)
	if err != nil {
		return nil, err
	}

	dataBlocks, err := GetDataBlocks(rawCodewords, si)
	if err != nil {
		return nil, err
	}

	resultBytes := make([]byte, si.DataCW)
	dataBlocksCount := len(dataBlocks)
	totalErrorsCorrected := 0
	for j, block := range dataBlocks {
		corrected, err := correctErrors(block.Codewords, block.NumDataCodewords)
		if err != nil {
			return nil, fmt.Errorf("%s block %d: %w", si, j, err)
		}
		totalErrorsCorrected += corrected

		// block j's i-th codeword goes back to position i*count+j
		for i := 0; i < block.NumDataCodewords; i++ {
			resultBytes[i*dataBlocksCount+j] = block.Codewords[i]
		}
	}

	data, err := DecodeBitStream(resultBytes)
	if err != nil {
		return nil, err
	}
	return &DecoderResult{
		Data:            data,
		Codewords:       resultBytes,
		ErrorsCorrected: totalErrorsCorrected,
		Symbol:          si,
	}, nil
}

// correctErrors fixes a block in place.
func correctErrors(codewords []byte, numDataCodewords int) (int, error) {
	corrected, err := reedsolomon.Decode(codewords, len(codewords)-numDataCodewords)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrChecksum, err)
	}
	return corrected, nil
}
