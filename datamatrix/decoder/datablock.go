package decoder

import (
	"fmt"

	"github.com/ericlevine/ecc200/datamatrix/encoder"
)

// DataBlock holds the data and error correction codewords of one
// Reed-Solomon block.
type DataBlock struct {
	NumDataCodewords int
	Codewords        []byte
}

// GetDataBlocks separates the interleaved codewords of a symbol into its
// blocks. Data codeword i belongs to block i mod B; error correction
// codewords follow the data and are interleaved the same way.
func GetDataBlocks(rawCodewords []byte, si encoder.SymbolInfo) ([]DataBlock, error) {
	if len(rawCodewords) != si.TotalCW() {
		return nil, fmt.Errorf("%w: raw codewords count mismatch: got %d, want %d",
			ErrFormat, len(rawCodewords), si.TotalCW())
	}
	numBlocks := si.BlockCount()
	numData := si.DataCW / numBlocks
	numECC := si.ECCPerBlock()

	result := make([]DataBlock, numBlocks)
	for j := range result {
		result[j] = DataBlock{
			NumDataCodewords: numData,
			Codewords:        make([]byte, numData+numECC),
		}
	}
	offset := 0
	for i := 0; i < numData+numECC; i++ {
		for j := 0; j < numBlocks; j++ {
			result[j].Codewords[i] = rawCodewords[offset]
			offset++
		}
	}
	return result, nil
}
