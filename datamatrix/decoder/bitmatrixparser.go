package decoder

import (
	"errors"
	"fmt"

	"github.com/ericlevine/ecc200/bitutil"
	"github.com/ericlevine/ecc200/datamatrix/encoder"
)

// ReadCodewords identifies the symbol size from the matrix dimensions, checks
// its finder and timing patterns and reads the codewords in placement order.
// Matrices whose row 0 is the bottom of the symbol are accepted too.
func ReadCodewords(symbol *bitutil.BitMatrix) ([]byte, encoder.SymbolInfo, error) {
	si, err := encoder.Lookup(symbol.Height(), symbol.Width())
	if err != nil {
		return nil, encoder.SymbolInfo{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if !bordersMatch(symbol, si) {
		flipped := symbol.Clone()
		flipped.FlipRows()
		if !bordersMatch(flipped, si) {
			return nil, si, fmt.Errorf("%w: finder pattern not found", ErrFormat)
		}
		symbol = flipped
	}

	mapping, err := encoder.Extract(symbol, si)
	if err != nil {
		return nil, si, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	codewords, err := readMappingMatrix(mapping)
	if err != nil {
		return nil, si, err
	}
	if len(codewords) != si.TotalCW() {
		return nil, si, fmt.Errorf("%w: read %d codewords, %s holds %d", ErrFormat, len(codewords), si, si.TotalCW())
	}
	return codewords, si, nil
}

func bordersMatch(symbol *bitutil.BitMatrix, si encoder.SymbolInfo) bool {
	for row := 0; row < si.Rows; row++ {
		for col := 0; col < si.Cols; col++ {
			if border, dark := si.Border(row, col); border && symbol.Get(col, row) != dark {
				return false
			}
		}
	}
	return true
}

// readMappingMatrix collects each codeword's eight modules, most significant
// bit first.
func readMappingMatrix(mapping *bitutil.BitMatrix) ([]byte, error) {
	layout, err := encoder.Layout(mapping.Height(), mapping.Width())
	if err != nil {
		if errors.Is(err, encoder.ErrInvariant) {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		return nil, err
	}
	codewords := make([]byte, len(layout))
	for i, cw := range layout {
		var v byte
		for _, pos := range cw {
			v <<= 1
			if mapping.Get(pos.Col, pos.Row) {
				v |= 1
			}
		}
		codewords[i] = v
	}
	return codewords, nil
}
