package encoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ericlevine/ecc200/reedsolomon"
)

// Shape restricts automatic size selection to square or rectangular symbols.
type Shape int

const (
	// ShapeAny allows either square or rectangular symbols.
	ShapeAny Shape = iota
	// ShapeSquare allows only square symbols.
	ShapeSquare
	// ShapeRectangle allows only rectangular symbols.
	ShapeRectangle
)

// ParseShape parses "any", "square" or "rectangle" (also "rect").
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "auto":
		return ShapeAny, nil
	case "square":
		return ShapeSquare, nil
	case "rectangle", "rect":
		return ShapeRectangle, nil
	}
	return ShapeAny, fmt.Errorf("datamatrix/encoder: unknown shape %q", s)
}

func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeRectangle:
		return "rectangle"
	default:
		return "any"
	}
}

func (s Shape) allows(si SymbolInfo) bool {
	switch s {
	case ShapeSquare:
		return !si.Rectangular()
	case ShapeRectangle:
		return si.Rectangular()
	}
	return true
}

// SymbolInfo describes a single ECC200 symbol size.
type SymbolInfo struct {
	Rows           int // symbol height in modules, borders included
	Cols           int // symbol width in modules, borders included
	DataRegionRows int // data rows inside one region
	DataRegionCols int // data columns inside one region
	DataCW         int // data codewords, all blocks
	ECCCW          int // error correction codewords, all blocks
	Blocks         int // interleaved Reed-Solomon blocks
}

// Rectangular reports whether the symbol is not square.
func (si SymbolInfo) Rectangular() bool { return si.Rows != si.Cols }

// RegionRows returns the number of regions stacked vertically.
func (si SymbolInfo) RegionRows() int { return si.Rows / (si.DataRegionRows + 2) }

// RegionCols returns the number of regions side by side.
func (si SymbolInfo) RegionCols() int { return si.Cols / (si.DataRegionCols + 2) }

// UsableRows returns the height of the mapping matrix, borders removed.
func (si SymbolInfo) UsableRows() int { return si.Rows - 2*si.RegionRows() }

// UsableCols returns the width of the mapping matrix, borders removed.
func (si SymbolInfo) UsableCols() int { return si.Cols - 2*si.RegionCols() }

// BlockCount returns the number of interleaved Reed-Solomon blocks.
func (si SymbolInfo) BlockCount() int { return si.Blocks }

// ECCPerBlock returns the number of error correction codewords per block.
func (si SymbolInfo) ECCPerBlock() int { return si.ECCCW / si.Blocks }

// TotalCW returns data plus error correction codewords.
func (si SymbolInfo) TotalCW() int { return si.DataCW + si.ECCCW }

// Factors returns the generator coefficients for one block.
func (si SymbolInfo) Factors() ([]byte, error) {
	return reedsolomon.Factors(si.ECCPerBlock())
}

// String returns the size as "ROWSxCOLS".
func (si SymbolInfo) String() string {
	return strconv.Itoa(si.Rows) + "x" + strconv.Itoa(si.Cols)
}

// symbols lists the ECC200 sizes with uniform Reed-Solomon blocks, ordered by
// data capacity. Square symbols precede rectangles of equal capacity.
var symbols = []SymbolInfo{
	{10, 10, 8, 8, 3, 5, 1},
	{12, 12, 10, 10, 5, 7, 1},
	{8, 18, 6, 16, 5, 7, 1},
	{14, 14, 12, 12, 8, 10, 1},
	{8, 32, 6, 14, 10, 11, 1},
	{16, 16, 14, 14, 12, 12, 1},
	{12, 26, 10, 24, 16, 14, 1},
	{18, 18, 16, 16, 18, 14, 1},
	{20, 20, 18, 18, 22, 18, 1},
	{12, 36, 10, 16, 22, 18, 1},
	{22, 22, 20, 20, 30, 20, 1},
	{16, 36, 14, 16, 32, 24, 1},
	{24, 24, 22, 22, 36, 24, 1},
	{26, 26, 24, 24, 44, 28, 1},
	{16, 48, 14, 22, 49, 28, 1},
	{32, 32, 14, 14, 62, 36, 1},
	{36, 36, 16, 16, 86, 42, 1},
	{40, 40, 18, 18, 114, 48, 1},
	{44, 44, 20, 20, 144, 56, 1},
	{48, 48, 22, 22, 174, 68, 1},
	{52, 52, 24, 24, 204, 84, 2},
	{64, 64, 14, 14, 280, 112, 2},
	{72, 72, 16, 16, 368, 144, 4},
	{80, 80, 18, 18, 456, 192, 4},
	{88, 88, 20, 20, 576, 224, 4},
	{96, 96, 22, 22, 696, 272, 4},
	{104, 104, 24, 24, 816, 336, 6},
	{120, 120, 18, 18, 1050, 408, 6},
	{132, 132, 20, 20, 1304, 496, 8},
}

// Default returns the 44x44 symbol.
func Default() SymbolInfo {
	si, _ := Lookup(44, 44)
	return si
}

// Sizes returns every supported size ordered by data capacity.
func Sizes() []SymbolInfo {
	out := make([]SymbolInfo, len(symbols))
	copy(out, symbols)
	return out
}

// Lookup returns the descriptor for a rows x cols symbol.
func Lookup(rows, cols int) (SymbolInfo, error) {
	for _, si := range symbols {
		if si.Rows == rows && si.Cols == cols {
			return si, nil
		}
	}
	return SymbolInfo{}, fmt.Errorf("%w: %dx%d", ErrUnknownSize, rows, cols)
}

// LookupCapacity returns the smallest symbol allowed by shape that holds at
// least dataCW data codewords.
func LookupCapacity(dataCW int, shape Shape) (SymbolInfo, error) {
	for _, si := range symbols {
		if shape.allows(si) && si.DataCW >= dataCW {
			return si, nil
		}
	}
	return SymbolInfo{}, fmt.Errorf("%w: no %s symbol holds %d data codewords", ErrPayloadTooLarge, shape, dataCW)
}

// ParseSize parses "ROWSxCOLS" (or a single number for a square symbol) and
// looks the size up.
func ParseSize(s string) (SymbolInfo, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	rowsStr, colsStr, found := strings.Cut(s, "x")
	if !found {
		colsStr = rowsStr
	}
	rows, err := strconv.Atoi(rowsStr)
	if err != nil {
		return SymbolInfo{}, fmt.Errorf("%w: %q", ErrUnknownSize, s)
	}
	cols, err := strconv.Atoi(colsStr)
	if err != nil {
		return SymbolInfo{}, fmt.Errorf("%w: %q", ErrUnknownSize, s)
	}
	return Lookup(rows, cols)
}
