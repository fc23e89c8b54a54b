package encoder

import (
	"fmt"

	"github.com/ericlevine/ecc200/bitutil"
)

// Border reports whether the module at (row, col) of the symbol belongs to a
// region's finder or timing pattern, and if so whether it is dark. Within
// each region the left column and bottom row are solid, the top row is dark
// on even columns and the right column is dark on odd rows.
func (si SymbolInfo) Border(row, col int) (border, dark bool) {
	h := si.DataRegionRows + 2
	w := si.DataRegionCols + 2
	r, c := row%h, col%w
	switch {
	case r == h-1 || c == 0:
		return true, true
	case r == 0:
		return true, c%2 == 0
	case c == w-1:
		return true, r%2 == 1
	}
	return false, false
}

// Assemble splits the mapping matrix into the symbol's regions, surrounds each
// with its finder and timing pattern and returns the full symbol. Row 0 of the
// result is the top of the symbol.
func Assemble(mapping *bitutil.BitMatrix, si SymbolInfo) (*bitutil.BitMatrix, error) {
	if mapping.Height() != si.UsableRows() || mapping.Width() != si.UsableCols() {
		return nil, fmt.Errorf("%w: mapping matrix %dx%d does not fit %s",
			ErrInvariant, mapping.Height(), mapping.Width(), si)
	}
	symbol := bitutil.NewBitMatrixWithSize(si.Cols, si.Rows)
	for row := 0; row < si.Rows; row++ {
		for col := 0; col < si.Cols; col++ {
			if border, dark := si.Border(row, col); border {
				if dark {
					symbol.Set(col, row)
				}
			}
		}
	}
	for vr := 0; vr < si.RegionRows(); vr++ {
		for hr := 0; hr < si.RegionCols(); hr++ {
			region := mapping.SubMatrix(hr*si.DataRegionCols, vr*si.DataRegionRows,
				si.DataRegionCols, si.DataRegionRows)
			symbol.Paste(region, hr*(si.DataRegionCols+2)+1, vr*(si.DataRegionRows+2)+1)
		}
	}
	return symbol, nil
}

// Extract strips the finder and timing patterns from a symbol and returns the
// mapping matrix.
func Extract(symbol *bitutil.BitMatrix, si SymbolInfo) (*bitutil.BitMatrix, error) {
	if symbol.Height() != si.Rows || symbol.Width() != si.Cols {
		return nil, fmt.Errorf("%w: %dx%d", ErrUnknownSize, symbol.Height(), symbol.Width())
	}
	mapping := bitutil.NewBitMatrixWithSize(si.UsableCols(), si.UsableRows())
	for vr := 0; vr < si.RegionRows(); vr++ {
		for hr := 0; hr < si.RegionCols(); hr++ {
			region := symbol.SubMatrix(hr*(si.DataRegionCols+2)+1, vr*(si.DataRegionRows+2)+1,
				si.DataRegionCols, si.DataRegionRows)
			mapping.Paste(region, hr*si.DataRegionCols, vr*si.DataRegionRows)
		}
	}
	return mapping, nil
}
