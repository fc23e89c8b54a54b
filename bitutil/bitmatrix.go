// Package bitutil provides the packed bit matrix shared by the encoder,
// decoder and renderers.
package bitutil

import (
	"errors"
	"fmt"
	"strings"
)

// BitMatrix represents a 2D matrix of bits.
// x is the column position, y is the row position. The origin is at the top-left.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrix creates a new square BitMatrix with the given dimension.
func NewBitMatrix(dimension int) *BitMatrix {
	return NewBitMatrixWithSize(dimension, dimension)
}

// NewBitMatrixWithSize creates a new BitMatrix with the given width and height.
func NewBitMatrixWithSize(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// ParseRows creates a BitMatrix from rows of 0/1 values indexed [row][col].
// Any non-zero value is treated as a set bit.
func ParseRows(rows [][]uint8) (*BitMatrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("bitmatrix: empty rows")
	}
	bm := NewBitMatrixWithSize(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != bm.width {
			return nil, fmt.Errorf("bitmatrix: row %d has %d columns, want %d", y, len(row), bm.width)
		}
		for x, v := range row {
			bm.SetTo(x, y, v != 0)
		}
	}
	return bm, nil
}

// Get returns true if the bit at (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// Set sets the bit at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << uint(x&0x1f)
}

// Unset clears the bit at (x, y).
func (bm *BitMatrix) Unset(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] &^= 1 << uint(x&0x1f)
}

// SetTo sets or clears the bit at (x, y).
func (bm *BitMatrix) SetTo(x, y int, on bool) {
	if on {
		bm.Set(x, y)
	} else {
		bm.Unset(x, y)
	}
}

// SubMatrix copies the width×height block whose top-left corner is (left, top).
func (bm *BitMatrix) SubMatrix(left, top, width, height int) *BitMatrix {
	if left < 0 || top < 0 || left+width > bm.width || top+height > bm.height {
		panic("bitmatrix: region must fit inside the matrix")
	}
	sub := NewBitMatrixWithSize(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if bm.Get(left+x, top+y) {
				sub.Set(x, y)
			}
		}
	}
	return sub
}

// Paste copies every bit of src into bm with src's origin at (left, top).
func (bm *BitMatrix) Paste(src *BitMatrix, left, top int) {
	if left < 0 || top < 0 || left+src.width > bm.width || top+src.height > bm.height {
		panic("bitmatrix: pasted matrix must fit inside the matrix")
	}
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			bm.SetTo(left+x, top+y, src.Get(x, y))
		}
	}
}

// FlipRows reverses the row order in place, turning a top-left origin into a
// bottom-left one and back.
func (bm *BitMatrix) FlipRows() {
	for top, bottom := 0, bm.height-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := bm.data[top*bm.rowSize : (top+1)*bm.rowSize]
		b := bm.data[bottom*bm.rowSize : (bottom+1)*bm.rowSize]
		for i := range t {
			t[i], b[i] = b[i], t[i]
		}
	}
}

// Rows returns the matrix as [row][col] values in {0, 1}.
func (bm *BitMatrix) Rows() [][]uint8 {
	rows := make([][]uint8, bm.height)
	for y := range rows {
		row := make([]uint8, bm.width)
		for x := range row {
			if bm.Get(x, y) {
				row[x] = 1
			}
		}
		rows[y] = row
	}
	return rows
}

// Width returns the width.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the height.
func (bm *BitMatrix) Height() int { return bm.height }

// Clone returns a deep copy of the BitMatrix.
func (bm *BitMatrix) Clone() *BitMatrix {
	d := make([]uint32, len(bm.data))
	copy(d, bm.data)
	return &BitMatrix{width: bm.width, height: bm.height, rowSize: bm.rowSize, data: d}
}

// String returns a string representation using "X " for set and "  " for unset.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("X ", "  ")
}

// StringWithChars returns a string representation using the given set/unset strings.
func (bm *BitMatrix) StringWithChars(setString, unsetString string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width*len(setString) + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
