// Package datamatrix reads ECC200 symbols from clean, unrotated renders such
// as the ones produced by package render.
package datamatrix

import (
	"errors"
	"fmt"
	"image"

	gozxing "github.com/makiuchi-d/gozxing"

	"github.com/ericlevine/ecc200/bitutil"
	"github.com/ericlevine/ecc200/datamatrix/decoder"
)

// ErrNotFound is returned when no symbol outline can be found in the image.
var ErrNotFound = errors.New("datamatrix: symbol not found")

// ReadImage binarizes img and decodes the single symbol it contains. The
// symbol must be axis aligned and surrounded by a light margin.
func ReadImage(img image.Image) (*decoder.DecoderResult, error) {
	source := gozxing.NewLuminanceSourceFromImage(img)
	black, err := gozxing.NewHybridBinarizer(source).GetBlackMatrix()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	bits, err := extractPureBits(black)
	if err != nil {
		return nil, err
	}
	return decoder.Decode(bits)
}

// extractPureBits samples one bit per module from a binarized image that
// contains only the symbol and its quiet zone. The bounds come from the
// enclosing rectangle because one corner of the symbol is light, and which
// one depends on whether the render is flipped.
func extractPureBits(image *gozxing.BitMatrix) (*bitutil.BitMatrix, error) {
	rect := image.GetEnclosingRectangle()
	if rect == nil {
		return nil, ErrNotFound
	}
	left, top := rect[0], rect[1]
	right := left + rect[2] - 1
	bottom := top + rect[3] - 1

	moduleSize := moduleSizePure(image, left, right, top)
	if moduleSize == 0 {
		// the alternating edge is at the bottom when the render is flipped
		moduleSize = moduleSizePure(image, left, right, bottom)
	}
	if moduleSize == 0 {
		return nil, ErrNotFound
	}

	matrixWidth := (right - left + 1) / moduleSize
	matrixHeight := (bottom - top + 1) / moduleSize
	if matrixWidth <= 0 || matrixHeight <= 0 {
		return nil, ErrNotFound
	}

	nudge := moduleSize / 2
	bits := bitutil.NewBitMatrixWithSize(matrixWidth, matrixHeight)
	for y := 0; y < matrixHeight; y++ {
		iOffset := top + y*moduleSize + nudge
		for x := 0; x < matrixWidth; x++ {
			if image.Get(left+x*moduleSize+nudge, iOffset) {
				bits.Set(x, y)
			}
		}
	}
	return bits, nil
}

// moduleSizePure walks the dark run that starts at (left, y). It returns 0
// when the run covers the whole edge, which is the solid finder bar.
func moduleSizePure(image *gozxing.BitMatrix, left, right, y int) int {
	x := left
	for x <= right && image.Get(x, y) {
		x++
	}
	if x > right {
		return 0
	}
	return x - left
}
