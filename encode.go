// Package ecc200 encodes payloads into ECC200 Data Matrix symbols and reads
// them back.
//
// The returned matrix has its origin at the top-left: row 0 is the top row
// and a set bit is a dark module. The quiet zone is left to the caller.
package ecc200

import (
	"io"
	"log/slog"

	"github.com/ericlevine/ecc200/bitutil"
	"github.com/ericlevine/ecc200/charset"
	"github.com/ericlevine/ecc200/datamatrix/encoder"
)

// SymbolInfo describes a symbol size.
type SymbolInfo = encoder.SymbolInfo

// Shape restricts automatic size selection.
type Shape = encoder.Shape

const (
	ShapeAny       = encoder.ShapeAny
	ShapeSquare    = encoder.ShapeSquare
	ShapeRectangle = encoder.ShapeRectangle
)

// Sizes returns every supported symbol size ordered by data capacity.
func Sizes() []SymbolInfo { return encoder.Sizes() }

// DefaultRows and DefaultCols give the symbol used when no size option is set.
const (
	DefaultRows = 44
	DefaultCols = 44
)

type options struct {
	rows, cols int
	auto       bool
	shape      Shape
	logger     *slog.Logger
}

// Option configures Encode.
type Option func(*options)

// WithSize selects a fixed rows x cols symbol.
func WithSize(rows, cols int) Option {
	return func(o *options) {
		o.rows, o.cols = rows, cols
		o.auto = false
	}
}

// WithAutoSize selects the smallest symbol of the given shape that holds
// the payload.
func WithAutoSize(shape Shape) Option {
	return func(o *options) {
		o.auto = true
		o.shape = shape
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		rows:   DefaultRows,
		cols:   DefaultCols,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// plan selects the symbol and produces the full codeword stream.
func plan(payload []byte, o *options) (SymbolInfo, []byte, error) {
	var (
		si   SymbolInfo
		data []byte
		err  error
	)
	if o.auto {
		si, data, err = encoder.FitText(payload, o.shape)
	} else {
		si, err = encoder.Lookup(o.rows, o.cols)
		if err == nil {
			data, err = encoder.EncodeText(payload, si.DataCW)
		}
	}
	if err != nil {
		o.logger.Debug("symbol selection failed", "payload_bytes", len(payload), "error", err)
		return SymbolInfo{}, nil, err
	}
	codewords, err := encoder.EncodeECC(data, si)
	if err != nil {
		return SymbolInfo{}, nil, err
	}
	o.logger.Debug("encoded payload",
		"size", si.String(),
		"payload_bytes", len(payload),
		"data_codewords", si.DataCW,
		"ecc_codewords", si.ECCCW,
		"blocks", si.BlockCount())
	return si, codewords, nil
}

// Encode encodes payload into a symbol. Without options the 44x44 symbol is
// used.
func Encode(payload []byte, opts ...Option) (*bitutil.BitMatrix, error) {
	o := newOptions(opts)
	si, codewords, err := plan(payload, o)
	if err != nil {
		return nil, err
	}
	return encoder.Symbol(codewords, si)
}

// EncodeString encodes UTF-8 text, which must be representable in
// ISO-8859-1.
func EncodeString(s string, opts ...Option) (*bitutil.BitMatrix, error) {
	payload, err := charset.EncodeLatin1(s)
	if err != nil {
		return nil, err
	}
	return Encode(payload, opts...)
}

// Codewords returns the selected symbol and its data and error correction
// codewords, in placement order.
func Codewords(payload []byte, opts ...Option) (SymbolInfo, []byte, error) {
	return plan(payload, newOptions(opts))
}

// Symbol builds the symbol from a codeword stream returned by Codewords.
func Symbol(si SymbolInfo, codewords []byte) (*bitutil.BitMatrix, error) {
	return encoder.Symbol(codewords, si)
}

// Rows returns the matrix as [row][col] values in {0, 1}.
func Rows(m *bitutil.BitMatrix) [][]uint8 {
	return m.Rows()
}
