package ecc200

import (
	"bytes"
	"fmt"

	"github.com/ericlevine/ecc200/bitutil"
	"github.com/ericlevine/ecc200/charset"
	"github.com/ericlevine/ecc200/datamatrix/decoder"
)

// Result is a decoded symbol.
type Result struct {
	Data            []byte
	Symbol          SymbolInfo
	ErrorsCorrected int
}

// Text returns the payload as UTF-8 text. Payloads are ISO-8859-1, so every
// byte maps to one character.
func (r *Result) Text() string {
	return charset.DecodeLatin1(r.Data)
}

// Decode reads a symbol matrix. Both top-left and bottom-left origins are
// accepted.
func Decode(m *bitutil.BitMatrix) (*Result, error) {
	dr, err := decoder.Decode(m)
	if err != nil {
		return nil, err
	}
	return &Result{
		Data:            dr.Data,
		Symbol:          dr.Symbol,
		ErrorsCorrected: dr.ErrorsCorrected,
	}, nil
}

// DecodeRows reads a symbol given as [row][col] values, the form returned by
// Rows.
func DecodeRows(rows [][]uint8) (*Result, error) {
	m, err := bitutil.ParseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return Decode(m)
}

// Verify decodes m and checks that it carries payload.
func Verify(payload []byte, m *bitutil.BitMatrix) error {
	res, err := Decode(m)
	if err != nil {
		return err
	}
	if !bytes.Equal(res.Data, payload) {
		return fmt.Errorf("%w: got %q, want %q", ErrMismatch, res.Data, payload)
	}
	return nil
}
