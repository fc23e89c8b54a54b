package ecc200

import (
	"errors"

	"github.com/ericlevine/ecc200/charset"
	"github.com/ericlevine/ecc200/datamatrix/decoder"
	"github.com/ericlevine/ecc200/datamatrix/encoder"
)

var (
	// ErrPayloadTooLarge is returned when the payload does not fit the symbol.
	ErrPayloadTooLarge = encoder.ErrPayloadTooLarge

	// ErrUnsupportedByte is returned for text that cannot be carried as
	// ISO-8859-1 bytes.
	ErrUnsupportedByte = charset.ErrUnsupportedByte

	// ErrUnknownSize is returned for symbol sizes outside the size table.
	ErrUnknownSize = encoder.ErrUnknownSize

	// ErrInvariant signals an internal consistency failure. It indicates a bug.
	ErrInvariant = encoder.ErrInvariant

	// ErrFormat is returned when a matrix is not a readable symbol.
	ErrFormat = decoder.ErrFormat

	// ErrChecksum is returned when error correction fails.
	ErrChecksum = decoder.ErrChecksum

	// ErrMismatch is returned by Verify when a symbol decodes to another payload.
	ErrMismatch = errors.New("ecc200: decoded payload does not match")
)
