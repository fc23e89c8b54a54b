package encoder

import "errors"

var (
	// ErrPayloadTooLarge is returned when the encoded payload does not fit the
	// selected symbol.
	ErrPayloadTooLarge = errors.New("datamatrix/encoder: payload too large for symbol")
	// ErrUnknownSize is returned for symbol dimensions outside the size table.
	ErrUnknownSize = errors.New("datamatrix/encoder: unsupported symbol size")
	// ErrInvariant signals an internal consistency failure. It indicates a bug.
	ErrInvariant = errors.New("datamatrix/encoder: internal invariant violated")
)
