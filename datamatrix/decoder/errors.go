package decoder

import "errors"

var (
	// ErrFormat is returned for symbols or codeword streams that are malformed
	// or use an encodation this package does not read.
	ErrFormat = errors.New("datamatrix/decoder: format error")
	// ErrChecksum is returned when a Reed-Solomon block cannot be corrected.
	ErrChecksum = errors.New("datamatrix/decoder: checksum error")
)
