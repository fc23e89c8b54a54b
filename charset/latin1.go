// Package charset converts payload text between UTF-8 and the single-byte
// character sets a Data Matrix payload is carried in.
package charset

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// ErrUnsupportedByte is returned for characters outside ISO-8859-1.
var ErrUnsupportedByte = errors.New("charset: character outside ISO-8859-1")

// EncodeLatin1 converts UTF-8 text to ISO-8859-1 bytes.
func EncodeLatin1(s string) ([]byte, error) {
	out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		for i, r := range s {
			if r > 0xFF {
				return nil, fmt.Errorf("%w: %q at byte %d", ErrUnsupportedByte, r, i)
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedByte, err)
	}
	return out, nil
}

// DecodeLatin1 converts ISO-8859-1 bytes to UTF-8 text.
func DecodeLatin1(b []byte) string {
	out, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), b)
	if err != nil {
		// every byte is a valid ISO-8859-1 character
		return string(b)
	}
	return string(out)
}

// DecodeBytes converts data in the named encoding (WHATWG labels such as
// "utf-8", "shift_jis" or "windows-1252") to UTF-8.
func DecodeBytes(data []byte, encoding string) (string, error) {
	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return "", fmt.Errorf("charset: %w", err)
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("charset: decoding %s: %w", encoding, err)
	}
	return string(out), nil
}

// ToLatin1 converts data in the named encoding to ISO-8859-1 payload bytes.
func ToLatin1(data []byte, encoding string) ([]byte, error) {
	s, err := DecodeBytes(data, encoding)
	if err != nil {
		return nil, err
	}
	return EncodeLatin1(s)
}
