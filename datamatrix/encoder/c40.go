package encoder

import (
	"bytes"
	"fmt"
)

// Codeword values used by the text encoder.
const (
	latchToC40      = 230
	unlatchASCII    = 254 // unlatch from C40 back to ASCII, also end of data
	asciiUpperShift = 235 // next ASCII codeword is offset by 128
	asciiPad        = 129
)

// C40 shift symbols and the Upper Shift value inside the shift 2 set.
const (
	c40Shift1     = 0
	c40Shift2     = 1
	c40Shift3     = 2
	c40UpperShift = 30
)

// c40Shift2Set holds the punctuation reachable through shift 2, in value order.
var c40Shift2Set = []byte("!\"#$%&'()*+,-./:;<=>?@[\\]^_")

// appendC40 appends the C40 symbols for b to dst.
func appendC40(dst []byte, b byte) []byte {
	if b >= 128 {
		dst = append(dst, c40Shift2, c40UpperShift)
		b -= 128
	}
	switch {
	case b == ' ':
		return append(dst, 3)
	case b >= '0' && b <= '9':
		return append(dst, b-'0'+4)
	case b >= 'A' && b <= 'Z':
		return append(dst, b-'A'+14)
	case b < 32:
		return append(dst, c40Shift1, b)
	case b >= 96:
		return append(dst, c40Shift3, b-96)
	default:
		return append(dst, c40Shift2, byte(bytes.IndexByte(c40Shift2Set, b)))
	}
}

// appendASCII appends the ASCII mode codewords for b to dst.
func appendASCII(dst []byte, b byte) []byte {
	if b < 128 {
		return append(dst, b+1)
	}
	return append(dst, asciiUpperShift, b-127)
}

// encodeC40 returns the unpadded codewords for payload: a C40 segment
// followed, when needed, by the unlatch and a short ASCII tail.
//
// A segment never ends with a lone C40 symbol. Characters are moved from the
// end of the segment into the ASCII tail until the symbol count is a multiple
// of three or one short of it; in the latter case a Shift 1 symbol completes
// the last triple. The unlatch is left out only when the segment fills
// capacity exactly or a single ASCII codeword fills the last slot.
func encodeC40(payload []byte, capacity int) []byte {
	symbols := make([]byte, 0, 2*len(payload)+1)
	ends := make([]int, len(payload))
	for i, b := range payload {
		symbols = appendC40(symbols, b)
		ends[i] = len(symbols)
	}

	n, count := len(payload), len(symbols)
	for count%3 == 1 {
		n--
		count = 0
		if n > 0 {
			count = ends[n-1]
		}
	}
	symbols = symbols[:count]
	if count%3 == 2 {
		symbols = append(symbols, c40Shift1)
	}

	cw := make([]byte, 0, 2+2*len(symbols)/3+2*(len(payload)-n))
	cw = append(cw, latchToC40)
	for i := 0; i < len(symbols); i += 3 {
		v := 1600*int(symbols[i]) + 40*int(symbols[i+1]) + int(symbols[i+2]) + 1
		cw = append(cw, byte(v>>8), byte(v))
	}

	var tail []byte
	for _, b := range payload[n:] {
		tail = appendASCII(tail, b)
	}
	remaining := capacity - len(cw)
	if !(len(tail) == 0 && remaining == 0) && !(len(tail) == 1 && remaining == 1) {
		cw = append(cw, unlatchASCII)
	}
	return append(cw, tail...)
}

// EncodeText encodes payload into exactly dataCW data codewords, padding as
// needed.
func EncodeText(payload []byte, dataCW int) ([]byte, error) {
	cw := encodeC40(payload, dataCW)
	if len(cw) > dataCW {
		return nil, fmt.Errorf("%w: %d codewords needed, %d available", ErrPayloadTooLarge, len(cw), dataCW)
	}
	return Pad(cw, dataCW), nil
}

// FitText picks the smallest symbol allowed by shape that holds payload and
// returns it with the padded data codewords.
func FitText(payload []byte, shape Shape) (SymbolInfo, []byte, error) {
	// the unlatch may be dropped on an exact fit, so the real need can be one less
	need := len(encodeC40(payload, -1)) - 1
	for _, si := range symbols {
		if !shape.allows(si) || si.DataCW < need {
			continue
		}
		if cw, err := EncodeText(payload, si.DataCW); err == nil {
			return si, cw, nil
		}
	}
	return SymbolInfo{}, nil, fmt.Errorf("%w: no %s symbol holds %d data codewords", ErrPayloadTooLarge, shape, need)
}

// randomize253State applies the 253-state randomization used for pad
// codewords. position is 1-based.
func randomize253State(codeword byte, position int) byte {
	pseudoRandom := ((149 * position) % 253) + 1
	tmp := int(codeword) + pseudoRandom
	if tmp > 254 {
		tmp -= 254
	}
	return byte(tmp)
}

// Pad fills codewords up to capacity: one plain pad codeword followed by
// randomized pads.
func Pad(codewords []byte, capacity int) []byte {
	if len(codewords) >= capacity {
		return codewords
	}
	result := make([]byte, capacity)
	copy(result, codewords)
	result[len(codewords)] = asciiPad
	for i := len(codewords) + 1; i < capacity; i++ {
		result[i] = randomize253State(asciiPad, i+1)
	}
	return result
}
