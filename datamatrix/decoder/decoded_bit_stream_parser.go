package decoder

import "fmt"

type encodation int

const (
	modeASCII encodation = iota
	modeC40
	modePad // padding reached, stop
)

// c40Shift2 maps shift 2 values to characters. 27 is FNC1, 30 Upper Shift.
var c40Shift2 = [27]byte{
	'!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
	':', ';', '<', '=', '>', '?', '@', '[', '\\', ']', '^', '_',
}

const fnc1 = 0x1D

// DecodeBitStream decodes the data codewords of a symbol. ASCII and C40
// encodations are supported; the other encodations return ErrFormat.
func DecodeBitStream(codewords []byte) ([]byte, error) {
	var result []byte
	mode := modeASCII
	pos := 0
	var err error
	for pos < len(codewords) && mode != modePad {
		switch mode {
		case modeASCII:
			mode, err = decodeASCII(&result, codewords, &pos)
		case modeC40:
			mode, err = decodeC40(&result, codewords, &pos)
		}
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// decodeASCII reads ASCII codewords until a latch, the pad or the end.
func decodeASCII(result *[]byte, codewords []byte, pos *int) (encodation, error) {
	for *pos < len(codewords) {
		b := int(codewords[*pos])
		*pos++

		switch {
		case b == 0:
			return 0, fmt.Errorf("%w: codeword 0 in ASCII mode", ErrFormat)
		case b <= 128:
			*result = append(*result, byte(b-1))
		case b == 129:
			return modePad, nil
		case b <= 229:
			// 130 encodes "00", 229 "99"
			pair := b - 130
			*result = append(*result, byte('0'+pair/10), byte('0'+pair%10))
		case b == 230:
			return modeC40, nil
		case b == 232:
			*result = append(*result, fnc1)
		case b == 235:
			if *pos >= len(codewords) {
				return 0, fmt.Errorf("%w: upper shift at end of data", ErrFormat)
			}
			next := int(codewords[*pos])
			*pos++
			*result = append(*result, byte(next-1+128))
		case b == 236:
			*result = append(*result, "[)>\x1E05\x1D"...)
		case b == 237:
			*result = append(*result, "[)>\x1E06\x1D"...)
		case b == 254:
			// tolerated only as the final codeword
			if *pos != len(codewords) {
				return 0, fmt.Errorf("%w: unlatch in ASCII mode", ErrFormat)
			}
		default:
			return 0, fmt.Errorf("%w: unsupported codeword %d", ErrFormat, b)
		}
	}
	return modeASCII, nil
}

// decodeC40 reads C40 codeword pairs until the unlatch. A single codeword
// left at the end is read in ASCII mode.
func decodeC40(result *[]byte, codewords []byte, pos *int) (encodation, error) {
	shift := 0
	upperShift := false
	emit := func(ch byte) {
		if upperShift {
			ch += 128
			upperShift = false
		}
		*result = append(*result, ch)
	}

	for len(codewords)-*pos >= 2 {
		c1 := int(codewords[*pos])
		*pos++
		if c1 == 254 {
			return modeASCII, nil
		}
		c2 := int(codewords[*pos])
		*pos++

		v := c1*256 + c2 - 1
		if v < 0 || v >= 64000 {
			return 0, fmt.Errorf("%w: C40 value %d out of range", ErrFormat, v)
		}
		for _, cVal := range [3]int{v / 1600, (v / 40) % 40, v % 40} {
			switch shift {
			case 0:
				switch {
				case cVal < 3:
					shift = cVal + 1
				case cVal == 3:
					emit(' ')
				case cVal <= 13:
					emit(byte('0' + cVal - 4))
				default:
					emit(byte('A' + cVal - 14))
				}
			case 1:
				if cVal > 31 {
					return 0, fmt.Errorf("%w: C40 shift 1 value %d", ErrFormat, cVal)
				}
				emit(byte(cVal))
				shift = 0
			case 2:
				switch {
				case cVal < 27:
					emit(c40Shift2[cVal])
				case cVal == 27:
					emit(fnc1)
				case cVal == 30:
					upperShift = true
				default:
					return 0, fmt.Errorf("%w: C40 shift 2 value %d", ErrFormat, cVal)
				}
				shift = 0
			case 3:
				if cVal > 31 {
					return 0, fmt.Errorf("%w: C40 shift 3 value %d", ErrFormat, cVal)
				}
				emit(byte('`' + cVal))
				shift = 0
			}
		}
	}
	return modeASCII, nil
}
