// Package reedsolomon implements Reed-Solomon coding over GF(256) as used by
// Data Matrix ECC200 (primitive polynomial x^8 + x^5 + x^3 + x^2 + 1).
package reedsolomon

// Primitive is the field's primitive polynomial.
const Primitive = 0x12D

// Add computes a XOR b (addition and subtraction are the same in GF(2^n)).
func Add(a, b byte) byte {
	return a ^ b
}

// Multiply returns a * b in the field.
func Multiply(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return antilog[(int(logTable[a])+int(logTable[b]))%255]
}

// Exp returns 2^i in the field. i may be any non-negative integer.
func Exp(i int) byte {
	return antilog[i%255]
}

// Log returns log2(a) in the field.
func Log(a byte) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return int(logTable[a])
}

// Inverse returns the multiplicative inverse of a.
func Inverse(a byte) byte {
	if a == 0 {
		panic("reedsolomon: inverse(0)")
	}
	return antilog[(255-int(logTable[a]))%255]
}

// buildTables derives the exp and log tables from Primitive.
func buildTables() (exp, log [256]byte) {
	x := 1
	for i := 0; i < 255; i++ {
		exp[i] = byte(x)
		log[x] = byte(i)
		x <<= 1
		if x&0x100 != 0 {
			x ^= Primitive
		}
	}
	exp[255] = exp[0]
	log[0] = 255
	return exp, log
}
