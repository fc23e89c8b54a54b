package reedsolomon

import (
	"bytes"
	"errors"
	"testing"
)

func TestTablesMatchPrimitive(t *testing.T) {
	exp, log := buildTables()
	if exp != antilog {
		t.Error("antilog table does not match the primitive polynomial")
	}
	if log != logTable {
		t.Error("log table does not match the primitive polynomial")
	}
	want := []byte{1, 2, 4, 8, 16, 32, 64, 128, 45, 90}
	for i, w := range want {
		if Exp(i) != w {
			t.Errorf("Exp(%d) = %d, want %d", i, Exp(i), w)
		}
	}
}

func TestFieldBasics(t *testing.T) {
	for a := 1; a < 256; a++ {
		inv := Inverse(byte(a))
		if p := Multiply(byte(a), inv); p != 1 {
			t.Errorf("a=%d: a*inv(a) = %d, want 1", a, p)
		}
		if Exp(Log(byte(a))) != byte(a) {
			t.Errorf("Exp(Log(%d)) != %d", a, a)
		}
	}
	if Add(42, 42) != 0 {
		t.Error("a XOR a should be 0")
	}
	if Multiply(0, 100) != 0 || Multiply(100, 0) != 0 {
		t.Error("multiply by 0 should be 0")
	}
	if Multiply(2, 128) != 45 {
		t.Errorf("2*128 = %d, want 45", Multiply(2, 128))
	}
}

func TestLogZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Log(0) should panic")
		}
	}()
	Log(0)
}

func TestFactorsMatchGenerator(t *testing.T) {
	for n := range factorSets {
		f, err := Factors(n)
		if err != nil {
			t.Fatalf("Factors(%d): %v", n, err)
		}
		g := Generator(n).Coefficients()
		if len(g) != n+1 || g[0] != 1 {
			t.Fatalf("Generator(%d) is not monic of degree %d", n, n)
		}
		for j := 0; j < n; j++ {
			if f[j] != g[n-j] {
				t.Errorf("n=%d: factor[%d] = %d, generator gives %d", n, j, f[j], g[n-j])
			}
		}
	}
}

func TestFactorsUnknown(t *testing.T) {
	if _, err := Factors(6); !errors.Is(err, ErrNoFactors) {
		t.Errorf("Factors(6) err = %v, want ErrNoFactors", err)
	}
	f, err := Factors(5)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(f, []byte{228, 48, 15, 111, 62}) {
		t.Errorf("Factors(5) = %v", f)
	}
}

func TestEncodeKnownVector(t *testing.T) {
	// "123456" in a 10x10 symbol
	f, _ := Factors(5)
	got := Encode([]byte{142, 164, 186}, f)
	want := []byte{114, 25, 5, 88, 102}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode = %v, want %v", got, want)
	}
}

func TestEncodeSystematic(t *testing.T) {
	data := []byte{68, 32, 130, 60, 253, 230, 241, 194, 107, 48, 249, 14, 199, 221, 1, 228, 136, 117, 52, 162}
	f, _ := Factors(10)
	ecc := Encode(data, f)
	want := []byte{165, 182, 62, 189, 204, 161, 172, 58, 194, 86}
	if !bytes.Equal(ecc, want) {
		t.Fatalf("Encode = %v, want %v", ecc, want)
	}
	// the full codeword is divisible by the generator
	_, rem := NewPoly(append(append([]byte{}, data...), ecc...)...).Divide(Generator(10))
	if !rem.IsZero() {
		t.Errorf("remainder = %v, want zero", rem.Coefficients())
	}
}

func encodeMessage(t *testing.T, data []byte, n int) []byte {
	t.Helper()
	f, err := Factors(n)
	if err != nil {
		t.Fatal(err)
	}
	return append(append([]byte{}, data...), Encode(data, f)...)
}

func TestDecodeCorrectsErrors(t *testing.T) {
	msg := encodeMessage(t, []byte("ECC200 DATA MATRIX"), 14)
	tests := []struct {
		name      string
		positions []int
	}{
		{"none", nil},
		{"one", []int{0}},
		{"ecc", []int{len(msg) - 1}},
		{"max", []int{1, 4, 9, 13, 17, 20, 31}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			received := append([]byte{}, msg...)
			for _, p := range tc.positions {
				received[p] ^= 0x5A
			}
			corrected, err := Decode(received, 14)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if corrected != len(tc.positions) {
				t.Errorf("corrected = %d, want %d", corrected, len(tc.positions))
			}
			if !bytes.Equal(received, msg) {
				t.Errorf("after correction = %v, want %v", received, msg)
			}
		})
	}
}

func TestDecodeTooManyErrors(t *testing.T) {
	msg := encodeMessage(t, []byte{10, 20, 30, 40, 50}, 7)
	received := append([]byte{}, msg...)
	for _, p := range []int{0, 1, 2, 3} {
		received[p] ^= 0xFF
	}
	_, err := Decode(received, 7)
	if err == nil && bytes.Equal(received, msg) {
		t.Error("four errors cannot be corrected with seven ecc codewords")
	}
}

func TestPoly(t *testing.T) {
	if !zeroPoly.IsZero() {
		t.Error("zero should be zero")
	}
	if onePoly.IsZero() || onePoly.Degree() != 0 {
		t.Error("one should have degree 0")
	}
	p := NewPoly(0, 0, 2, 3)
	if p.Degree() != 1 {
		t.Errorf("degree = %d, want 1", p.Degree())
	}
	if p.EvaluateAt(0) != 3 {
		t.Errorf("p(0) = %d, want 3", p.EvaluateAt(0))
	}
	if p.EvaluateAt(1) != 1 {
		t.Errorf("p(1) = %d, want 1", p.EvaluateAt(1))
	}
	if p.MultiplyScalar(1) != p {
		t.Error("multiply by 1 should return the same polynomial")
	}
	q, r := p.Multiply(NewPoly(1, 7)).Divide(NewPoly(1, 7))
	if !r.IsZero() || !bytes.Equal(q.Coefficients(), p.Coefficients()) {
		t.Errorf("(p*(x+7))/(x+7) = %v rem %v", q.Coefficients(), r.Coefficients())
	}
}
