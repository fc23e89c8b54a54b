package datamatrix

import (
	"errors"
	"image"
	"testing"

	"github.com/ericlevine/ecc200/bitutil"
	"github.com/ericlevine/ecc200/datamatrix/encoder"
	"github.com/ericlevine/ecc200/render"
)

func TestReadImageRoundTrip(t *testing.T) {
	tests := []struct {
		payload string
		size    string
	}{
		{"HELLO", "12x12"},
		{"Test123", "16x16"},
		{"1234567890", "8x32"},
		{"Hello, World!", "44x44"},
		{"ODOO 17!", "12x36"},
	}

	for _, tc := range tests {
		t.Run(tc.payload, func(t *testing.T) {
			si, err := encoder.ParseSize(tc.size)
			if err != nil {
				t.Fatal(err)
			}
			m, err := encoder.Encode([]byte(tc.payload), si)
			if err != nil {
				t.Fatalf("encode error: %v", err)
			}
			img := render.Image(m, render.Options{ModuleSize: 6, QuietZone: 3})
			res, err := ReadImage(img)
			if err != nil {
				t.Fatalf("decode error for %q: %v", tc.payload, err)
			}
			if string(res.Data) != tc.payload {
				t.Errorf("round-trip mismatch: got %q, want %q", res.Data, tc.payload)
			}
			if res.Symbol != si {
				t.Errorf("symbol = %v, want %v", res.Symbol, si)
			}
		})
	}
}

func TestReadImageFlipped(t *testing.T) {
	for _, si := range encoder.Sizes() {
		t.Run(si.String(), func(t *testing.T) {
			m, err := encoder.Encode([]byte("AB"), si)
			if err != nil {
				t.Fatal(err)
			}
			for _, flip := range []bool{false, true} {
				sym := m.Clone()
				if flip {
					sym.FlipRows()
				}
				res, err := ReadImage(render.Image(sym, render.Options{ModuleSize: 4, QuietZone: 2}))
				if err != nil {
					t.Fatalf("flipped=%v: %v", flip, err)
				}
				if string(res.Data) != "AB" {
					t.Errorf("flipped=%v: got %q, want AB", flip, res.Data)
				}
				if res.Symbol != si {
					t.Errorf("flipped=%v: symbol = %v, want %v", flip, res.Symbol, si)
				}
			}
		})
	}
}

func TestReadImageBlank(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 60, 60))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	if _, err := ReadImage(img); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestReadImageSolidSquare(t *testing.T) {
	m := bitutil.NewBitMatrix(10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			m.Set(x, y)
		}
	}
	img := render.Image(m, render.Options{ModuleSize: 4, QuietZone: 2})
	if _, err := ReadImage(img); err == nil {
		t.Error("a solid square is not a symbol")
	}
}
