package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/ericlevine/ecc200/bitutil"
)

func checker() *bitutil.BitMatrix {
	m, err := bitutil.ParseRows([][]uint8{
		{1, 0, 1},
		{0, 1, 0},
		{1, 1, 1},
	})
	if err != nil {
		panic(err)
	}
	return m
}

func isDark(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r+g+b < 3*0x8000
}

func TestImageGeometry(t *testing.T) {
	m := checker()
	img := Image(m, Options{ModuleSize: 5, QuietZone: 1})
	if b := img.Bounds(); b.Dx() != 25 || b.Dy() != 25 {
		t.Fatalf("bounds = %v, want 25x25", b)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := false
			if x >= 1 && x <= 3 && y >= 1 && y <= 3 {
				want = m.Get(x-1, y-1)
			}
			// sample the module centre
			if got := isDark(img, x*5+2, y*5+2); got != want {
				t.Errorf("module (%d,%d) dark = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestImageColours(t *testing.T) {
	img := Image(checker(), Options{ModuleSize: 2, Foreground: "#ff0000", Background: "#0000ff"})
	r, _, b, _ := img.At(2*2+1, 2*2+1).RGBA() // module (2,2)
	if r != 0xffff || b != 0 {
		t.Errorf("foreground = %x/%x, want red", r, b)
	}
	r, _, b, _ = img.At(1*2+1, 1).RGBA() // module (1,0)
	if r != 0 || b != 0xffff {
		t.Errorf("background = %x/%x, want blue", r, b)
	}
}

func TestDefaults(t *testing.T) {
	img := Image(checker(), Options{QuietZone: -3})
	if b := img.Bounds(); b.Dx() != 3*4 {
		t.Errorf("width = %d, want %d", b.Dx(), 12)
	}
}

func TestScale(t *testing.T) {
	img := Image(checker(), Options{ModuleSize: 1, QuietZone: 0})
	if Scale(img, 0) != img {
		t.Error("Scale(0) should return the input")
	}
	big := Scale(img, 30)
	if b := big.Bounds(); b.Dx() != 30 || b.Dy() != 30 {
		t.Fatalf("bounds = %v, want 30x30", b)
	}
	if !isDark(big, 5, 5) || isDark(big, 15, 5) {
		t.Error("scaled modules lost their colour")
	}
}

func TestWrite(t *testing.T) {
	img := Image(checker(), DefaultOptions())
	var buf bytes.Buffer
	if err := Write(&buf, img, "png"); err != nil {
		t.Fatal(err)
	}
	back, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if back.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", back.Bounds(), img.Bounds())
	}
	for _, name := range []string{"jpg", ".jpeg", "out.gif", "x.tiff", "bmp"} {
		buf.Reset()
		if err := Write(&buf, img, name); err != nil {
			t.Errorf("Write(%q): %v", name, err)
		}
		if buf.Len() == 0 {
			t.Errorf("Write(%q) produced no data", name)
		}
	}
	if err := Write(&buf, img, "svg"); !errors.Is(err, ErrFormat) {
		t.Errorf("Write(svg) err = %v, want ErrFormat", err)
	}
}

func TestValidColor(t *testing.T) {
	for _, s := range []string{"#000", "fff", "#1a2B3c", "#11223344"} {
		if !ValidColor(s) {
			t.Errorf("ValidColor(%q) = false", s)
		}
	}
	for _, s := range []string{"", "#12", "black", "#ggg"} {
		if ValidColor(s) {
			t.Errorf("ValidColor(%q) = true", s)
		}
	}
}

func TestText(t *testing.T) {
	got := Text(checker(), 0)
	want := "▀▄▀\n▀▀▀\n"
	if got != want {
		t.Errorf("Text =\n%q\nwant\n%q", got, want)
	}
	framed := Text(checker(), 1)
	lines := strings.Split(strings.TrimSuffix(framed, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != " ▄ ▄ " {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestASCII(t *testing.T) {
	want := "#.#\n.#.\n###\n"
	if got := ASCII(checker()); got != want {
		t.Errorf("ASCII = %q, want %q", got, want)
	}
}
