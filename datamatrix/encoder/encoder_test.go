package encoder

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ericlevine/ecc200/bitutil"
	"github.com/ericlevine/ecc200/reedsolomon"
)

func parseSymbol(t *testing.T, s string) *bitutil.BitMatrix {
	t.Helper()
	var rows [][]uint8
	for _, line := range strings.Split(s, "\n") {
		if line == "" {
			continue
		}
		row := make([]uint8, len(line))
		for i, c := range line {
			if c == 'X' {
				row[i] = 1
			}
		}
		rows = append(rows, row)
	}
	m, err := bitutil.ParseRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestEncodeGolden(t *testing.T) {
	tests := []struct {
		payload string
		rows    int
		cols    int
		want    string
	}{
		{"AB", 10, 10, `
X.X.X.X.X.
X.X..XX..X
X.XX......
X..X.X.XXX
X.X....X..
X.X.X..XXX
X..X.XXX..
X.XXXX.XXX
X.X.XXX.X.
XXXXXXXXXX
`},
		{"HI", 8, 18, `
X.X.X.X.X.X.X.X.X.
XX...XXXXXXX.XXXXX
X...X.XX..XXXXX.X.
XXX......XX.X..XXX
X.X...XXX..X..XX..
X.X..X...X..X..XXX
XXX.XXX.XXX.XX..X.
XXXXXXXXXXXXXXXXXX
`},
		{"A", 12, 12, `
X.X.X.X.X.X.
XXX.X....XXX
XXXX.X..XX..
XXX.XX.XXXXX
X.X..XXX..X.
X..XXX.X.X.X
X.XXXXX.XXX.
X.X..XXXX..X
X.XXX.X..XX.
X.X.XXX..X.X
X...X...X.X.
XXXXXXXXXXXX
`},
	}
	for _, tc := range tests {
		t.Run(tc.payload, func(t *testing.T) {
			si, err := Lookup(tc.rows, tc.cols)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Encode([]byte(tc.payload), si)
			if err != nil {
				t.Fatal(err)
			}
			want := parseSymbol(t, tc.want)
			if got.String() != want.String() {
				t.Errorf("got:\n%s\nwant:\n%s", got.StringWithChars("X", "."), want.StringWithChars("X", "."))
			}
		})
	}
}

func TestCodewordsKnown(t *testing.T) {
	si, _ := Lookup(10, 10)
	got, err := Codewords([]byte(""), si)
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{230, 254, 129, 94, 246, 105, 38, 102}; !bytes.Equal(got, want) {
		t.Errorf("Codewords = %v, want %v", got, want)
	}

	got, err = Codewords([]byte("HELLO WORLD"), Default())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 200 {
		t.Fatalf("len = %d, want 200", len(got))
	}
	if !bytes.Equal(got[144:148], []byte{60, 45, 159, 19}) {
		t.Errorf("ecc prefix = %v", got[144:148])
	}
}

func TestEncodeECCInterleaved(t *testing.T) {
	si, _ := Lookup(52, 52)
	data, err := EncodeText([]byte("DATA MATRIX"), si.DataCW)
	if err != nil {
		t.Fatal(err)
	}
	got, err := EncodeECC(data, si)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got[204:212], []byte{239, 82, 238, 123, 96, 215, 235, 36}) {
		t.Errorf("ecc prefix = %v", got[204:212])
	}

	// every block is a valid systematic code word on its own
	factors, _ := si.Factors()
	b := si.BlockCount()
	for blk := 0; blk < b; blk++ {
		var blockData, blockECC []byte
		for i := blk; i < si.DataCW; i += b {
			blockData = append(blockData, got[i])
		}
		for k := 0; k < si.ECCPerBlock(); k++ {
			blockECC = append(blockECC, got[si.DataCW+k*b+blk])
		}
		if !bytes.Equal(reedsolomon.Encode(blockData, factors), blockECC) {
			t.Errorf("block %d ecc mismatch", blk)
		}
	}
}

func TestEncodeAllSizes(t *testing.T) {
	for _, si := range Sizes() {
		t.Run(si.String(), func(t *testing.T) {
			n := si.DataCW - 3
			if n > 16 {
				n = 16
			}
			payload := []byte("DATA MATRIX 0123")[:n]
			m, err := Encode(payload, si)
			if err != nil {
				t.Fatal(err)
			}
			if m.Height() != si.Rows || m.Width() != si.Cols {
				t.Fatalf("size = %dx%d", m.Height(), m.Width())
			}
			for row := 0; row < si.Rows; row++ {
				for col := 0; col < si.Cols; col++ {
					if border, dark := si.Border(row, col); border && m.Get(col, row) != dark {
						t.Fatalf("border module (%d,%d) = %v", row, col, m.Get(col, row))
					}
				}
			}
			again, _ := Encode(payload, si)
			if again == nil || m.String() != again.String() {
				t.Error("encoding is not deterministic")
			}
		})
	}
}
