package render

import (
	"strings"

	"github.com/ericlevine/ecc200/bitutil"
)

const (
	blank     = " "
	blockFull = "█"
	blockUp   = "▀"
	blockDown = "▄"
)

// Text renders m for a terminal using half-block glyphs, two module rows per
// line. Dark modules are drawn as blocks, so the output reads correctly on a
// light background. quiet adds that many light modules on every side.
func Text(m *bitutil.BitMatrix, quiet int) string {
	if quiet < 0 {
		quiet = 0
	}
	w := m.Width() + 2*quiet
	h := m.Height() + 2*quiet
	dark := func(x, y int) bool {
		x -= quiet
		y -= quiet
		if x < 0 || y < 0 || x >= m.Width() || y >= m.Height() {
			return false
		}
		return m.Get(x, y)
	}

	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top, bottom := dark(x, y), y+1 < h && dark(x, y+1)
			switch {
			case top && bottom:
				sb.WriteString(blockFull)
			case top:
				sb.WriteString(blockUp)
			case bottom:
				sb.WriteString(blockDown)
			default:
				sb.WriteString(blank)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ASCII renders m with '#' for dark and '.' for light modules, one row per line.
func ASCII(m *bitutil.BitMatrix) string {
	return m.StringWithChars("#", ".")
}
