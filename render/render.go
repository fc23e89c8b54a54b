// Package render turns symbol matrices into raster images and terminal text.
package render

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/ericlevine/ecc200/bitutil"
)

// ErrFormat is returned for unknown output formats.
var ErrFormat = errors.New("render: unsupported image format")

// Options controls rasterisation.
type Options struct {
	// ModuleSize is the edge of one module in pixels.
	ModuleSize int
	// QuietZone is the light margin around the symbol, in modules.
	QuietZone int
	// Foreground and Background are hex colours such as "#000" or "#1a2b3c".
	Foreground string
	Background string
}

// DefaultOptions returns 4 pixel modules, a 2 module quiet zone, black on white.
func DefaultOptions() Options {
	return Options{
		ModuleSize: 4,
		QuietZone:  2,
		Foreground: "#000000",
		Background: "#ffffff",
	}
}

func (o Options) normalize() Options {
	d := DefaultOptions()
	if o.ModuleSize <= 0 {
		o.ModuleSize = d.ModuleSize
	}
	if o.QuietZone < 0 {
		o.QuietZone = 0
	}
	if o.Foreground == "" {
		o.Foreground = d.Foreground
	}
	if o.Background == "" {
		o.Background = d.Background
	}
	return o
}

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidColor reports whether s is a hex colour accepted by Options.
func ValidColor(s string) bool {
	return hexColor.MatchString(s)
}

// Image draws m with one square per dark module.
func Image(m *bitutil.BitMatrix, opts Options) image.Image {
	opts = opts.normalize()
	ms, qz := opts.ModuleSize, opts.QuietZone
	w := (m.Width() + 2*qz) * ms
	h := (m.Height() + 2*qz) * ms

	dc := gg.NewContext(w, h)
	dc.SetHexColor(opts.Background)
	dc.Clear()
	dc.SetHexColor(opts.Foreground)
	size := float64(ms)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.Get(x, y) {
				dc.DrawRectangle(float64((x+qz)*ms), float64((y+qz)*ms), size, size)
				dc.Fill()
			}
		}
	}
	return dc.Image()
}

// Scale resizes img to the given width keeping module edges sharp. A width
// of zero or less returns img unchanged.
func Scale(img image.Image, width int) image.Image {
	if width <= 0 || width == img.Bounds().Dx() {
		return img
	}
	return imaging.Resize(img, width, 0, imaging.NearestNeighbor)
}

// ParseFormat maps a name or file extension ("png", ".jpg", "out.tiff") to
// an image format.
func ParseFormat(name string) (imaging.Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		ext = "." + strings.ToLower(name)
	}
	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFormat, name)
	}
	return f, nil
}

// Write encodes img to w in the named format.
func Write(w io.Writer, img image.Image, format string) error {
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}
	if err := imaging.Encode(w, img, f); err != nil {
		return fmt.Errorf("render: encode %s: %w", f, err)
	}
	return nil
}
