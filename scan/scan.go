// Package scan finds and decodes Data Matrix symbols in images.
//
// Two backends are available: the gozxing Data Matrix reader, which locates
// symbols anywhere in a photo, and the native reader from package
// datamatrix, which only handles clean renders. BackendAuto tries gozxing
// first and falls back to the native reader.
package scan

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"strings"

	"github.com/disintegration/imaging"
	gozxing "github.com/makiuchi-d/gozxing"
	zxdatamatrix "github.com/makiuchi-d/gozxing/datamatrix"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/ericlevine/ecc200/charset"
	"github.com/ericlevine/ecc200/datamatrix"
)

// ErrNotFound is returned when no backend can read a symbol.
var ErrNotFound = errors.New("scan: no data matrix found")

// Backend names a decoder implementation.
type Backend string

const (
	BackendAuto    Backend = "auto"
	BackendGozxing Backend = "gozxing"
	BackendNative  Backend = "native"
)

// ParseBackend parses a backend name. The empty string selects BackendAuto.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BackendAuto, nil
	case BackendAuto, BackendGozxing, BackendNative:
		return b, nil
	}
	return "", fmt.Errorf("scan: unknown backend %q", s)
}

// Options controls decoding.
type Options struct {
	Backend Backend
	// TryHarder lets gozxing spend more time on difficult images.
	TryHarder bool
	// Workers bounds concurrent decodes in Files. Zero means one per file.
	Workers int
}

// Result is a decoded symbol.
type Result struct {
	Path    string  `json:"path,omitempty" yaml:"path,omitempty"`
	Text    string  `json:"text" yaml:"text"`
	Data    []byte  `json:"-" yaml:"-"`
	Backend Backend `json:"backend" yaml:"backend"`
	// Points are the finder corners reported by gozxing, when available.
	Points []image.Point `json:"points,omitempty" yaml:"-"`
}

// Scanner decodes images with a fixed set of options.
type Scanner struct {
	opts   Options
	logger *slog.Logger
}

// New returns a Scanner. A nil logger discards output.
func New(opts Options, logger *slog.Logger) *Scanner {
	if opts.Backend == "" {
		opts.Backend = BackendAuto
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scanner{opts: opts, logger: logger}
}

// Image decodes the symbol in img.
func (s *Scanner) Image(ctx context.Context, img image.Image) (*Result, error) {
	var errs []error
	if s.opts.Backend != BackendNative {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := s.gozxing(img)
		if err == nil {
			return res, nil
		}
		s.logger.Debug("gozxing backend failed", "error", err)
		errs = append(errs, err)
	}
	if s.opts.Backend != BackendGozxing {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := s.native(img)
		if err == nil {
			return res, nil
		}
		s.logger.Debug("native backend failed", "error", err)
		errs = append(errs, err)
	}
	return nil, fmt.Errorf("%w: %w", ErrNotFound, errors.Join(errs...))
}

// File opens and decodes the image at path.
func (s *Scanner) File(ctx context.Context, path string) (*Result, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("scan: open %s: %w", path, err)
	}
	res, err := s.Image(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	res.Path = path
	s.logger.Debug("decoded file", "path", path, "backend", res.Backend, "bytes", len(res.Data))
	return res, nil
}

// Files decodes every path concurrently. The results are in input order; a
// failed path leaves a nil entry and contributes to the joined error.
func (s *Scanner) Files(ctx context.Context, paths []string) ([]*Result, error) {
	results := make([]*Result, len(paths))
	errs := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if s.opts.Workers > 0 {
		g.SetLimit(s.opts.Workers)
	}
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			results[i], errs[i] = s.File(ctx, p)
			return nil
		})
	}
	_ = g.Wait()
	return results, errors.Join(errs...)
}

func (s *Scanner) gozxing(img image.Image) (*Result, error) {
	source := gozxing.NewLuminanceSourceFromImage(img)
	bitmap, err := gozxing.NewBinaryBitmap(gozxing.NewHybridBinarizer(source))
	if err != nil {
		return nil, err
	}
	reader := zxdatamatrix.NewDataMatrixReader()

	attempts := []map[gozxing.DecodeHintType]interface{}{
		{gozxing.DecodeHintType_PURE_BARCODE: true},
		nil,
	}
	if s.opts.TryHarder {
		attempts = append(attempts, map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		})
	}

	var r *gozxing.Result
	for _, hints := range attempts {
		if hints == nil {
			r, err = reader.DecodeWithoutHints(bitmap)
		} else {
			r, err = reader.Decode(bitmap, hints)
		}
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	// gozxing returns the payload bytes unconverted
	data := []byte(r.GetText())
	var points []image.Point
	for _, p := range r.GetResultPoints() {
		points = append(points, image.Pt(int(p.GetX()), int(p.GetY())))
	}
	return &Result{Text: charset.DecodeLatin1(data), Data: data, Backend: BackendGozxing, Points: points}, nil
}

func (s *Scanner) native(img image.Image) (*Result, error) {
	dr, err := datamatrix.ReadImage(img)
	if err != nil {
		return nil, err
	}
	return &Result{Text: charset.DecodeLatin1(dr.Data), Data: dr.Data, Backend: BackendNative}, nil
}
