package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericlevine/ecc200"
	"github.com/ericlevine/ecc200/bitutil"
	"github.com/ericlevine/ecc200/charset"
	"github.com/ericlevine/ecc200/render"
)

// symbolDump is the --dump document.
type symbolDump struct {
	Size      string   `yaml:"size" json:"size"`
	Rows      int      `yaml:"rows" json:"rows"`
	Cols      int      `yaml:"cols" json:"cols"`
	DataCW    int      `yaml:"data_codewords" json:"data_codewords"`
	ECCCW     int      `yaml:"ecc_codewords" json:"ecc_codewords"`
	Blocks    int      `yaml:"blocks" json:"blocks"`
	Codewords []int    `yaml:"codewords,flow" json:"codewords"`
	Matrix    []string `yaml:"matrix" json:"matrix"`
}

func newEncodeCommand(a *app) *cobra.Command {
	var (
		output       string
		inputCharset string
		verify       bool
		dump         bool
	)
	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text into a Data Matrix symbol",
		Long: `Encode text into a Data Matrix symbol. The text is read from stdin when no
argument is given and must be representable in ISO-8859-1. Use --input-charset
when stdin is not UTF-8.

Without --output the symbol is printed to the terminal. The output file
extension selects the image format: png, jpg, gif, tif or bmp.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			payload, err := charset.ToLatin1([]byte(text), inputCharset)
			if err != nil {
				return err
			}
			opts, err := a.cfg.SymbolOptions()
			if err != nil {
				return err
			}
			opts = append(opts, ecc200.WithLogger(a.logger))

			si, codewords, err := ecc200.Codewords(payload, opts...)
			if err != nil {
				return err
			}
			m, err := ecc200.Symbol(si, codewords)
			if err != nil {
				return err
			}
			if verify {
				if err := ecc200.Verify(payload, m); err != nil {
					return fmt.Errorf("verification failed: %w", err)
				}
				a.logger.Info("symbol verified", "size", si.String())
			}

			out := cmd.OutOrStdout()
			if dump {
				return writeStructured(out, structuredFormat(a.cfg.Output.Format), newSymbolDump(si, codewords, m))
			}
			if output == "" || output == "-" {
				_, err := io.WriteString(out, render.Text(m, a.cfg.Render.QuietZone))
				return err
			}
			return a.writeImage(output, m)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "output image file; empty or - prints to the terminal")
	f.StringVar(&inputCharset, "input-charset", "utf-8", "encoding of the input text (WHATWG label, e.g. windows-1252)")
	f.BoolVar(&verify, "verify", false, "decode the symbol and check it carries the input")
	f.BoolVar(&dump, "dump", false, "print codewords and matrix instead of the symbol")
	f.String("size", "", "symbol size ROWSxCOLS, or auto")
	f.String("shape", "", "shape for --size auto (any, square, rectangle)")
	f.Int("module-size", 0, "module edge in pixels")
	f.Int("quiet-zone", 0, "quiet zone in modules")
	f.Int("width", 0, "scale the image to this width in pixels")
	f.String("foreground", "", "dark module colour")
	f.String("background", "", "light module colour")

	a.bind("symbol.size", f.Lookup("size"))
	a.bind("symbol.shape", f.Lookup("shape"))
	a.bind("render.module_size", f.Lookup("module-size"))
	a.bind("render.quiet_zone", f.Lookup("quiet-zone"))
	a.bind("render.width", f.Lookup("width"))
	a.bind("render.foreground", f.Lookup("foreground"))
	a.bind("render.background", f.Lookup("background"))
	return cmd
}

func (a *app) writeImage(path string, m *bitutil.BitMatrix) error {
	if _, err := render.ParseFormat(path); err != nil {
		return err
	}
	img := render.Scale(render.Image(m, a.cfg.RenderOptions()), a.cfg.Render.Width)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.Write(f, img, path); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	a.logger.Info("wrote symbol", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}

// readText returns the single argument, or stdin without its trailing newline.
func readText(r io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

// structuredFormat maps the text output format to YAML for commands that
// only produce documents.
func structuredFormat(format string) string {
	if strings.EqualFold(format, "json") {
		return "json"
	}
	return "yaml"
}

func newSymbolDump(si ecc200.SymbolInfo, codewords []byte, m *bitutil.BitMatrix) symbolDump {
	cws := make([]int, len(codewords))
	for i, c := range codewords {
		cws[i] = int(c)
	}
	return symbolDump{
		Size:      si.String(),
		Rows:      si.Rows,
		Cols:      si.Cols,
		DataCW:    si.DataCW,
		ECCCW:     si.ECCCW,
		Blocks:    si.BlockCount(),
		Codewords: cws,
		Matrix:    strings.Split(strings.TrimSuffix(render.ASCII(m), "\n"), "\n"),
	}
}
