package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ericlevine/ecc200"
	"github.com/ericlevine/ecc200/datamatrix/encoder"
)

type sizeEntry struct {
	Size        string `yaml:"size" json:"size"`
	Rows        int    `yaml:"rows" json:"rows"`
	Cols        int    `yaml:"cols" json:"cols"`
	Regions     string `yaml:"regions" json:"regions"`
	DataCW      int    `yaml:"data_codewords" json:"data_codewords"`
	ECCCW       int    `yaml:"ecc_codewords" json:"ecc_codewords"`
	Blocks      int    `yaml:"blocks" json:"blocks"`
	MaxC40Chars int    `yaml:"max_c40_chars" json:"max_c40_chars"`
}

func newSizesCommand(a *app) *cobra.Command {
	var shapeName string
	cmd := &cobra.Command{
		Use:   "sizes",
		Short: "List supported symbol sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shape, err := encoder.ParseShape(shapeName)
			if err != nil {
				return err
			}
			var entries []sizeEntry
			for _, si := range ecc200.Sizes() {
				if shape == encoder.ShapeSquare && si.Rectangular() ||
					shape == encoder.ShapeRectangle && !si.Rectangular() {
					continue
				}
				entries = append(entries, sizeEntry{
					Size:        si.String(),
					Rows:        si.Rows,
					Cols:        si.Cols,
					Regions:     fmt.Sprintf("%dx%d", si.RegionRows(), si.RegionCols()),
					DataCW:      si.DataCW,
					ECCCW:       si.ECCCW,
					Blocks:      si.BlockCount(),
					MaxC40Chars: maxC40Chars(si),
				})
			}

			out := cmd.OutOrStdout()
			if format := strings.ToLower(a.cfg.Output.Format); format != "text" {
				return writeStructured(out, format, entries)
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "SIZE\tREGIONS\tDATA\tECC\tBLOCKS\tC40 CHARS")
			for _, e := range entries {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\n", e.Size, e.Regions, e.DataCW, e.ECCCW, e.Blocks, e.MaxC40Chars)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&shapeName, "shape", "any", "only list this shape (any, square, rectangle)")
	return cmd
}

// maxC40Chars is the longest run of basic-set characters the symbol holds:
// the latch, three characters per codeword pair and, when one codeword is
// left over, a single ASCII character.
func maxC40Chars(si ecc200.SymbolInfo) int {
	pairs := (si.DataCW - 1) / 2
	if (si.DataCW-1)%2 == 1 {
		return pairs*3 + 1
	}
	return pairs * 3
}
