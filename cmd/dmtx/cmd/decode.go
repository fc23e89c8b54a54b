package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericlevine/ecc200/scan"
)

func newDecodeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <image>...",
		Short: "Decode Data Matrix symbols from image files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.cfg.ScanOptions()
			if err != nil {
				return err
			}
			results, scanErr := scan.New(opts, a.logger).Files(cmd.Context(), args)

			var found []*scan.Result
			for _, r := range results {
				if r != nil {
					found = append(found, r)
				}
			}
			if scanErr != nil {
				for _, err := range unwrapJoined(scanErr) {
					a.logger.Error("decode failed", "error", err)
				}
			}

			out := cmd.OutOrStdout()
			switch format := strings.ToLower(a.cfg.Output.Format); format {
			case "yaml", "json":
				if err := writeStructured(out, format, found); err != nil {
					return err
				}
			default:
				for _, r := range found {
					if len(args) > 1 {
						_, _ = fmt.Fprintf(out, "%s: ", r.Path)
					}
					_, _ = fmt.Fprintln(out, r.Text)
				}
			}
			if scanErr != nil {
				return fmt.Errorf("%d of %d images could not be decoded", len(args)-len(found), len(args))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.String("backend", "", "decoder backend (auto, gozxing, native)")
	f.Bool("try-harder", false, "spend more time on difficult images")
	f.Int("workers", 0, "concurrent decodes (0 means one per file)")

	a.bind("scan.backend", f.Lookup("backend"))
	a.bind("scan.try_harder", f.Lookup("try-harder"))
	a.bind("scan.workers", f.Lookup("workers"))
	return cmd
}

func unwrapJoined(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

