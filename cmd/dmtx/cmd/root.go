// Package cmd implements the dmtx command tree.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ericlevine/ecc200/internal/config"
)

// version is set at build time with -ldflags "-X ...cmd.version=...".
var version = "dev"

// app carries state shared by the subcommands of one command tree.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRootCommand builds the dmtx command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "dmtx",
		Short: "ECC200 Data Matrix encoder and reader",
		Long: `dmtx encodes text into ECC200 Data Matrix symbols and decodes them from images.

Examples:
  dmtx encode "HELLO WORLD"
  dmtx encode --size auto --shape rectangle -o label.png "ODOO 17!"
  dmtx decode label.png
  dmtx sizes --format yaml`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dmtx version %s\n", version)
				return nil
			}
			return cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is search in ., $XDG_CONFIG_HOME/dmtx, /etc/dmtx)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text, json)")
	pf.String("format", "text", "output format (text, yaml, json)")
	root.Flags().Bool("version", false, "print version information and exit")

	a.bind("log_level", pf.Lookup("log-level"))
	a.bind("log_format", pf.Lookup("log-format"))
	a.bind("output.format", pf.Lookup("format"))

	root.AddCommand(newEncodeCommand(a), newDecodeCommand(a), newSizesCommand(a))
	return root
}

func (a *app) bind(key string, flag *pflag.Flag) {
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind %s: %v", key, err))
	}
}

// setup loads the configuration, with bound flags applied, and installs the
// logger. Logs go to stderr so that stdout carries only command output.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewLoaderWithViper(a.v).Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("loaded configuration", "file", used)
	}
	return nil
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
