// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
)

// app carries the state shared by every command of one run.
type app struct {
	cfg    Config
	log    zerolog.Logger
	out    io.Writer
	errOut io.Writer

	// persistent flags
	configPath string
	output     string
	logLevel   string
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		cfg:    DefaultConfig(),
		log:    zerolog.Nop(),
		out:    out,
		errOut: errOut,
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "estkit",
		Short:         "Estimating codecs and reference tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to estkit.toml (default ./estkit.toml, or $"+EnvConfig+")")
	pf.StringVarP(&a.output, "output", "o", "", "output format: text, json or msgpack")
	pf.StringVar(&a.logLevel, "log-level", "", "trace, debug, info, warn, error or disabled")

	root.AddCommand(
		a.mixedCmd(),
		a.gaugeCmd(),
		a.columnCmd(),
		a.conduitCmd(),
		a.ampacityCmd(),
		a.rebarCmd(),
		a.starterCmd(),
		a.laborCmd(),
		a.rollupCmd(),
		a.tablesCmd(),
	)

	return root
}

// setup loads config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path, explicit := resolveConfigPath(a.configPath)
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = a.output
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = newLogger(a.errOut, cfg)
	a.log.Debug().Str("config", path).Str("command", cmd.CommandPath()).Msg("configured")

	return nil
}

// emit writes v in the configured output format; text mode prints text.
func (a *app) emit(v any, text string) error {
	switch a.cfg.Output {
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "msgpack":
		b, err := msgpack.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode msgpack: %w", err)
		}
		_, err = a.out.Write(b)
		return err
	default:
		_, err := fmt.Fprintln(a.out, text)
		return err
	}
}
