// Package main provides the CLI interface for the calc library.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sivchari/calc/internal/config"
)

const version = "0.1.0"

type app struct {
	configFile string
	verbose    bool
	output     string

	cfg    *config.YAMLConfig
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "Elementary arithmetic and text operations",
		Long: `calc evaluates a single arithmetic or text operation and prints the result.

Negative numbers must follow a "--" separator so they are not read as flags:
  calc sum -- -5 5`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default is .calc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format (text, json)")

	for _, cmd := range a.operationCmds() {
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// setup loads configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadYAML(a.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if a.verbose {
		cfg.Verbose = true
	}

	switch a.output {
	case "":
	case config.FormatText, config.FormatJSON:
		cfg.Output.Format = a.output
	default:
		return fmt.Errorf("unsupported output format %q", a.output)
	}

	a.cfg = cfg

	if cfg.Verbose {
		a.logger = newLogger(cmd.ErrOrStderr())
	}

	return nil
}

// newLogger returns a development-style debug logger writing to w.
func newLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)

	return zap.New(core, zap.AddCaller(), zap.Development())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "calc version %s\n", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
