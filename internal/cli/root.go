// Package cli implements the uvcval command line tool.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arloliu/uvcval/internal/logging"
)

type globalFlags struct {
	verbose   bool
	logFormat string
}

// NewRootCommand builds the uvcval command tree writing to the given streams.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var g globalFlags

	rc := &cobra.Command{
		Use:   "uvcval",
		Short: "Inspect and convert UVC control values offline",
		Long: `uvcval parses UVC type descriptions, converts control values between
text and little-endian wire bytes, and saves sets of values as snapshots.

No device is opened; every command works on text, hex and files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.apply(stderr)
		},
	}
	addGlobalFlags(rc.PersistentFlags(), &g)

	rc.AddCommand(newSummaryCommand(stdout))
	rc.AddCommand(newScanCommand(stdout))
	rc.AddCommand(newDecodeCommand(stdout))
	rc.AddCommand(newControlsCommand(stdout))
	rc.AddCommand(newSnapshotCommand(stdin, stdout))

	rc.SetIn(stdin)
	rc.SetOut(stdout)
	rc.SetErr(stderr)

	return rc
}

func addGlobalFlags(flags *pflag.FlagSet, g *globalFlags) {
	flags.BoolVarP(&g.verbose, "verbose", "v", false, "log debug output to stderr")
	flags.StringVar(&g.logFormat, "log-format", "text", "log format: text or json")
}

func (g *globalFlags) apply(stderr io.Writer) error {
	var format logging.Format
	switch strings.ToLower(g.logFormat) {
	case "text":
		format = logging.FormatText
	case "json":
		format = logging.FormatJSON
	default:
		return fmt.Errorf("invalid --log-format %q, want text or json", g.logFormat)
	}

	level := slog.LevelWarn
	if g.verbose {
		level = slog.LevelDebug
	}
	logging.SetLevel(level)
	logging.SetLogger(logging.New(stderr, format))

	return nil
}

// logger returns the logger handed to library packages, which tag their
// records with their own component.
func logger() *slog.Logger {
	return logging.Default()
}

// cliLogger returns the logger for records of the commands themselves.
func cliLogger() *slog.Logger {
	return logging.For(nil, logging.ComponentCLI)
}
