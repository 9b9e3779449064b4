package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/uvcval/format"
	"github.com/arloliu/uvcval/snapshot"
)

func newSnapshotCommand(stdin io.Reader, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save and inspect sets of control values",
	}
	cmd.AddCommand(newSnapshotSaveCommand(stdout))
	cmd.AddCommand(newSnapshotShowCommand(stdin, stdout))

	return cmd
}

func newSnapshotSaveCommand(stdout io.Writer) *cobra.Command {
	var (
		output      string
		compression string
		catalogPath string
	)

	cmd := &cobra.Command{
		Use:   "save <control>=<value>...",
		Short: "Encode control values into a snapshot file",
		Example: `  uvcval snapshot save -o profile.uvc --compression zstd \
      brightness=-30 "pan-tilt-abs={3600,-7200}" auto-focus=no`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, ok := format.ParseCompressionType(compression)
			if !ok {
				return fmt.Errorf("unknown compression %q", compression)
			}
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			enc, err := snapshot.NewEncoder(snapshot.WithCompression(ct), snapshot.WithLogger(logger()))
			if err != nil {
				return err
			}

			for _, arg := range args {
				name, text, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("argument %q is not <control>=<value>", arg)
				}
				c, found := cat.Lookup(name)
				if !found {
					return fmt.Errorf("unknown control %q", name)
				}
				v, err := c.NewValue()
				if err != nil {
					return err
				}
				if err := v.Scan(text); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if err := enc.Add(c.Name(), v); err != nil {
					return err
				}
			}

			names := enc.Names()
			data, err := enc.Finish()
			if err != nil {
				return err
			}
			cliLogger().Debug("snapshot encoded", "entries", names, "bytes", len(data), "output", output)

			if output == "" || output == "-" {
				_, err = stdout.Write(data)
				return err
			}

			return os.WriteFile(output, data, 0o644)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "file to write, stdout if empty")
	flags.StringVar(&compression, "compression", "none", "payload compression: none, zstd, s2 or lz4")
	flags.StringVar(&catalogPath, "catalog", "", "YAML catalog to resolve control names")

	return cmd
}

func newSnapshotShowCommand(stdin io.Reader, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print the values stored in a snapshot",
		Long:  `Prints the values stored in a snapshot. Use "-" to read from stdin.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(stdin)
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}

			snap, err := snapshot.Decode(data)
			if err != nil {
				return err
			}
			cliLogger().Debug("snapshot decoded", "input", args[0], "bytes", len(data), "entries", snap.Len())

			h := snap.Header()
			fmt.Fprintf(stdout, "version %d, %d entries, %s compression, %d payload bytes\n",
				h.Version, h.EntryCount, h.Compression, h.PayloadSize)

			tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
			for name, v := range snap.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", name, v.Schema().Signature(), v)
			}

			return tw.Flush()
		},
	}
}
