package cli

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arloliu/uvcval/schema"
	"github.com/arloliu/uvcval/value"
)

type companionFlags struct {
	minimum      string
	maximum      string
	step         string
	defaultValue string
}

func addCompanionFlags(flags *pflag.FlagSet, c *companionFlags) {
	flags.StringVar(&c.minimum, "minimum", "", "value the 'minimum' keyword resolves to")
	flags.StringVar(&c.maximum, "maximum", "", "value the 'maximum' keyword resolves to")
	flags.StringVar(&c.step, "step", "", "resolution of the control")
	flags.StringVar(&c.defaultValue, "default", "", "value the 'default' keyword resolves to")
}

// options scans each non-empty companion into a buffer laid out by s.
func (c *companionFlags) options(s *schema.Schema) ([]schema.ScanOption, error) {
	var opts []schema.ScanOption

	for _, comp := range []struct {
		flag string
		text string
		with func([]byte) schema.ScanOption
	}{
		{"minimum", c.minimum, schema.WithMinimum},
		{"maximum", c.maximum, schema.WithMaximum},
		{"step", c.step, schema.WithStep},
		{"default", c.defaultValue, schema.WithDefault},
	} {
		if comp.text == "" {
			continue
		}
		v, err := value.New(s)
		if err != nil {
			return nil, err
		}
		if err := v.Scan(comp.text); err != nil {
			return nil, fmt.Errorf("--%s: %w", comp.flag, err)
		}
		opts = append(opts, comp.with(v.Bytes()))
	}

	return opts, nil
}

func newScanCommand(stdout io.Writer) *cobra.Command {
	var companions companionFlags

	cmd := &cobra.Command{
		Use:   "scan <type> <value>",
		Short: "Parse a value and print it with its wire bytes",
		Example: `  uvcval scan pan-tilt-abs "{pan=3600, tilt=-3600}"
  uvcval scan "{U2}" default --default 4600`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSchema(args[0], nil)
			if err != nil {
				return err
			}
			opts, err := companions.options(s)
			if err != nil {
				return err
			}
			opts = append(opts, schema.WithLogger(logger()))

			v, err := value.New(s)
			if err != nil {
				return err
			}
			if err := v.Scan(args[1], opts...); err != nil {
				return err
			}

			_, err = fmt.Fprintf(stdout, "value: %s\nwire:  %s\n", v, hex.EncodeToString(v.WireBytes()))

			return err
		},
	}
	addCompanionFlags(cmd.Flags(), &companions)

	return cmd
}
