package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arloliu/uvcval/value"
)

func newDecodeCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:     "decode <type> <hex>",
		Short:   "Format little-endian wire bytes as text",
		Example: `  uvcval decode pan-tilt-abs "100e0000 f0f1ffff"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSchema(args[0], nil)
			if err != nil {
				return err
			}
			wire, err := decodeHex(args[1])
			if err != nil {
				return err
			}

			v, err := value.FromWire(s, wire)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(stdout, v)

			return err
		},
	}
}
