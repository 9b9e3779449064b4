package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/uvcval/uvc"
)

func newControlsCommand(stdout io.Writer) *cobra.Command {
	var (
		catalogPath string
		asYAML      bool
	)

	cmd := &cobra.Command{
		Use:   "controls",
		Short: "List the controls of a catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			if asYAML {
				return uvc.WriteCatalog(stdout, cat)
			}

			tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tUNIT\tSELECTOR\tBYTES\tTYPE")
			for _, c := range cat.Controls() {
				fmt.Fprintf(tw, "%s\t%s\t0x%02x\t%d\t%s\n",
					c.Name(), c.Unit(), c.Selector(), c.Schema().ByteSize(), c.Schema().Signature())
			}

			return tw.Flush()
		},
	}
	cmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML catalog to use instead of the standard controls")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the catalog as YAML")

	cmd.AddCommand(newSetupCommand(stdout, &catalogPath))

	return cmd
}

func newSetupCommand(stdout io.Writer, catalogPath *string) *cobra.Command {
	var unitID, iface uint8

	cmd := &cobra.Command{
		Use:     "setup <control> <request>",
		Short:   "Print the control transfer setup packet for a request",
		Example: `  uvcval controls setup brightness GET_CUR --interface 0`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(*catalogPath)
			if err != nil {
				return err
			}
			c, ok := cat.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown control %q", args[0])
			}
			req, err := uvc.ParseRequest(args[1])
			if err != nil {
				return err
			}

			p := c.Setup(req, unitID, iface)
			_, err = fmt.Fprintf(stdout, "%s\nbytes: %s\n", p, hex.EncodeToString(p.Bytes()))

			return err
		},
	}
	cmd.Flags().Uint8Var(&unitID, "unit-id", 0, "unit or terminal id, 0 for the default")
	cmd.Flags().Uint8Var(&iface, "interface", 0, "video control interface number")

	return cmd
}
