package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arloliu/uvcval/schema"
)

func newSummaryCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <type>",
		Short: "Describe a type description",
		Example: `  uvcval summary "{S4 pan; S4 tilt}"
  uvcval summary pan-tilt-abs`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSchema(args[0], nil)
			if err != nil {
				return err
			}

			return writeSummary(stdout, s)
		},
	}
}

func writeSummary(w io.Writer, s *schema.Schema) error {
	if _, err := fmt.Fprintf(w, "signature: %s\nbytes:     %d\n", s.Signature(), s.ByteSize()); err != nil {
		return err
	}
	for i, f := range s.Fields() {
		if _, err := fmt.Fprintf(w, "  %-3d %-14s %-2s offset %d\n", i, f.Name, f.Type.Code(), s.OffsetAt(i)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, s.Summary())

	return err
}
