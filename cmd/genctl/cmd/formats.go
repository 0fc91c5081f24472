package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jpfielding/signalgen.go/pkg/pixpack"
	"github.com/spf13/cobra"
)

// NewFormatsCmd lists the registered pixel formats
func NewFormatsCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "list supported pixel formats",
		Long:  "list supported pixel formats with their packing parameters and the row stride for a reference width",
		RunE: func(cmd *cobra.Command, args []string) error {
			width, _ := cmd.Flags().GetInt("width")

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "INDEX\tFOURCC\tNAME\tDEPTH\tGROUP\tSTRIDE@%d\n", width)
			for i, f := range pixpack.Formats() {
				d, err := pixpack.Describe(f)
				if err != nil {
					return err
				}
				stride, err := pixpack.RowStride(f, width)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%dpx/%dB\t%d\n",
					i, f.FourCC(), d.Name, d.Depth, d.GroupPixels, d.GroupBytes, stride)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntP("width", "w", 1920, "reference width for stride column")
	return cmd
}
