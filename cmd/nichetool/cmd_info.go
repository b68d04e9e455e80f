package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecomapper/niche-tools-mcp/internal/raster"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <raster>",
		Short: "Print shape, metadata, and value statistics for a raster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, sr, err := raster.Read(args[0])
			if err != nil {
				return err
			}
			info := raster.Describe(g, sr)

			fmt.Printf("Raster:       %s\n", args[0])
			fmt.Printf("Shape:        %s (rows x cols)\n", info.Shape)
			fmt.Printf("Cell size:    %g x %g\n", info.CellWidth, info.CellHeight)
			fmt.Printf("CRS:          %s\n", crsLabel(info.HasCRS))
			fmt.Printf("Valid cells:  %d\n", info.ValidCells)
			fmt.Printf("NoData cells: %d\n", info.NoDataCells)
			if info.ValidCells > 0 {
				fmt.Printf("Min / Max:    %g / %g\n", info.Min, info.Max)
				fmt.Printf("Mean:         %g\n", info.Mean)
				fmt.Printf("Sum:          %g\n", info.Sum)
			}
			return nil
		},
	}
}

func crsLabel(has bool) string {
	if has {
		return "present"
	}
	return "none"
}
