package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ecomapper/niche-tools-mcp/internal/niche"
	"github.com/ecomapper/niche-tools-mcp/internal/raster"
)

func newAgreementCmd() *cobra.Command {
	var (
		tolerance float64
		output    string
		outputCRS string
	)

	cmd := &cobra.Command{
		Use:   "agreement <reference> <comparison>",
		Short: "Create a three-class agreement map between two rasters",
		Long: `Classify every cell of the comparison raster against the reference:

  -1  comparison is lower than reference beyond the tolerance
   0  within the tolerance band
  +1  comparison is higher than reference beyond the tolerance

Cells missing in either input stay nodata in the output. The output
raster inherits the reference raster's extent, cell size, and coordinate
system.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Info("reading rasters", "reference", args[0], "comparison", args[1])
			ref, refSR, err := raster.Read(args[0])
			if err != nil {
				return err
			}
			cmpGrid, _, err := raster.Read(args[1])
			if err != nil {
				return err
			}

			agreement, err := niche.AgreementMap(ref, cmpGrid, tolerance)
			if err != nil {
				return err
			}
			s := niche.Summarize(agreement)

			fmt.Printf("Agreement breakdown (tolerance %g):\n", tolerance)
			fmt.Printf("  Lower suitability (-1):  %6d pixels (%5.1f%%)\n", s.Lower, s.LowerPercent)
			fmt.Printf("  Same suitability (0):    %6d pixels (%5.1f%%)\n", s.Same, s.SamePercent)
			fmt.Printf("  Higher suitability (1):  %6d pixels (%5.1f%%)\n", s.Higher, s.HigherPercent)

			switch {
			case s.Higher > s.Lower:
				fmt.Printf("-> Comparison has MORE suitable habitat overall (+%.1f%%)\n",
					s.HigherPercent-s.LowerPercent)
			case s.Lower > s.Higher:
				fmt.Printf("-> Comparison has LESS suitable habitat overall (-%.1f%%)\n",
					s.LowerPercent-s.HigherPercent)
			default:
				fmt.Println("-> Rasters have similar amounts of suitable habitat")
			}

			if output != "" {
				slog.Info("writing agreement map", "path", output)
				err := raster.Write(output, agreement, refSR, raster.WriteOptions{CRS: outputCRS})
				if err != nil {
					return err
				}
				fmt.Printf("Agreement map written to %s\n", output)
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&tolerance, "tolerance", "t", niche.DefaultTolerance,
		"absolute difference within which two cells count as the same")
	cmd.Flags().StringVarP(&output, "output", "o", "", "path for the classified output raster")
	cmd.Flags().StringVar(&outputCRS, "output-crs", "",
		"override the output coordinate system (EPSG:<code> or WKT); metadata only, values are not reprojected")
	return cmd
}
