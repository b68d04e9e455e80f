package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ecomapper/niche-tools-mcp/internal/niche"
	"github.com/ecomapper/niche-tools-mcp/internal/raster"
)

func newOverlapCmd() *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "overlap <raster1> <raster2>",
		Short: "Compute Warren's I niche overlap between two rasters",
		Long: `Compute Warren's I (Warren et al. 2008) between two aligned
suitability rasters. The statistic ranges from 0 (disjoint) to 1
(identical) and is computed over the cells valid in both inputs.

Warren's I expects probability surfaces that each sum to 1. Pass
--normalize when the inputs are raw suitability scores.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Info("reading rasters", "raster1", args[0], "raster2", args[1])
			g1, _, err := raster.Read(args[0])
			if err != nil {
				return err
			}
			g2, _, err := raster.Read(args[1])
			if err != nil {
				return err
			}

			if normalize {
				if g1, err = niche.Normalize(g1); err != nil {
					return fmt.Errorf("normalizing %s: %w", args[0], err)
				}
				if g2, err = niche.Normalize(g2); err != nil {
					return fmt.Errorf("normalizing %s: %w", args[1], err)
				}
			}

			i, err := niche.WarrensI(g1, g2)
			if err != nil {
				return err
			}

			fmt.Printf("Niche overlap (Warren's I): %.4f (%.1f%%)\n", i, i*100)
			return nil
		},
	}

	cmd.Flags().BoolVar(&normalize, "normalize", false, "normalize each raster to sum to 1 before comparing")
	return cmd
}
