// nichetool is the command-line front-end to the niche analysis toolkit.
//
// It exposes the same operations as the MCP server for batch and shell
// use: raster inspection, Warren's I overlap, and agreement mapping.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nichetool",
	Short: "Compare habitat-suitability rasters",
	Long: `nichetool computes similarity and difference metrics between two
georeferenced raster grids, such as species distribution model outputs
for current and future climate.

Supported raster formats: ESRI ASCII grid (.asc/.agr) natively, and
anything GDAL can read (GeoTIFF etc.) for the rest.`,
	SilenceUsage: true,
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newOverlapCmd())
	rootCmd.AddCommand(newAgreementCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
