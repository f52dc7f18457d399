package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colorsful/colorsful/internal/layout"
	"github.com/colorsful/colorsful/internal/nebula"
	"github.com/colorsful/colorsful/internal/render"
)

var (
	// Nebula command flags
	nebulaPNG     string
	nebulaJSON    string
	nebulaField   = nebula.DefaultOptions()
	nebulaRank    = layout.DefaultRankOptions()
	nebulaPreview = render.DefaultOptions()
)

// nebulaCmd represents the nebula command
var nebulaCmd = &cobra.Command{
	Use:   "nebula",
	Short: "Synthesise the nebula colour field inside the logo",
	Long: `Place the catalog inside the logo silhouette using each video's home
colour, then synthesise the nebula: a coarse polar grid of smoothed,
saturated colour cells and a fine inverse-distance raster.

Dithering is seeded by --seed-mode (fixed by default), so the same catalog
always renders the same field unless asked otherwise.

Examples:
  # Summary only
  colorsful nebula -i catalog.json

  # Render a 1200px preview
  colorsful nebula -i catalog.json --png nebula.png --size 1200

  # Export points and cells, reseeding from the catalog content
  colorsful nebula -i catalog.json --json nebula.json --seed-mode content`,
	Args: cobra.NoArgs,
	RunE: runNebula,
}

func init() {
	nebulaCmd.Flags().StringVar(&nebulaPNG, "png", "", "write a PNG preview to this path")
	nebulaCmd.Flags().StringVar(&nebulaJSON, "json", "", "write points and cells as JSON to this path (- for stdout)")
	bindNebulaFlags(nebulaCmd.Flags(), &nebulaField)
	bindRankFlags(nebulaCmd.Flags(), &nebulaRank)
	bindRenderFlags(nebulaCmd.Flags(), &nebulaPreview)
}

// runNebula executes the nebula command.
func runNebula(cmd *cobra.Command, _ []string) error {
	if err := nebulaField.Validate(); err != nil {
		return fmt.Errorf("invalid nebula options: %w", err)
	}
	if err := nebulaRank.Validate(); err != nil {
		return fmt.Errorf("invalid rank options: %w", err)
	}
	if nebulaPNG != "" {
		if err := nebulaPreview.Validate(); err != nil {
			return fmt.Errorf("invalid preview options: %w", err)
		}
	}
	if globalContext != "" && globalContext != "home" {
		logger.Warn("the nebula always uses home colours; ignoring --context", "context", globalContext)
	}

	records, err := loadRecords(cmd)
	if err != nil {
		return err
	}
	table, err := loadTable()
	if err != nil {
		return err
	}
	rng, err := resolveRand(cmd, records)
	if err != nil {
		return err
	}

	n := nebula.Build(records, table, nebula.BuildOptions{
		Field:  nebulaField,
		Rank:   nebulaRank,
		Rand:   rng,
		Logger: logger.Named("nebula"),
	})

	if nebulaJSON != "" {
		if err := writeJSONFile(cmd, nebulaJSON, n); err != nil {
			return err
		}
		logger.Info("nebula written", "path", nebulaJSON)
	}

	if nebulaPNG != "" {
		img, err := render.Nebula(n, table, nebulaPreview)
		if err != nil {
			return fmt.Errorf("failed to render nebula: %w", err)
		}
		if err := render.WriteFile(nebulaPNG, img); err != nil {
			return err
		}
		logger.Info("preview written", "path", nebulaPNG, "size", nebulaPreview.Size)
	}

	if nebulaJSON != "-" && !globalQuiet {
		fmt.Fprintf(cmd.OutOrStdout(), "points: %d\ncells:  %d\nfine:   %d\n", len(n.Points), len(n.Cells), len(n.Fine))
	}
	return nil
}
