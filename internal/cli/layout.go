package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/colorsful/colorsful/internal/catalog"
	"github.com/colorsful/colorsful/internal/colour"
	"github.com/colorsful/colorsful/internal/density"
	"github.com/colorsful/colorsful/internal/layout"
)

var (
	// Layout command flags
	layoutMode     string
	layoutEqualize bool
	layoutBins     int
	layoutFormat   string
	layoutPreview  bool
	layoutGradient = layout.DefaultGradientOptions()
)

// layoutCmd represents the layout command
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Place the catalog in the colour-space canvas",
	Long: `Place every video of the catalog on the 100x100 canvas.

Modes:
  wheel     - angle is the hue, radius is half the vibrancy
  gradient  - lightness rank within a hue neighbourhood, bounded by hue density
  logo      - lightness rank within a hue neighbourhood, bounded by the logo

Achromatic colours are spread around the wheel by the golden angle. Records
without a valid colour are skipped.

Examples:
  # Hue wheel as a table
  colorsful layout -i catalog.json

  # Equalised wheel, giving dense hues more room
  colorsful layout -i catalog.json --equalize

  # Logo layout as JSON, using the home colours
  colorsful layout -i catalog.json --mode logo --context home --format json`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().StringVarP(&layoutMode, "mode", "m", "wheel", "layout mode (wheel, gradient, logo)")
	layoutCmd.Flags().BoolVar(&layoutEqualize, "equalize", false, "warp the wheel by hue density (wheel mode)")
	layoutCmd.Flags().IntVar(&layoutBins, "bins", density.DefaultBins, "hue histogram bins")
	layoutCmd.Flags().StringVarP(&layoutFormat, "format", "f", formatTable, "output format (table, json)")
	layoutCmd.Flags().BoolVar(&layoutPreview, "preview", false, "show colour swatches in terminal")
	bindRankFlags(layoutCmd.Flags(), &layoutGradient.Rank)
	bindProfileFlags(layoutCmd.Flags(), &layoutGradient.Profile)
}

// newPolicy builds the policy for mode over samples.
func newPolicy(mode string, samples []catalog.Sample) (layout.Policy, error) {
	opts := layoutGradient
	opts.Bins = layoutBins

	switch mode {
	case "wheel":
		if layoutEqualize {
			return layout.NewEqualizedWheel(samples, layoutBins), nil
		}
		return layout.NewWheel(layout.WheelOptions{}), nil
	case "gradient", "logo":
		if err := opts.Rank.Validate(); err != nil {
			return nil, fmt.Errorf("invalid rank options: %w", err)
		}
		table, err := loadTable()
		if err != nil {
			return nil, err
		}
		if mode == "logo" {
			return layout.NewLogo(table, opts.Rank), nil
		}
		if err := opts.Profile.Validate(); err != nil {
			return nil, fmt.Errorf("invalid radius profile: %w", err)
		}
		return layout.NewGradient(samples, table, opts), nil
	default:
		return nil, fmt.Errorf("invalid layout mode: %s (valid: wheel, gradient, logo)", mode)
	}
}

// runLayout executes the layout command.
func runLayout(cmd *cobra.Command, _ []string) error {
	if err := validateFormat(layoutFormat); err != nil {
		return err
	}
	ctx, err := resolveContext(catalog.ContextDefault)
	if err != nil {
		return err
	}

	records, err := loadRecords(cmd)
	if err != nil {
		return err
	}
	samples := catalog.Prepare(records, ctx)
	if skipped := len(records) - len(samples); skipped > 0 {
		logger.Warn("skipped records without a valid colour", "skipped", skipped, "context", ctx)
	}

	policy, err := newPolicy(layoutMode, samples)
	if err != nil {
		return err
	}
	points := policy.Place(samples)
	logger.Debug("layout placed", "policy", policy.Name(), "points", len(points))

	if layoutFormat == formatJSON {
		return writeJSON(cmd.OutOrStdout(), points)
	}

	swatches := showSwatches(cmd, layoutPreview)
	headers := []string{"#", "Title", "Hex", "Angle", "Radius", "X", "Y"}
	if swatches {
		headers = append(headers, "Colour")
	}
	table := NewTable(headers)
	table.SetColumnMaxWidth(1, 40)
	table.AlignRight(0, 3, 4, 5, 6)
	for _, p := range points {
		row := []string{
			strconv.Itoa(p.Sample.Index),
			truncate(p.Sample.Record.Title, 80),
			p.Sample.Hex,
			fmt.Sprintf("%.1f", p.AngleDeg),
			fmt.Sprintf("%.2f", p.Radius),
			fmt.Sprintf("%.2f", p.X),
			fmt.Sprintf("%.2f", p.Y),
		}
		if swatches {
			row = append(row, colour.ColourPreview(p.Sample.RGB, 6))
		}
		table.AddRow(row)
	}
	fmt.Fprint(cmd.OutOrStdout(), table.Render())
	return nil
}
