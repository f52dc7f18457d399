package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/colorsful/colorsful/internal/catalog"
	"github.com/colorsful/colorsful/internal/colour"
	"github.com/colorsful/colorsful/internal/density"
)

var (
	// Density command flags
	densityBins    int
	densityFormat  string
	densityProfile = density.DefaultProfileOptions()
)

// densityCmd represents the density command
var densityCmd = &cobra.Command{
	Use:   "density",
	Short: "Profile how the catalog's hues are distributed",
	Long: `Print the hue histogram of the catalog with, for every bin, its share
after the baseline, where the equalising warp moves the bin, and the radius
the density profile grants it.

Examples:
  # 72 bins of 5 degrees
  colorsful density -i catalog.json

  # Coarser bins and wider smoothing, as JSON
  colorsful density -i catalog.json --bins 24 --smooth 3 --format json`,
	Args: cobra.NoArgs,
	RunE: runDensity,
}

func init() {
	densityCmd.Flags().IntVar(&densityBins, "bins", density.DefaultBins, "hue histogram bins")
	densityCmd.Flags().StringVarP(&densityFormat, "format", "f", formatTable, "output format (table, json)")
	bindProfileFlags(densityCmd.Flags(), &densityProfile)
}

// densityBin is one row of the density report.
type densityBin struct {
	From      float64 `json:"from"`
	To        float64 `json:"to"`
	Count     float64 `json:"count"`
	Share     float64 `json:"share"`
	WarpFrom  float64 `json:"warpFrom"`
	WarpTo    float64 `json:"warpTo"`
	MaxRadius float64 `json:"maxRadius"`
}

type densityReport struct {
	Samples int          `json:"samples"`
	Bins    []densityBin `json:"bins"`
}

func buildDensityReport(samples []catalog.Sample, bins int, opts density.ProfileOptions) densityReport {
	hist := density.NewHistogram(catalog.Hues(samples), bins)
	shares := hist.Shares()
	warp := density.NewWarpTable(hist)
	profile := density.NewRadiusProfile(hist, opts)

	width := hist.BinWidth()
	report := densityReport{Samples: hist.Total, Bins: make([]densityBin, hist.Bins())}
	for i := range report.Bins {
		from := float64(i) * width
		report.Bins[i] = densityBin{
			From:      from,
			To:        from + width,
			Count:     hist.Counts[i],
			Share:     shares[i],
			WarpFrom:  warp.Stops[i],
			WarpTo:    warp.Stops[i+1],
			MaxRadius: profile.MaxRadius(from + width/2),
		}
	}
	return report
}

// runDensity executes the density command.
func runDensity(cmd *cobra.Command, _ []string) error {
	if err := validateFormat(densityFormat); err != nil {
		return err
	}
	if densityBins < 1 || densityBins > 360 {
		return fmt.Errorf("bins must be between 1 and 360, got %d", densityBins)
	}
	if err := densityProfile.Validate(); err != nil {
		return fmt.Errorf("invalid radius profile: %w", err)
	}
	ctx, err := resolveContext(catalog.ContextDefault)
	if err != nil {
		return err
	}

	records, err := loadRecords(cmd)
	if err != nil {
		return err
	}
	report := buildDensityReport(catalog.Prepare(records, ctx), densityBins, densityProfile)

	if densityFormat == formatJSON {
		return writeJSON(cmd.OutOrStdout(), report)
	}

	peak := 0.0
	for _, b := range report.Bins {
		peak = max(peak, b.Count)
	}

	table := NewTable([]string{"Hue", "Count", "Share", "Warped", "Radius", ""})
	table.AlignRight(1, 2, 4)
	for _, b := range report.Bins {
		table.AddRow([]string{
			fmt.Sprintf("%5.1f-%5.1f", b.From, b.To),
			strconv.FormatFloat(b.Count, 'f', 0, 64),
			fmt.Sprintf("%.4f", b.Share),
			fmt.Sprintf("%5.1f-%5.1f", b.WarpFrom, b.WarpTo),
			fmt.Sprintf("%.1f", b.MaxRadius),
			bar(b.Count, peak, 30, showSwatches(cmd, true), colour.HSLToRGB((b.From+b.To)/2, 80, 50)),
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d samples in %d bins\n\n", report.Samples, len(report.Bins))
	fmt.Fprint(cmd.OutOrStdout(), table.Render())
	return nil
}

// bar draws a horizontal bar of up to width cells, coloured when swatches is set.
func bar(value, peak float64, width int, swatches bool, c colour.RGB) string {
	if peak <= 0 || value <= 0 {
		return ""
	}
	n := max(1, int(value/peak*float64(width)+0.5))
	if swatches {
		return colour.ColourPreview(c, n)
	}
	return strings.Repeat("#", n)
}
