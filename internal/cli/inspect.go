package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colorsful/colorsful/internal/colour"
	"github.com/colorsful/colorsful/internal/gridsort"
)

var (
	// Inspect command flags
	inspectFormat  string
	inspectPreview bool
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <hex>...",
	Short: "Show how colours are seen by the layout engine",
	Long: `Print the RGB, HSL and LAB coordinates of each colour together with its
vibrancy, grid bucket and saturation band. From the second colour on, the
weighted HSL and LAB distances to the previous colour are shown too.

Examples:
  colorsful inspect "#ff6600" 336699
  colorsful inspect --preview ff0000 00ff00 0000ff`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", formatTable, "output format (table, json)")
	inspectCmd.Flags().BoolVar(&inspectPreview, "preview", false, "show colour swatches in terminal")
}

type inspection struct {
	Hex      string     `json:"hex"`
	RGB      colour.RGB `json:"rgb"`
	HSL      colour.HSL `json:"hsl"`
	Lab      colour.Lab `json:"lab"`
	Vibrancy float64    `json:"vibrancy"`
	Bucket   string     `json:"bucket"`
	Band     string     `json:"band"`

	// Distances to the previous colour; nil for the first.
	HSLDistance *float64 `json:"hslDistance,omitempty"`
	LabDistance *float64 `json:"labDistance,omitempty"`
}

// compareTo fills in the distances from prev.
func (in *inspection) compareTo(prev inspection) {
	hsl := colour.WeightedHSLDistance(prev.HSL, in.HSL)
	lab := colour.LabDistance(prev.Lab, in.Lab)
	in.HSLDistance, in.LabDistance = &hsl, &lab
}

func formatDistance(d *float64, prec int) string {
	if d == nil {
		return "-"
	}
	return fmt.Sprintf("%.*f", prec, *d)
}

func inspectColour(s string) (inspection, error) {
	rgb, ok := colour.ParseHex(s)
	if !ok {
		return inspection{}, fmt.Errorf("invalid colour %q: expected six hex digits", s)
	}
	hsl := colour.RGBToHSL(rgb)

	buckets := gridsort.DefaultBuckets()
	bucket := "other"
	if b := gridsort.BucketOf(buckets, hsl.H); b < len(buckets) {
		bucket = buckets[b].Name
	}

	return inspection{
		Hex:      rgb.Hex(),
		RGB:      rgb,
		HSL:      hsl,
		Lab:      colour.RGBToLab(rgb),
		Vibrancy: colour.Vibrancy(hsl),
		Bucket:   bucket,
		Band:     gridsort.BandOf(hsl.S).String(),
	}, nil
}

// runInspect executes the inspect command.
func runInspect(cmd *cobra.Command, args []string) error {
	if err := validateFormat(inspectFormat); err != nil {
		return err
	}

	results := make([]inspection, 0, len(args))
	for _, arg := range args {
		in, err := inspectColour(arg)
		if err != nil {
			return err
		}
		if len(results) > 0 {
			in.compareTo(results[len(results)-1])
		}
		results = append(results, in)
	}

	if inspectFormat == formatJSON {
		return writeJSON(cmd.OutOrStdout(), results)
	}

	swatches := showSwatches(cmd, inspectPreview)
	headers := []string{"Hex", "RGB", "HSL", "LAB", "Vibrancy", "Bucket", "Band", "dHSL", "dLAB"}
	if swatches {
		headers = append(headers, "Colour")
	}
	table := NewTable(headers)
	table.AlignRight(4, 7, 8)
	for _, in := range results {
		row := []string{
			in.Hex,
			in.RGB.String(),
			in.HSL.String(),
			in.Lab.String(),
			fmt.Sprintf("%.1f", in.Vibrancy),
			in.Bucket,
			in.Band,
			formatDistance(in.HSLDistance, 3),
			formatDistance(in.LabDistance, 1),
		}
		if swatches {
			row = append(row, colour.ColourPreviewWithText(in.RGB, in.Hex, 9))
		}
		table.AddRow(row)
	}
	fmt.Fprint(cmd.OutOrStdout(), table.Render())
	return nil
}
