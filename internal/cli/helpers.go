package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/colorsful/colorsful/internal/boundary"
	"github.com/colorsful/colorsful/internal/catalog"
	"github.com/colorsful/colorsful/internal/seed"
)

// Output formats shared by the listing commands.
const (
	formatTable = "table"
	formatJSON  = "json"
)

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid: table, json)", format)
	}
}

// loadRecords reads the catalog named by --catalog or COLORSFUL_CATALOG.
func loadRecords(cmd *cobra.Command) ([]catalog.Record, error) {
	if globalCatalog == "" {
		return nil, fmt.Errorf("no catalog given: use --catalog or set %s", envCatalog)
	}
	records, err := catalog.Load(cmd.Context(), globalCatalog, catalog.LoadOptions{Logger: logger})
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded", "records", len(records))
	return records, nil
}

// loadTable returns the boundary table named by --boundary, or the embedded
// default.
func loadTable() (*boundary.Table, error) {
	if globalBoundary == "" {
		return boundary.Default(), nil
	}
	table, err := boundary.LoadFile(globalBoundary)
	if err != nil {
		return nil, err
	}
	logger.Debug("boundary table loaded", "path", globalBoundary, "version", table.Version)
	return table, nil
}

// resolveContext returns the --context value, or fallback when unset.
func resolveContext(fallback catalog.Context) (catalog.Context, error) {
	if globalContext == "" {
		return fallback, nil
	}
	return catalog.ParseContext(globalContext)
}

// resolveRand builds the dither generator from the seed flags.
func resolveRand(cmd *cobra.Command, records []catalog.Record) (*rand.Rand, error) {
	mode, err := seed.ParseMode(globalSeedMode)
	if err != nil {
		return nil, err
	}
	config := seed.Config{Mode: mode}
	if cmd.Flags().Changed("seed-value") {
		config.Value = &globalSeedValue
	}

	value, err := seed.Calculate(records, config)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate seed: %w", err)
	}
	logger.Debug("seed resolved", "mode", mode, "seed", value)
	return seed.NewRand(value), nil
}

// showSwatches reports whether colour swatches should be printed: only when
// asked for and stdout is a terminal.
func showSwatches(cmd *cobra.Command, requested bool) bool {
	if !requested {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

// writeJSON encodes v with indentation.
func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeJSONFile encodes v to path, or to stdout when path is "-".
func writeJSONFile(cmd *cobra.Command, path string, v any) error {
	if path == "-" {
		return writeJSON(cmd.OutOrStdout(), v)
	}
	f, err := os.Create(path) // #nosec G304 -- user-specified output path
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := writeJSON(f, v); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func truncate(s string, width int) string {
	if width <= 3 || len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
