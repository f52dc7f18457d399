// Package cli provides the command-line interface for Colorsful.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/colorsful/colorsful/internal/version"
)

// Environment variables consulted when the matching flag is not set.
const (
	envCatalog  = "COLORSFUL_CATALOG"
	envBoundary = "COLORSFUL_BOUNDARY"
	envLogLevel = "COLORSFUL_LOG_LEVEL"
)

var (
	// Global flags
	globalVerbose   bool
	globalQuiet     bool
	globalCatalog   string
	globalBoundary  string
	globalContext   string
	globalSeedMode  string
	globalSeedValue int64

	// logger is rebuilt for every invocation in setupGlobals.
	logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "colorsful",
		Short: "Lay out a music video catalog in colour space",
		Long: `Colorsful maps a catalog of music videos onto colour space.

Each video carries a representative colour. Colorsful places the catalog on a
hue wheel or inside the logo silhouette, profiles how hues are distributed,
synthesises a smoothed nebula colour field and orders the catalog for the
grid view.

The catalog is a JSON array of records (optionally .xz, .gz or .bz2
compressed) read from a local path or an https:// URL.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: setupGlobals,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVarP(&globalQuiet, "quiet", "q", false, "suppress non-error output")
	pf.StringVarP(&globalCatalog, "catalog", "i", "", "catalog path or https:// URL (env "+envCatalog+")")
	pf.StringVar(&globalBoundary, "boundary", "", "boundary table JSON (env "+envBoundary+", default: embedded logo)")
	pf.StringVar(&globalContext, "context", "", "colour context (default, grid, home); each command has its own default")
	pf.StringVar(&globalSeedMode, "seed-mode", "fixed", "seed mode for dithering (fixed, content, manual, random)")
	pf.Int64Var(&globalSeedValue, "seed-value", 0, "seed value for manual seed mode")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(densityCmd)
	rootCmd.AddCommand(nebulaCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(inspectCmd)
}

// setupGlobals builds the logger and applies environment fallbacks.
func setupGlobals(cmd *cobra.Command, _ []string) error {
	if globalVerbose && globalQuiet {
		return fmt.Errorf("--verbose and --quiet cannot be used together")
	}

	level := hclog.Info
	if env := os.Getenv(envLogLevel); env != "" {
		level = hclog.LevelFromString(env)
		if level == hclog.NoLevel {
			return fmt.Errorf("invalid %s: %s", envLogLevel, env)
		}
	}
	if globalVerbose {
		level = hclog.Debug
	}
	if globalQuiet {
		level = hclog.Error
	}

	logger = hclog.New(&hclog.LoggerOptions{
		Name:   "colorsful",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})

	if globalCatalog == "" {
		globalCatalog = os.Getenv(envCatalog)
	}
	if globalBoundary == "" {
		globalBoundary = os.Getenv(envBoundary)
	}

	logger.Debug("configuration", "catalog", globalCatalog, "boundary", globalBoundary,
		"context", globalContext, "seed_mode", globalSeedMode)
	return nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print detailed version information including build date, commit hash, Go
version and the version of the boundary table in use.`,
	RunE: runVersion,
}

var versionFormat string

func init() {
	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", formatTable, "output format (table, json)")
}

// runVersion executes the version command.
func runVersion(cmd *cobra.Command, args []string) error {
	if err := validateFormat(versionFormat); err != nil {
		return err
	}
	table, err := loadTable()
	if err != nil {
		return err
	}

	if versionFormat == formatJSON {
		return writeJSON(cmd.OutOrStdout(), struct {
			version.Info
			Boundary string `json:"boundary"`
		}{version.GetInfo(), table.Version})
	}
	fmt.Fprintln(cmd.OutOrStdout(), version.String())
	fmt.Fprintf(cmd.OutOrStdout(), "boundary table %s\n", table.Version)
	return nil
}
