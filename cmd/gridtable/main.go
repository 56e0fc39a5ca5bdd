// gridtable renders grids of values as bordered, color-tagged tables in the terminal.
//
// Usage:
//
//	gridtable render <file>   - Render a YAML grid document
//	gridtable demo [source]   - Render a demonstration grid (default: random)
//	gridtable list            - List available demo sources
//	gridtable colors          - List color attributes
//
// Global flags:
//
//	--config <path>  - Demo configuration file
//	--seed <value>   - RNG seed for reproducible demo grids
//	--verbose        - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import sources to register them
	_ "github.com/vovakirdan/gridtable/internal/samples/arrows"
	_ "github.com/vovakirdan/gridtable/internal/samples/mixed"
	_ "github.com/vovakirdan/gridtable/internal/samples/random"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "gridtable",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridtable",
	Short: "Render grids as bordered, color-tagged tables",
	Long: `gridtable prints two-dimensional grids as box-drawn tables with
row and column indices. Cells may hold several lines and carry their own
foreground color.

Available commands:
  render   - Render a YAML grid document
  demo     - Render a demonstration grid
  list     - Show all demo sources
  colors   - Show all color attributes

Examples:
  gridtable render grid.yaml
  gridtable demo
  gridtable demo arrows --paint 1,3,dark_yellow
  gridtable demo random --rows 4 --cols 6 --seed 7`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to demo config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, then time)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(colorsCmd)
}

// fail reports an error to stderr and exits.
func fail(format string, args ...any) {
	logger.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
