package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridtable/internal/config"
	"github.com/vovakirdan/gridtable/internal/core"
	"github.com/vovakirdan/gridtable/internal/registry"
)

var (
	flagRows         int
	flagCols         int
	flagTupleSize    int
	flagLow          int
	flagHigh         int
	flagRandomColors bool
	flagPaint        []string
)

var demoCmd = &cobra.Command{
	Use:   "demo [source]",
	Short: "Render a demonstration grid",
	Long: `Builds a grid from a registered source and prints it.

Settings come from the config file (see --config) and may be overridden
by flags. --paint replaces the config's paint list and may be repeated.

Examples:
  gridtable demo
  gridtable demo arrows
  gridtable demo random --rows 2 --cols 5 --tuple-size 3
  gridtable demo random --random-colors --seed 42
  gridtable demo mixed --paint 0,0,red --paint 2,3,green`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&flagRows, "rows", 0, "Number of rows (random source)")
	demoCmd.Flags().IntVar(&flagCols, "cols", 0, "Number of columns (random source)")
	demoCmd.Flags().IntVar(&flagTupleSize, "tuple-size", 0, "Values per cell (random source)")
	demoCmd.Flags().IntVar(&flagLow, "low", 0, "Smallest random value, inclusive")
	demoCmd.Flags().IntVar(&flagHigh, "high", 0, "Largest random value, exclusive")
	demoCmd.Flags().BoolVar(&flagRandomColors, "random-colors", false, "Give every cell a random color")
	demoCmd.Flags().StringArrayVar(&flagPaint, "paint", nil, "Color one cell: row,col,color")
}

func runDemo(cmd *cobra.Command, args []string) {
	sourceID := "random"
	if len(args) > 0 {
		sourceID = args[0]
	}

	// Check if source exists
	if !registry.Exists(sourceID) {
		logger.Error("unknown source", "source", sourceID)
		fail("run 'gridtable list' to see available sources")
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("cannot load config: %v", err)
	}

	demo, err := applyDemoFlags(cmd, cfg.Demo)
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("demo settings", "source", sourceID, "rows", demo.Rows, "cols", demo.Cols,
		"tuple_size", demo.TupleSize, "seed", demo.Seed, "paint", len(demo.Paint))

	t, err := registry.Build(sourceID, demo)
	if err != nil {
		fail("cannot build %s: %v", sourceID, err)
	}

	title, _ := registry.Title(sourceID) // registered, checked above
	if err := writeTable(cmd.OutOrStdout(), title, t); err != nil {
		fail("cannot write table: %v", err)
	}
}

// applyDemoFlags overlays explicitly set flags on the configured settings.
func applyDemoFlags(cmd *cobra.Command, demo config.Demo) (config.Demo, error) {
	flags := cmd.Flags()
	if flags.Changed("rows") {
		demo.Rows = flagRows
	}
	if flags.Changed("cols") {
		demo.Cols = flagCols
	}
	if flags.Changed("tuple-size") {
		demo.TupleSize = flagTupleSize
	}
	if flags.Changed("low") {
		demo.Low = flagLow
	}
	if flags.Changed("high") {
		demo.High = flagHigh
	}
	if flags.Changed("random-colors") {
		demo.RandomColors = flagRandomColors
	}
	if flags.Changed("seed") {
		demo.Seed = flagSeed
	}

	if flags.Changed("paint") {
		demo.Paint = nil
		for _, value := range flagPaint {
			p, err := parsePaint(value)
			if err != nil {
				return demo, err
			}
			demo.Paint = append(demo.Paint, p)
		}
	}

	if err := demo.Validate(); err != nil {
		return demo, err
	}
	return demo, nil
}

// parsePaint parses a "row,col,color" flag value.
func parsePaint(value string) (config.Paint, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return config.Paint{}, fmt.Errorf("invalid --paint %q: want row,col,color", value)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return config.Paint{}, fmt.Errorf("invalid --paint %q: bad row: %w", value, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return config.Paint{}, fmt.Errorf("invalid --paint %q: bad column: %w", value, err)
	}

	color := strings.TrimSpace(parts[2])
	if _, ok := core.ParseColor(color); !ok {
		return config.Paint{}, fmt.Errorf("invalid --paint %q: unknown color %q", value, color)
	}

	return config.Paint{Row: row, Col: col, Color: color}, nil
}
