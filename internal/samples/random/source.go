// Package random provides a demo source filled with random integer tuples.
package random

import (
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/gridtable/internal/config"
	"github.com/vovakirdan/gridtable/internal/core"
	"github.com/vovakirdan/gridtable/internal/registry"
)

func init() {
	registry.Register("random", func() registry.Source { return &Source{} })
}

// Source generates Rows x Cols multi-line cells of TupleSize random integers.
type Source struct{}

// ID returns the registry identifier.
func (s *Source) ID() string { return "random" }

// Title returns the display name.
func (s *Source) Title() string { return "Random Tuples" }

// Build generates the grid. The same non-zero seed always yields the same table.
func (s *Source) Build(cfg config.Demo) (*core.Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := newRNG(cfg.Seed)
	data := Matrix(rng, cfg.Rows, cfg.Cols, cfg.TupleSize, cfg.Low, cfg.High)

	var colors [][]core.Color
	if cfg.RandomColors {
		colors = ColorMatrix(rng, cfg.Rows, cfg.Cols)
	}
	return core.New(data, colors)
}

func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32))
}

// Matrix returns a rows x cols grid of multi-line cells, each holding size
// integers drawn from [low, high).
func Matrix(rng *rand.Rand, rows, cols, size, low, high int) [][]core.Cell {
	data := make([][]core.Cell, rows)
	for i := range data {
		data[i] = make([]core.Cell, cols)
		for j := range data[i] {
			values := make([]any, size)
			for k := range values {
				values[k] = low + rng.IntN(high-low)
			}
			data[i][j] = core.Multi(values...)
		}
	}
	return data
}

// ColorMatrix returns a rows x cols grid of colors drawn uniformly from AllColors.
func ColorMatrix(rng *rand.Rand, rows, cols int) [][]core.Color {
	all := core.AllColors()
	colors := make([][]core.Color, rows)
	for i := range colors {
		colors[i] = make([]core.Color, cols)
		for j := range colors[i] {
			colors[i][j] = all[rng.IntN(len(all))]
		}
	}
	return colors
}
