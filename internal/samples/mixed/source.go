// Package mixed provides a demo grid mixing scalar and multi-line cells.
package mixed

import (
	"github.com/vovakirdan/gridtable/internal/config"
	"github.com/vovakirdan/gridtable/internal/core"
	"github.com/vovakirdan/gridtable/internal/registry"
)

func init() {
	registry.Register("mixed", func() registry.Source { return &Source{} })
}

// Source shows how scalars are centered vertically next to taller cells.
type Source struct{}

// ID returns the registry identifier.
func (s *Source) ID() string { return "mixed" }

// Title returns the display name.
func (s *Source) Title() string { return "Mixed Cells" }

// Build ignores the demo settings apart from paint.
func (s *Source) Build(config.Demo) (*core.Table, error) {
	data := core.Rows(
		[]any{"id", core.Lines("first", "name"), core.Lines("x", "y", "z"), 3.14},
		[]any{1, core.Lines("ada"), core.Multi(0, 1, 2), true},
		[]any{2, core.Lines("grace", "hopper"), core.Multi(), nil},
	)
	colors := [][]core.Color{
		{core.ColorBlue, core.ColorBlue, core.ColorBlue, core.ColorBlue},
		{core.ColorDefault, core.ColorGreen, core.ColorYellow, core.ColorMagenta},
		{core.ColorDefault, core.ColorGreen, core.ColorYellow, core.ColorRed},
	}
	return core.New(data, colors)
}
