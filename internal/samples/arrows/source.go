// Package arrows provides a fixed demo grid of arrow glyphs.
package arrows

import (
	"github.com/vovakirdan/gridtable/internal/config"
	"github.com/vovakirdan/gridtable/internal/core"
	"github.com/vovakirdan/gridtable/internal/registry"
)

func init() {
	registry.Register("arrows", func() registry.Source { return &Source{} })
}

// Source renders a 4x4 grid of three-line arrow cells. Cell (1, 3) has an
// empty middle line and cell (3, 0) lacks its bottom line.
type Source struct{}

// ID returns the registry identifier.
func (s *Source) ID() string { return "arrows" }

// Title returns the display name.
func (s *Source) Title() string { return "Arrow Compass" }

// Build ignores the demo settings apart from paint.
func (s *Source) Build(config.Demo) (*core.Table, error) {
	arrow := core.Lines("^", "<   >", "v")
	return core.New(core.Rows(
		[]any{arrow, arrow, arrow, arrow},
		[]any{arrow, arrow, arrow, core.Lines("^", "", "v")},
		[]any{arrow, arrow, arrow, arrow},
		[]any{core.Lines("^", "<   >"), arrow, arrow, arrow},
	), nil)
}
