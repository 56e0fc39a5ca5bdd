package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/gridtable/internal/core"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
)

// writeTable prints an optional title followed by the rendered table.
func writeTable(w io.Writer, title string, t *core.Table) error {
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		logger.Debug("output is not a terminal, escape sequences are written as-is")
	}

	shape := t.Shape()
	logger.Debug("rendering table",
		"rows", shape.Rows,
		"cols", shape.Cols,
		"cell_width", t.InnerWidth(),
		"cell_height", t.InnerHeight(),
	)

	if title != "" {
		if _, err := io.WriteString(w, titleStyle.Render(title)+"\n"); err != nil {
			return err
		}
	}
	return t.Fprint(w)
}
