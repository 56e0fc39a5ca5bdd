package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridtable/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all demo sources",
	Long:  `Shows a list of all demo grid sources registered in gridtable.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	sources := registry.List()

	if len(sources) == 0 {
		fmt.Fprintln(out, "No demo sources available.")
		return
	}

	fmt.Fprintln(out, titleStyle.Render("Available sources:"))
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range sources {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print sources
	for _, s := range sources {
		fmt.Fprintf(out, "  %s  %s\n", idStyle.Render(fmt.Sprintf("%-*s", maxIDLen, s.ID)), s.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, hintStyle.Render("Run 'gridtable demo <id>' to render a source."))
}
