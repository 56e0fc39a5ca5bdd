package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridtable/internal/core"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List color attributes",
	Long: `Shows every color attribute accepted in grid documents and --paint flags,
with a sample rendered in that attribute.`,
	Run: runColors,
}

func runColors(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, titleStyle.Render("Color attributes:"))
	fmt.Fprintln(out)

	for _, c := range core.AllColors() {
		note := ""
		switch c {
		case core.ColorHeader:
			note = hintStyle.Render(" (index headers)")
		case core.ColorDefault:
			note = hintStyle.Render(" (reset)")
		}
		fmt.Fprintf(out, "  %-12s %s%s%s%s\n", c, c.Sequence(), "sample", core.ColorDefault.Sequence(), note)
	}
}
