package core

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Layout constants
const (
	minInnerWidth = 3       // Keeps headers and borders legible for empty content
	cellMargin    = 2       // One blank column on each side of the content
	axisLabel     = "x↓ →y" // Top-left header cell
)

// InnerWidth returns the widest textual element in the grid, at least 3.
// Multi-line cells contribute each of their elements.
func (t *Table) InnerWidth() int {
	width := 0
	for _, row := range t.data {
		for _, cell := range row {
			if cell.IsMulti() {
				for _, line := range cell.Lines() {
					width = max(width, textLen(line))
				}
				continue
			}
			width = max(width, textLen(cell.Text()))
		}
	}
	return max(minInnerWidth, width)
}

// InnerHeight returns the element count of the longest multi-line cell, at least 1.
// Scalars always count as height 1.
func (t *Table) InnerHeight() int {
	height := 1
	for _, row := range t.data {
		for _, cell := range row {
			if cell.IsMulti() {
				height = max(height, cell.Len())
			}
		}
	}
	return height
}

// String renders the table with index headers, box-drawing borders and
// per-cell color escapes. Every line, including the last, ends in a newline.
func (t *Table) String() string {
	w := t.InnerWidth() + cellMargin
	h := t.InnerHeight()
	center := (h - 1) / 2
	header := ColorHeader.Sequence()

	divider := strings.Repeat(strings.Repeat("─", w)+"┼", t.shape.Cols) + strings.Repeat("─", w)

	var sb strings.Builder

	// Heading row
	sb.WriteString("┌" + strings.ReplaceAll(divider, "┼", "┬") + "┐\n")
	sb.WriteString("│")
	writeCell(&sb, header, centerText(axisLabel, w), w)
	sb.WriteString("│")
	for j := 0; j < t.shape.Cols; j++ {
		writeCell(&sb, header, centerText(strconv.Itoa(j), w), w)
		sb.WriteString("│")
	}
	sb.WriteString("\n")

	// Content rows
	blank := strings.Repeat(" ", w)
	for i, row := range t.data {
		sb.WriteString("├" + divider + "┤\n")

		for sub := 0; sub < h; sub++ {
			sb.WriteString("│")
			if sub == center {
				writeCell(&sb, header, centerText(strconv.Itoa(i), w), w)
			} else {
				sb.WriteString(blank)
			}

			sb.WriteString("│")
			for j, cell := range row {
				writeCell(&sb, t.colors[i][j].Sequence(), cellText(cell, sub, center, w), w)
				sb.WriteString("│")
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("└" + strings.ReplaceAll(divider, "┼", "┴") + "┘\n")

	return sb.String()
}

// cellText returns the padded content of a cell on the given sub-row.
func cellText(cell Cell, sub, center, w int) string {
	if cell.IsMulti() {
		if line, ok := cell.line(sub); ok {
			return centerText(line, w)
		}
		return strings.Repeat(" ", w)
	}
	if sub == center {
		return centerText(cell.Text(), w)
	}
	return strings.Repeat(" ", w)
}

// writeCell wraps text in the given escape sequence and the reset sequence,
// then pads with spaces up to width w.
func writeCell(sb *strings.Builder, seq, text string, w int) {
	sb.WriteString(seq)
	sb.WriteString(text)
	sb.WriteString(ColorDefault.Sequence())
	sb.WriteString(strings.Repeat(" ", max(0, w-textLen(text))))
}

// centerText pads text so it sits in the middle of a w-column field.
// Odd remainders favor the left side; the right pad is one column shorter than
// the left, and writeCell fills whatever is left after the reset sequence.
func centerText(text string, w int) string {
	left := w/2 - textLen(text)/2
	right := left - 1
	return strings.Repeat(" ", max(0, left)) + text + strings.Repeat(" ", max(0, right))
}

// textLen counts characters; every character is assumed to be one column wide.
func textLen(s string) int {
	return utf8.RuneCountInString(s)
}
