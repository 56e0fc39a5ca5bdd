package core

import "strings"

// Color is a foreground display attribute applied around a cell's text.
// The set is closed; every value maps to a fixed ANSI escape sequence.
type Color uint8

// Available display attributes.
const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorGreen
	ColorYellow
	ColorDarkYellow
	ColorMagenta
	ColorBoldGrey
	ColorWhite
	colorCount // Sentinel value for iteration
)

// ColorHeader is the attribute used for row and column index labels.
const ColorHeader = ColorBoldGrey

const resetSequence = "\033[0m"

var colorSequences = [colorCount]string{
	ColorDefault:    resetSequence,
	ColorRed:        "\033[31m",
	ColorBlue:       "\033[34m",
	ColorGreen:      "\033[32m",
	ColorYellow:     "\033[33m",
	ColorDarkYellow: "\033[93m",
	ColorMagenta:    "\033[35m",
	ColorBoldGrey:   "\033[1;30m",
	ColorWhite:      resetSequence,
}

var colorNames = [colorCount]string{
	ColorDefault:    "default",
	ColorRed:        "red",
	ColorBlue:       "blue",
	ColorGreen:      "green",
	ColorYellow:     "yellow",
	ColorDarkYellow: "dark_yellow",
	ColorMagenta:    "magenta",
	ColorBoldGrey:   "bold_grey",
	ColorWhite:      "white",
}

// Sequence returns the escape sequence that switches the terminal to this attribute.
// Values outside the enumeration map to the reset sequence.
func (c Color) Sequence() string {
	if c >= colorCount {
		return resetSequence
	}
	return colorSequences[c]
}

// String returns the attribute name.
func (c Color) String() string {
	if c >= colorCount {
		return "unknown"
	}
	return colorNames[c]
}

// ParseColor converts an attribute name to a Color.
// Matching ignores case and treats '-' and ' ' like '_'.
// Returns ColorDefault and false if the name is not recognized.
func ParseColor(s string) (Color, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("-", "_", " ", "_").Replace(name)
	switch name {
	case "grey", "gray", "bold_gray", "header":
		return ColorBoldGrey, true
	case "reset", "":
		return ColorDefault, true
	}
	for c := ColorDefault; c < colorCount; c++ {
		if colorNames[c] == name {
			return c, true
		}
	}
	return ColorDefault, false
}

// AllColors returns a slice of all valid attributes.
func AllColors() []Color {
	colors := make([]Color, 0, colorCount)
	for c := ColorDefault; c < colorCount; c++ {
		colors = append(colors, c)
	}
	return colors
}
