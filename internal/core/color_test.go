package core

import "testing"

func TestColorSequence(t *testing.T) {
	tests := []struct {
		color    Color
		expected string
	}{
		{ColorRed, "\033[31m"},
		{ColorBlue, "\033[34m"},
		{ColorGreen, "\033[32m"},
		{ColorYellow, "\033[33m"},
		{ColorDarkYellow, "\033[93m"},
		{ColorMagenta, "\033[35m"},
		{ColorBoldGrey, "\033[1;30m"},
		{ColorWhite, "\033[0m"},
		{ColorDefault, "\033[0m"},
		{Color(200), "\033[0m"}, // outside the enumeration
	}

	for _, tc := range tests {
		if got := tc.color.Sequence(); got != tc.expected {
			t.Errorf("%v.Sequence() = %q, expected %q", tc.color, got, tc.expected)
		}
	}

	if ColorHeader.Sequence() != ColorBoldGrey.Sequence() {
		t.Error("header attribute should be bold grey")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected Color
		ok       bool
	}{
		{"red", ColorRed, true},
		{"RED", ColorRed, true},
		{"dark_yellow", ColorDarkYellow, true},
		{"Dark-Yellow", ColorDarkYellow, true},
		{"bold_grey", ColorBoldGrey, true},
		{"grey", ColorBoldGrey, true},
		{"white", ColorWhite, true},
		{"default", ColorDefault, true},
		{"", ColorDefault, true},
		{"purple", ColorDefault, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseColor(tc.input)
			if got != tc.expected || ok != tc.ok {
				t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)",
					tc.input, got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestAllColorsRoundTrip(t *testing.T) {
	all := AllColors()
	if len(all) != 9 {
		t.Fatalf("AllColors() returned %d colors, expected 9", len(all))
	}
	for _, c := range all {
		parsed, ok := ParseColor(c.String())
		if !ok || parsed != c {
			t.Errorf("ParseColor(%q) = (%v, %v), expected %v", c.String(), parsed, ok, c)
		}
	}
}
