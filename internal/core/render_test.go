package core

import (
	"strings"
	"testing"
)

const (
	hdr = "\033[1;30m"
	rst = "\033[0m"
	red = "\033[31m"
)

func TestInnerWidth(t *testing.T) {
	tests := []struct {
		name     string
		data     [][]Cell
		expected int
	}{
		{"single digits use floor", Rows([]any{1, 2}, []any{3, 4}), 3},
		{"empty strings use floor", Rows([]any{"", ""}), 3},
		{"longest scalar", Rows([]any{"hello", 1}), 5},
		{"longest multi element", Rows([]any{Lines("a", "abcdefg"), "abcd"}), 7},
		{"negative numbers", Rows([]any{-1234}), 5},
		{"runes count once", Rows([]any{"héllo→"}), 6},
		{"empty multi cell", Rows([]any{Multi()}), 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := New(tc.data, nil)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			if got := tbl.InnerWidth(); got != tc.expected {
				t.Errorf("InnerWidth() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestInnerHeight(t *testing.T) {
	tests := []struct {
		name     string
		data     [][]Cell
		expected int
	}{
		{"scalars only", Rows([]any{1, 2}, []any{3, 4}), 1},
		{"one multi", Rows([]any{Lines("a", "bb"), Lines("c")}), 2},
		{"longest multi wins", Rows([]any{1, Multi(1, 2, 3)}, []any{Multi(1, 2, 3, 4), 2}), 4},
		{"scalar string is not split", Rows([]any{"abcdef"}), 1},
		{"single element multi", Rows([]any{Lines("x")}), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tbl, _ := New(tc.data, nil)
			if got := tbl.InnerHeight(); got != tc.expected {
				t.Errorf("InnerHeight() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		w        int
		expected string
	}{
		{"0", 5, "  0 "},
		{"10", 5, " 10"},
		{"abc", 5, " abc"},
		{"x↓ →y", 5, "x↓ →y"},
		{"", 5, "  " + " "},
		{"4", 6, "   4  "},
		{"toolong", 5, "toolong"},
	}

	for _, tc := range tests {
		got := centerText(tc.text, tc.w)
		if got != tc.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tc.text, tc.w, got, tc.expected)
		}
		// Same input always yields the same padding
		if again := centerText(tc.text, tc.w); again != got {
			t.Errorf("centerText(%q, %d) is not stable", tc.text, tc.w)
		}
	}
}

func TestStringScalarGrid(t *testing.T) {
	tbl, err := New(Rows([]any{1, 2}, []any{3, 4}), nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	cell := func(seq, text string) string {
		return seq + "  " + text + " " + rst + " │"
	}
	expected := strings.Join([]string{
		"┌─────┬─────┬─────┐",
		"│" + hdr + "x↓ →y" + rst + "│" + cell(hdr, "0") + cell(hdr, "1"),
		"├─────┼─────┼─────┤",
		"│" + hdr + "  0 " + rst + " │" + cell(rst, "1") + cell(rst, "2"),
		"├─────┼─────┼─────┤",
		"│" + hdr + "  1 " + rst + " │" + cell(rst, "3") + cell(rst, "4"),
		"└─────┴─────┴─────┘",
		"",
	}, "\n")

	if got := tbl.String(); got != expected {
		t.Errorf("String() mismatch:\ngot:\n%q\nexpected:\n%q", got, expected)
	}
}

func TestStringMultiLineGrid(t *testing.T) {
	tbl, err := New(Rows([]any{Lines("a", "bb"), Lines("c")}), nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(tbl.String(), "\n"), "\n")
	// top, header, divider, 2 sub-rows, bottom
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), tbl.String())
	}

	first := "│" + hdr + "  0 " + rst + " │" +
		rst + "  a " + rst + " │" +
		rst + "  c " + rst + " │"
	if lines[3] != first {
		t.Errorf("first sub-row = %q, expected %q", lines[3], first)
	}

	second := "│     │" +
		rst + " bb" + rst + "  │" +
		rst + "     " + rst + "│"
	if lines[4] != second {
		t.Errorf("second sub-row = %q, expected %q", lines[4], second)
	}
}

func TestStringScalarCentering(t *testing.T) {
	// Height 3 puts the scalar and the row label on the middle sub-row
	tbl, _ := New(Rows([]any{"s", Lines("1", "2", "3")}), nil)
	lines := strings.Split(strings.TrimSuffix(tbl.String(), "\n"), "\n")

	subRows := lines[3:6]
	for k, line := range subRows {
		hasLabel := strings.Contains(line, hdr+"  0 ")
		hasScalar := strings.Contains(line, "  s ")
		if (k == 1) != hasLabel {
			t.Errorf("sub-row %d: row label present = %v", k, hasLabel)
		}
		if (k == 1) != hasScalar {
			t.Errorf("sub-row %d: scalar present = %v", k, hasScalar)
		}
	}

	// Height 2 rounds the center up to the first sub-row
	tbl, _ = New(Rows([]any{"s", Lines("1", "2")}), nil)
	lines = strings.Split(strings.TrimSuffix(tbl.String(), "\n"), "\n")
	if !strings.Contains(lines[3], "  s ") || strings.Contains(lines[4], "  s ") {
		t.Errorf("scalar should be on the first of two sub-rows:\n%s", tbl.String())
	}
}

func TestStringScalarRowsHaveOneSubRow(t *testing.T) {
	tbl, _ := New(Rows([]any{"a", "b", "c"}, []any{"d", "e", "f"}, []any{"g", "h", "i"}), nil)
	lines := strings.Split(strings.TrimSuffix(tbl.String(), "\n"), "\n")

	// top + header + 3 * (divider + 1 sub-row) + bottom
	if len(lines) != 2+3*2+1 {
		t.Errorf("expected %d lines, got %d", 2+3*2+1, len(lines))
	}
	if !strings.HasPrefix(lines[0], "┌") || !strings.HasSuffix(lines[0], "┐") {
		t.Errorf("top border = %q", lines[0])
	}
	if strings.Count(lines[0], "┬") != 3 {
		t.Errorf("top border should have a junction per column, got %q", lines[0])
	}
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "└") || strings.Count(last, "┴") != 3 {
		t.Errorf("bottom border = %q", last)
	}
}

func TestStringSetColor(t *testing.T) {
	tbl, _ := New(Rows([]any{1, 2}, []any{3, 4}), nil)
	before := tbl.String()

	if err := tbl.SetColor(0, 1, ColorRed); err != nil {
		t.Fatalf("SetColor() failed: %v", err)
	}
	after := tbl.String()

	target := rst + "  2 " + rst
	colored := red + "  2 " + rst
	if !strings.Contains(after, colored) {
		t.Fatalf("cell (0, 1) should be wrapped in red, got:\n%q", after)
	}
	if strings.Count(after, red) != 1 {
		t.Errorf("exactly one cell should be red, found %d", strings.Count(after, red))
	}
	if strings.Replace(after, colored, target, 1) != before {
		t.Error("SetColor should change only the wrapping of one cell")
	}
}

func TestStringDeterministic(t *testing.T) {
	data := Rows(
		[]any{Lines("^", "<   >", "v"), 12, "x"},
		[]any{Lines("^", ""), -7, Multi(1, 2)},
	)
	colors := [][]Color{
		{ColorRed, ColorBlue, ColorGreen},
		{ColorYellow, ColorDarkYellow, ColorMagenta},
	}

	a, _ := New(data, colors)
	b, _ := New(data, colors)
	first := a.String()
	if first != b.String() {
		t.Error("identical inputs should render identically")
	}
	if second := a.String(); second != first {
		t.Error("repeated renders should be identical")
	}
}

func TestStringOverflow(t *testing.T) {
	// Content is never truncated
	tbl, _ := New(Rows([]any{"a", "a very long value"}), nil)
	if !strings.Contains(tbl.String(), "a very long value") {
		t.Error("long values should be rendered whole")
	}
}

func TestFprint(t *testing.T) {
	tbl, _ := New(Rows([]any{1}), nil)

	var sb strings.Builder
	if err := tbl.Fprint(&sb); err != nil {
		t.Fatalf("Fprint() failed: %v", err)
	}
	if sb.String() != tbl.String() {
		t.Error("Fprint should write String()")
	}
}
