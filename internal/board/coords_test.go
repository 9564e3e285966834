package board

import (
	"errors"
	"testing"
)

func TestRowLabelFormat(t *testing.T) {
	tests := []struct {
		row      int
		expected string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := formatRowLabel(tt.row); got != tt.expected {
				t.Errorf("formatRowLabel(%d) = %q, want %q", tt.row, got, tt.expected)
			}
		})
	}
}

func TestRowLabelParse(t *testing.T) {
	tests := []struct {
		label    string
		expected int
	}{
		{"A", 0},
		{"B", 1},
		{"Z", 25},
		{"AA", 26},
		{"ab", 27},
		{"ZZ", 701},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := parseRowLabel(tt.label)
			if err != nil {
				t.Fatalf("parseRowLabel(%q) error: %v", tt.label, err)
			}
			if got != tt.expected {
				t.Errorf("parseRowLabel(%q) = %d, want %d", tt.label, got, tt.expected)
			}
		})
	}
}

func TestRowLabelRoundTrip(t *testing.T) {
	for row := 0; row < 1000; row++ {
		got, err := parseRowLabel(formatRowLabel(row))
		if err != nil {
			t.Fatalf("round trip of row %d failed: %v", row, err)
		}
		if got != row {
			t.Fatalf("round trip of row %d = %d", row, got)
		}
	}
}

func TestParseCoords(t *testing.T) {
	tests := []struct {
		text     string
		expected Coords
	}{
		{"A:1", Coords{Row: 0, Col: 0}},
		{"B:1", Coords{Row: 1, Col: 0}},
		{"B:51", Coords{Row: 1, Col: 50}},
		{"AA:26", Coords{Row: 26, Col: 25}},
		{"d:3", Coords{Row: 3, Col: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseCoords(tt.text)
			if err != nil {
				t.Fatalf("ParseCoords(%q) error: %v", tt.text, err)
			}
			if got != tt.expected {
				t.Errorf("ParseCoords(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestParseCoordsRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no colon", "B1"},
		{"space separator", "B 1"},
		{"letters only", "B"},
		{"empty", ""},
		{"empty row", ":1"},
		{"empty column", "B:"},
		{"column zero", "B:0"},
		{"non-numeric column", "B:x"},
		{"digit in row", "B2:1"},
		{"trailing junk", "B:1x"},
		{"negative column", "B:-1"},
		{"punctuation row", " / :1"},
		{"row label overflows", "ZZZZZZZZZZZZZZ:1"},
		{"column overflows", "B:99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCoords(tt.text); !errors.Is(err, ErrParse) {
				t.Errorf("ParseCoords(%q) error = %v, want ErrParse", tt.text, err)
			}
		})
	}
}

func TestCoordsString(t *testing.T) {
	tests := []struct {
		coords   Coords
		expected string
	}{
		{Coords{Row: 0, Col: 0}, "A:1"},
		{Coords{Row: 1, Col: 50}, "B:51"},
		{Coords{Row: 26, Col: 25}, "AA:26"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.coords.String(); got != tt.expected {
				t.Errorf("%v.String() = %q, want %q", tt.coords, got, tt.expected)
			}
		})
	}
}

func TestCoordsRoundTrip(t *testing.T) {
	for row := 0; row < 60; row++ {
		for col := 0; col < 60; col++ {
			c := NewCoords(row, col)
			got, err := ParseCoords(c.String())
			if err != nil {
				t.Fatalf("round trip of %v failed: %v", c, err)
			}
			if got != c {
				t.Fatalf("round trip of %v = %v", c, got)
			}
		}
	}
}
