package parser

import "strings"

// DefaultUnit is the unit reported for tables whose header declares none.
const DefaultUnit = "N/A"

// unitMarkers are checked in order against header text.
var unitMarkers = []string{"metric", "mtco"}

// ExtractUnit looks for a unit marker in header text, case-insensitively.
// On a match it returns the original text from the marker to the end.
func ExtractUnit(header string) (string, bool) {
	for _, marker := range unitMarkers {
		if idx := indexFold(header, marker); idx >= 0 {
			return header[idx:], true
		}
	}
	return "", false
}

// TableUnit returns the unit declared by the first header cell that carries
// one, scanning left to right, or DefaultUnit.
func TableUnit(columns []string) string {
	for _, col := range columns {
		if unit, ok := ExtractUnit(col); ok {
			return unit
		}
	}
	return DefaultUnit
}

// indexFold returns the byte offset of the first case-insensitive occurrence
// of an ASCII needle in s, or -1. Offsets refer to s itself so slicing the
// original text stays valid for non-ASCII input.
func indexFold(s, needle string) int {
	n := len(needle)
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], needle) {
			return i
		}
	}
	return -1
}
