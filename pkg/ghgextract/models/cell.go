// Package models defines data structures for GHG emissions table extraction.
package models

// NoColumnHeader is the field name given to a cell whose column has no header
// text, or whose position lies beyond the end of the header row.
const NoColumnHeader = "NO_COLUMN_HEADER"

// NoCategory is the category used when a row carries no explicit label and
// keyword composition is disabled.
const NoCategory = "NO_CATEGORY"

// Cell represents resolved cell text and the column it came from.
type Cell struct {
	// Text is the trimmed cell text.
	Text string `json:"text"`
	// Column is the 0-based position of the cell within its row.
	Column int `json:"column"`
}

// Field pairs a non-empty cell value with the header text of its column.
type Field struct {
	// Name is the header text for the column, or NoColumnHeader.
	Name string `json:"field_name"`
	// Value is the resolved cell text. Never empty.
	Value string `json:"field_value"`
}

// HasHeader reports whether the field's column carries header text.
func (f Field) HasHeader() bool {
	return f.Name != NoColumnHeader
}
