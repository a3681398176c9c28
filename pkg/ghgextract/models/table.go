package models

// Table is a resolved table: header strings plus body rows of cells.
// Only the first header row of the source layout is represented.
type Table struct {
	// Columns holds the header-cell strings, index-aligned with row cells.
	Columns []string `json:"columns"`
	// Rows holds the body rows in document order.
	Rows [][]Cell `json:"rows,omitempty"`
}

// ColumnName returns the header text for the given column index, falling back
// to NoColumnHeader when the header cell is empty or missing.
func (t Table) ColumnName(i int) string {
	if i < 0 || i >= len(t.Columns) || t.Columns[i] == "" {
		return NoColumnHeader
	}
	return t.Columns[i]
}
