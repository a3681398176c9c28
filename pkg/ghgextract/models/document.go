package models

// TextSegment is a half-open [Start, End) byte range into Document.Text.
type TextSegment struct {
	Start int `json:"start_index"`
	End   int `json:"end_index"`
}

// CellLayout is a table cell as reported by the table-detection service.
type CellLayout struct {
	// Segments locate the cell's text inside the document text, in order.
	Segments []TextSegment `json:"segments,omitempty"`
}

// RowLayout is an ordered sequence of cell layouts.
type RowLayout struct {
	Cells []CellLayout `json:"cells,omitempty"`
}

// TableLayout is a detected table before its cell text has been resolved.
type TableLayout struct {
	// HeaderRows holds every detected header row. Only row 0 is consulted.
	HeaderRows []RowLayout `json:"header_rows,omitempty"`
	// BodyRows holds the data rows.
	BodyRows []RowLayout `json:"body_rows,omitempty"`
}

// Page is one page of a processed document.
type Page struct {
	// Number is the 1-based page number.
	Number int `json:"page"`
	// Tables lists the tables detected on the page.
	Tables []TableLayout `json:"tables,omitempty"`
}

// Document is the output of a table-detection backend: the full extracted
// text plus per-page table layouts that point into it.
type Document struct {
	// Text is the full document text that segments index into.
	Text string `json:"text"`
	// Pages lists the pages in order.
	Pages []Page `json:"pages"`
}

// TableCount returns the number of tables over all pages.
func (d *Document) TableCount() int {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Tables)
	}
	return n
}
