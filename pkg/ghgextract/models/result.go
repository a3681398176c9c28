package models

// DiagnosticKind classifies a non-fatal observation made during extraction.
type DiagnosticKind string

const (
	// DiagNoTables means a page had no detected tables.
	DiagNoTables DiagnosticKind = "no_tables"
	// DiagNoKeywords means a page had tables but no row matched a keyword.
	DiagNoKeywords DiagnosticKind = "no_keywords_in_table"
	// DiagNumericWithoutYear means a relevant row held a number but the first
	// numeric cell was not under a year column.
	DiagNumericWithoutYear DiagnosticKind = "numeric_without_year"
	// DiagNonNumericValue means a relevant row held no numeric cell at all.
	DiagNonNumericValue DiagnosticKind = "non_numeric_value"
)

// Diagnostic describes a row, table or page that produced no records.
type Diagnostic struct {
	// Kind is the diagnostic classification.
	Kind DiagnosticKind `json:"kind"`
	// Page is the 1-based page number.
	Page int `json:"page"`
	// Table is the 0-based table index within the page, -1 for page-level signals.
	Table int `json:"table"`
	// Row is the 0-based body row index, -1 for page- or table-level signals.
	Row int `json:"row"`
	// Fields is the full field list of the row, for auditing.
	Fields []Field `json:"fields,omitempty"`
}

// DocumentResult is the outcome of processing one document.
type DocumentResult struct {
	// Path is the input file path.
	Path string `json:"path"`
	// Source is the sector/company derived from Path.
	Source Source `json:"source"`
	// Records holds the extracted emission records in table order.
	Records []EmissionRecord `json:"records,omitempty"`
	// Diagnostics holds non-fatal observations.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
	// Err is set when the document could not be processed at all.
	Err error `json:"-"`
}

// Failed reports whether the document could not be processed.
func (r *DocumentResult) Failed() bool {
	return r.Err != nil
}
