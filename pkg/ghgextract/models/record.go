package models

// EmissionRecord is a single extracted emissions observation.
type EmissionRecord struct {
	// Sector is the industry sector, taken from the report's directory.
	Sector string `json:"sector"`
	// Company is the reporting company, taken from the report's file name.
	Company string `json:"company"`
	// Category is the row label, or the matched keywords when no label exists.
	Category string `json:"category"`
	// Year is the literal year header text, e.g. "2019" or "FY 20".
	Year string `json:"year"`
	// Value is the raw cell text with newlines replaced by spaces.
	Value string `json:"value"`
	// Unit is the unit declared in the table header, "N/A" if none, or empty
	// when unit extraction is disabled.
	Unit string `json:"unit,omitempty"`
}
