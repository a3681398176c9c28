package models

// Source identifies who a document reports on.
type Source struct {
	// Sector is the industry sector name.
	Sector string `json:"sector"`
	// Company is the company name.
	Company string `json:"company"`
}
