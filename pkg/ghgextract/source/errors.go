// Package source loads documents from table-detection backends into the
// layout model consumed by extraction.
package source

import "errors"

var (
	// ErrInvalidPDF indicates the input is not a readable PDF.
	ErrInvalidPDF = errors.New("invalid PDF")
	// ErrTooManyPages indicates a PDF exceeds the online processing page limit.
	ErrTooManyPages = errors.New("too many pages")
	// ErrMissingProcessor indicates the Document AI project or processor ID is unset.
	ErrMissingProcessor = errors.New("missing Document AI project or processor ID")
	// ErrBackendRejected indicates the backend refused the document as invalid.
	ErrBackendRejected = errors.New("document rejected by backend")
	// ErrNoPages indicates a document has no pages.
	ErrNoPages = errors.New("document has no pages")
)
