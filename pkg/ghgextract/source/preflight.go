package source

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// DefaultMaxPages is the page limit of synchronous Document AI processing.
const DefaultMaxPages = 15

// Preflight validates a PDF before it is sent to a backend.
type Preflight struct {
	// MaxPages rejects documents with more pages. Zero disables the limit.
	MaxPages int
}

// Check validates data as a PDF and returns its page count.
func (p Preflight) Check(data []byte) (int, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	if ctx.PageCount == 0 {
		return 0, ErrNoPages
	}
	if p.MaxPages > 0 && ctx.PageCount > p.MaxPages {
		return ctx.PageCount, fmt.Errorf("%w: %d pages (limit %d)", ErrTooManyPages, ctx.PageCount, p.MaxPages)
	}
	return ctx.PageCount, nil
}
