// Package output writes emission records in the line formats consumed by
// downstream tooling.
package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
)

var fieldSanitizer = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

// FormatRecord renders a record as one tab-separated line without the
// trailing newline: sector, company, category, year, value and, when
// includeUnit is set, unit. Tabs and newlines inside fields become spaces.
func FormatRecord(r models.EmissionRecord, includeUnit bool) string {
	fields := []string{r.Sector, r.Company, r.Category, r.Year, r.Value}
	if includeUnit {
		fields = append(fields, r.Unit)
	}
	for i, f := range fields {
		fields[i] = fieldSanitizer.Replace(f)
	}
	return strings.Join(fields, "\t")
}

// TSVWriter streams records as tab-separated lines.
type TSVWriter struct {
	w           *bufio.Writer
	includeUnit bool
}

// NewTSVWriter creates a writer emitting five columns, or six with the unit.
func NewTSVWriter(w io.Writer, includeUnit bool) *TSVWriter {
	return &TSVWriter{w: bufio.NewWriter(w), includeUnit: includeUnit}
}

// Write writes one record line.
func (t *TSVWriter) Write(r models.EmissionRecord) error {
	if _, err := t.w.WriteString(FormatRecord(r, t.includeUnit)); err != nil {
		return err
	}
	return t.w.WriteByte('\n')
}

// WriteAll writes the records and flushes.
func (t *TSVWriter) WriteAll(records []models.EmissionRecord) error {
	for _, r := range records {
		if err := t.Write(r); err != nil {
			return err
		}
	}
	return t.Flush()
}

// Flush writes any buffered data to the underlying writer.
func (t *TSVWriter) Flush() error {
	return t.w.Flush()
}
