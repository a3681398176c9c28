package parser

import (
	"strings"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
)

// YearValue is one (year header, raw value) observation of a row.
type YearValue struct {
	Year  string
	Value string
}

// Resolution is the category/year interpretation of one relevant row.
type Resolution struct {
	// HasNumeric is set when any field value is numeric.
	HasNumeric bool
	// HasYear is set when a numeric field sits under a year column.
	HasYear bool
	// Category is the row label; empty unless the row qualifies.
	Category string
	// Years holds the year-column observations in column order. A repeated
	// year header keeps its first position and its last value.
	Years []YearValue
}

// Qualifies reports whether the row yields emission records.
func (r Resolution) Qualifies() bool {
	return r.HasNumeric && r.HasYear
}

// ResolveRow decides whether a row carries numeric values under year columns
// and, if so, what its category label and year observations are.
//
// fallback is used as the category unless the first field has no column
// header, in which case that field's value labels the row.
func ResolveRow(fields []models.Field, fallback string) Resolution {
	var res Resolution

	// Detection: scan until a numeric value under a year column turns up.
	for _, f := range fields {
		if !IsNumeric(f.Value) {
			continue
		}
		res.HasNumeric = true
		if IsYearColumn(f.Name) {
			res.HasYear = true
			break
		}
	}

	if !res.Qualifies() {
		return res
	}

	// Extraction: collect every year column and the label, if any.
	res.Category = fallback
	index := make(map[string]int)
	for i, f := range fields {
		switch {
		case IsYearColumn(f.Name):
			if pos, ok := index[f.Name]; ok {
				res.Years[pos].Value = f.Value
				continue
			}
			index[f.Name] = len(res.Years)
			res.Years = append(res.Years, YearValue{Year: f.Name, Value: f.Value})
		case i == 0 && !f.HasHeader():
			res.Category = strings.ReplaceAll(f.Value, "\n", " ")
		}
	}

	return res
}
