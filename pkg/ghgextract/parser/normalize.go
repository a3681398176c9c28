package parser

import (
	"strings"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
)

// Normalize flattens a qualifying row resolution into one emission record per
// year. Values are emitted as raw text; parsing them is left to consumers.
func Normalize(src models.Source, res Resolution, unit string) []models.EmissionRecord {
	if !res.Qualifies() {
		return nil
	}

	records := make([]models.EmissionRecord, 0, len(res.Years))
	for _, yv := range res.Years {
		records = append(records, models.EmissionRecord{
			Sector:   src.Sector,
			Company:  src.Company,
			Category: res.Category,
			Year:     yv.Year,
			Value:    strings.ReplaceAll(yv.Value, "\n", " "),
			Unit:     unit,
		})
	}
	return records
}
