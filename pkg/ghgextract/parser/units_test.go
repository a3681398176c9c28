package parser

import "testing"

func TestExtractUnit(t *testing.T) {
	tests := []struct {
		header   string
		unit     string
		expected bool
	}{
		{"Metric Tons CO2e", "Metric Tons CO2e", true},
		{"MTCO2e", "MTCO2e", true},
		{"Percent", "", false},
		{"Emissions (metric tonnes CO2e)", "metric tonnes CO2e)", true},
		{"2019 (mtCO2e)", "mtCO2e)", true},
		{"MTCO2e or metric tons", "metric tons", true},
		{"", "", false},
	}

	for _, tt := range tests {
		unit, ok := ExtractUnit(tt.header)
		if unit != tt.unit || ok != tt.expected {
			t.Errorf("ExtractUnit(%q) = (%q, %v), expected (%q, %v)",
				tt.header, unit, ok, tt.unit, tt.expected)
		}
	}
}

func TestExtractUnitNonASCIIPrefix(t *testing.T) {
	unit, ok := ExtractUnit("Émissions – Metric t")
	if !ok || unit != "Metric t" {
		t.Errorf("ExtractUnit() = (%q, %v), expected (%q, true)", unit, ok, "Metric t")
	}
}

func TestTableUnit(t *testing.T) {
	tests := []struct {
		name     string
		columns  []string
		expected string
	}{
		{"no columns", nil, DefaultUnit},
		{"no marker", []string{"Category", "2018", "2019"}, DefaultUnit},
		{"first wins", []string{"Category", "2019 (Metric tons)", "Unit: MTCO2e"}, "Metric tons)"},
		{"later column", []string{"", "2019", "MTCO2e"}, "MTCO2e"},
	}

	for _, tt := range tests {
		result := TableUnit(tt.columns)
		if result != tt.expected {
			t.Errorf("%s: TableUnit(%q) = %q, expected %q", tt.name, tt.columns, result, tt.expected)
		}
	}
}
