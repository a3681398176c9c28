// Package parser implements the table-semantics heuristics that turn resolved
// table cells into GHG emission records.
package parser

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// yearPrefixes lists every header prefix that marks a reporting-year column.
// The 2015-2021 window is fixed.
var yearPrefixes = buildYearPrefixes(2015, 2021)

func buildYearPrefixes(first, last int) []string {
	var full, fy4, fy2, fySpace4, fySpace2 []string
	for y := first; y <= last; y++ {
		short := y % 100
		full = append(full, strconv.Itoa(y))
		fy4 = append(fy4, "FY"+strconv.Itoa(y))
		fy2 = append(fy2, "FY"+strconv.Itoa(short))
		fySpace4 = append(fySpace4, "FY "+strconv.Itoa(y))
		fySpace2 = append(fySpace2, "FY "+strconv.Itoa(short))
	}

	prefixes := make([]string, 0, 5*(last-first+1))
	prefixes = append(prefixes, full...)
	prefixes = append(prefixes, fy4...)
	prefixes = append(prefixes, fy2...)
	prefixes = append(prefixes, fySpace4...)
	prefixes = append(prefixes, fySpace2...)
	return prefixes
}

// IsYearColumn reports whether a header labels a reporting-year column.
// Matching is prefix-based and case-sensitive, so "2019 (restated)" and
// "FY 20 Target" qualify while "fy2019" and "2014" do not.
func IsYearColumn(header string) bool {
	for _, p := range yearPrefixes {
		if strings.HasPrefix(header, p) {
			return true
		}
	}
	return false
}

// cleanNumeric strips thousands separators, spaces and trailing footnote
// markers from s.
func cleanNumeric(s string) string {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimSpace(s)
	return strings.TrimRight(s, "*")
}

// ParseNumber parses s as a floating-point number after removing thousands
// separators, spaces and trailing '*' markers. The boolean result is false
// when s is not numeric; it never panics.
func ParseNumber(s string) (float64, bool) {
	s = cleanNumeric(s)
	if s == "" {
		return 0, false
	}

	// Letters other than an exponent marker disqualify the value, which
	// rules out "NaN", "Inf" and hexadecimal forms.
	for _, r := range s {
		if unicode.IsLetter(r) && r != 'e' && r != 'E' {
			return 0, false
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IsNumeric reports whether s holds a number. See ParseNumber.
func IsNumeric(s string) bool {
	_, ok := ParseNumber(s)
	return ok
}

// lower lower-cases s with Unicode-aware rules. A Caser keeps state, so one
// is built per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// MatchingKeywords returns every keyword that occurs in text, compared
// case-insensitively, in keyword order. An empty result means no match.
func MatchingKeywords(text string, keywords []string) []string {
	if text == "" || len(keywords) == 0 {
		return nil
	}

	haystack := lower(text)
	var matches []string
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(haystack, lower(kw)) {
			matches = append(matches, kw)
		}
	}
	return matches
}

// NormalizeKeywords lower-cases and trims a keyword list, dropping blanks.
func NormalizeKeywords(keywords []string) []string {
	result := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			result = append(result, lower(kw))
		}
	}
	return result
}
