// Package clean filters extraction output down to well-formed five-column
// records with canonical numeric values.
package clean

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/parser"
)

// progressPrefix marks log lines interleaved with records.
const progressPrefix = "processing"

const fieldCount = 5

var valueStripper = strings.NewReplacer(",", "", " ", "", "*", "")

// Filter keeps record lines whose sector is in an allow-list.
type Filter struct {
	sectors map[string]bool
}

// NewFilter creates a filter for the given sectors. An empty list accepts
// every sector.
func NewFilter(sectors []string) *Filter {
	f := &Filter{sectors: make(map[string]bool, len(sectors))}
	for _, s := range sectors {
		f.sectors[s] = true
	}
	return f
}

func (f *Filter) allows(sector string) bool {
	return len(f.sectors) == 0 || f.sectors[sector]
}

// CleanLine returns the cleaned form of a record line, or false when the
// line is dropped. Kept lines have exactly five tab-separated fields and a
// value that parses as a finite number.
func (f *Filter) CleanLine(line string) (string, bool) {
	if strings.HasPrefix(line, progressPrefix) || strings.TrimSpace(line) == "" {
		return "", false
	}

	fields := strings.Split(line, "\t")
	if len(fields) != fieldCount || !f.allows(fields[0]) {
		return "", false
	}

	value := strings.TrimSpace(valueStripper.Replace(fields[4]))
	n, ok := parser.ParseNumber(value)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return "", false
	}

	fields[4] = FormatFloat(n)
	return strings.Join(fields, "\t"), true
}

// Stats counts the lines seen by Run.
type Stats struct {
	Lines   int
	Kept    int
	Dropped int
}

// Run cleans every line of r and writes the kept lines to w.
func (f *Filter) Run(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats
	out := bufio.NewWriter(w)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		stats.Lines++
		line, ok := f.CleanLine(strings.TrimSuffix(sc.Text(), "\r"))
		if !ok {
			stats.Dropped++
			continue
		}
		stats.Kept++
		if _, err := out.WriteString(line + "\n"); err != nil {
			return stats, err
		}
	}
	if err := sc.Err(); err != nil {
		return stats, err
	}

	return stats, out.Flush()
}

// FormatFloat renders v in its shortest round-trip form. Values with a
// magnitude in [1e-4, 1e16), and zero, use positional notation with at least
// one fractional digit ("135500.0"); others use exponent notation ("1e+16").
func FormatFloat(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
