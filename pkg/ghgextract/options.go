// Package ghgextract extracts greenhouse-gas emissions figures from tables
// detected in sustainability reports.
package ghgextract

import (
	"fmt"
	"log/slog"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/parser"
)

// Mode represents the extraction variant.
type Mode string

const (
	// ModeBasic emits five-column records without units; rows without an
	// explicit label are categorised as models.NoCategory.
	ModeBasic Mode = "basic"
	// ModeStandard emits unit-aware records; rows without an explicit label
	// are categorised by the keywords they matched.
	ModeStandard Mode = "standard"
)

// DefaultKeywords are the row keywords used when none are configured.
var DefaultKeywords = []string{"scope 1", "scope 2", "scope 3"}

// Options configures extraction behavior.
type Options struct {
	// Mode specifies the extraction variant (basic, standard).
	Mode Mode
	// Keywords lists the phrases that make a table row relevant. Matching is
	// case-insensitive. If empty, DefaultKeywords is used.
	Keywords []string
	// IncludeUnit specifies whether to extract the unit from table headers.
	// If nil, defaults to true for standard mode, false otherwise.
	IncludeUnit *bool
	// ComposeCategory specifies whether unlabelled rows are categorised by
	// their matched keywords. If nil, defaults to true for standard mode.
	ComposeCategory *bool
	// DumpTables logs every resolved table at debug level.
	DumpTables bool
	// Logger receives per-document diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeBasic, ModeStandard:
		return Mode(s), nil
	case "":
		return ModeStandard, nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be basic or standard)", s)
	}
}

// ShouldIncludeUnit returns whether to extract table units.
func (o Options) ShouldIncludeUnit() bool {
	if o.IncludeUnit != nil {
		return *o.IncludeUnit
	}
	return o.Mode != ModeBasic
}

// ShouldComposeCategory returns whether matched keywords label unlabelled rows.
func (o Options) ShouldComposeCategory() bool {
	if o.ComposeCategory != nil {
		return *o.ComposeCategory
	}
	return o.Mode != ModeBasic
}

func (o Options) keywords() []string {
	if len(o.Keywords) == 0 {
		return parser.NormalizeKeywords(DefaultKeywords)
	}
	return parser.NormalizeKeywords(o.Keywords)
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func (o Options) scanConfig() parser.ScanConfig {
	return parser.ScanConfig{
		Keywords:        o.keywords(),
		IncludeUnit:     o.ShouldIncludeUnit(),
		ComposeCategory: o.ShouldComposeCategory(),
	}
}
