package ghgextract

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoReports indicates an input directory holds no reports.
var ErrNoReports = errors.New("no reports found")

// Processing stages reported by ProcessingError.
const (
	StageStat = "stat"
	StageLoad = "load"
)

// ProcessingError represents a failure to process one document.
type ProcessingError struct {
	Path  string
	Stage string
	Err   error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing %q failed (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// NewProcessingError creates a new ProcessingError.
func NewProcessingError(path, stage string, err error) *ProcessingError {
	return &ProcessingError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
