package feature

import (
	"errors"
	"fmt"
)

// ErrExtraction matches every *ExtractionError via errors.Is.
var ErrExtraction = errors.New("feature extraction failed")

// ExtractionError reports why an extractor could not produce a descriptor.
type ExtractionError struct {
	Extractor string
	Reason    string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Extractor, e.Reason)
}

// Is reports whether target is ErrExtraction.
func (e *ExtractionError) Is(target error) bool { return target == ErrExtraction }

func extractionErrorf(extractor, format string, args ...any) error {
	return &ExtractionError{Extractor: extractor, Reason: fmt.Sprintf(format, args...)}
}
