package featurecache

import (
	"errors"
	"fmt"
)

// ErrCache is matched by every error this package reports about cache content.
var ErrCache = errors.New("featurecache")

// MalformedError reports a row that does not fit the cache layout.
type MalformedError struct {
	Line     int
	Fields   int
	Expected int
	Err      error
}

func (e *MalformedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("featurecache: malformed row at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("featurecache: malformed row at line %d: got %d fields, want %d", e.Line, e.Fields, e.Expected)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// Is reports whether target is ErrCache.
func (e *MalformedError) Is(target error) bool { return target == ErrCache }

// NotFoundError reports an identifier absent from the cache.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("featurecache: %q not found", e.ID)
}

// Is reports whether target is ErrCache.
func (e *NotFoundError) Is(target error) bool { return target == ErrCache }
