package cbir

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidN is returned when the requested result count is not positive.
	ErrInvalidN = errors.New("n must be positive")

	// ErrInput matches every *InputError.
	ErrInput = errors.New("invalid input")

	// ErrConfiguration matches every *ConfigurationError.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrCandidate matches every *CandidateError.
	ErrCandidate = errors.New("candidate skipped")
)

// InputError reports a problem with the run's inputs: an unreadable target,
// an invalid result count or a zero target vector. It is fatal.
type InputError struct {
	Op  string
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInput.
func (e *InputError) Is(target error) bool { return target == ErrInput }

// CandidateError reports a candidate that was excluded from ranking.
type CandidateError struct {
	Ordinal int
	ID      string
	Err     error
}

func (e *CandidateError) Error() string {
	return fmt.Sprintf("candidate %d (%s): %v", e.Ordinal, e.ID, e.Err)
}

func (e *CandidateError) Unwrap() error { return e.Err }

// Is reports whether target is ErrCandidate.
func (e *CandidateError) Is(target error) bool { return target == ErrCandidate }

// ConfigurationError reports descriptors that cannot be compared because the
// target and a candidate were extracted with different configurations.
type ConfigurationError struct {
	ID       string
	Expected [][]int
	Actual   [][]int
	cause    error
}

func (e *ConfigurationError) Error() string {
	if e.Expected != nil || e.Actual != nil {
		return fmt.Sprintf("configuration mismatch for %s: target shape %v, candidate shape %v", e.ID, e.Expected, e.Actual)
	}
	return fmt.Sprintf("configuration mismatch for %s: %v", e.ID, e.cause)
}

func (e *ConfigurationError) Unwrap() error { return e.cause }

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }
