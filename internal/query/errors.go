package query

import (
	"errors"
	"fmt"
)

// Validation failure sentinels, matched with errors.Is.
var (
	ErrEmptyTerms        = errors.New("at least one role term is required")
	ErrEmptyLocation     = errors.New("location is required")
	ErrUnknownLocation   = errors.New("location is not one of the offered locations")
	ErrUnknownSector     = errors.New("sector is not one of the offered sectors")
	ErrResultsOutOfRange = errors.New("number of results out of range")
	ErrPageOutOfRange    = errors.New("start page out of range")
)

// ValidationError reports unusable search input. It is raised before any
// network call is made.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
