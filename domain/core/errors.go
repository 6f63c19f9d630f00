package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	ErrNotFound = errors.New("resource not found")

	// ErrValidation covers a required field missing at a state transition
	// gate. The transition is blocked and no state is lost.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCategory is returned by the workflow router for an unknown
	// triage category.
	ErrInvalidCategory = errors.New("invalid workflow category")

	// ErrInsightGeneration covers a failed, empty, or unparseable response
	// from the AI collaborator. It never blocks a save.
	ErrInsightGeneration = errors.New("insight generation failed")

	// ErrImportFormat is returned when an imported backup is not a JSON
	// array of records. No partial merge occurs.
	ErrImportFormat = errors.New("invalid backup file format")

	// ErrStoreCorruption marks a persisted value that does not decode to its
	// expected shape. Readers coerce to empty instead of failing.
	ErrStoreCorruption = errors.New("persisted value corrupted")

	// ErrSaveInFlight is returned when a save is attempted while a previous
	// save on the same draft is still awaiting its insight call.
	ErrSaveInFlight = errors.New("save already in progress")
)

// Error constructors with context
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, reason)
}

func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewInsightError(stage string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInsightGeneration, stage, err)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInsightError(err error) bool {
	return errors.Is(err, ErrInsightGeneration)
}

func IsImportFormatError(err error) bool {
	return errors.Is(err, ErrImportFormat)
}

func IsInvalidCategoryError(err error) bool {
	return errors.Is(err, ErrInvalidCategory)
}

func IsSaveInFlightError(err error) bool {
	return errors.Is(err, ErrSaveInFlight)
}
