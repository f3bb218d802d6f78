package repository

import (
	"errors"
	"fmt"

	"sales-service/pkg/database"
)

var (
	// ErrNotFound is returned when an id does not match any row
	ErrNotFound = errors.New("not found")

	// ErrReferenced is returned when a delete is blocked by dependent rows
	ErrReferenced = errors.New("referenced by dependent rows")

	// ErrConflict is returned when a write collides with an existing row
	ErrConflict = errors.New("conflicting write")
)

// notFound builds the error returned for a missing entity
func notFound(entity string, id uint) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}

// writeError classifies store errors raised by inserts and replaces. A
// foreign key violation there means the referenced row vanished.
func writeError(entity string, err error) error {
	err = database.Classify(err)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, database.ErrForeignKeyViolation):
		return fmt.Errorf("%s references a missing row: %w", entity, ErrNotFound)
	case errors.Is(err, database.ErrUniqueViolation):
		return fmt.Errorf("%s already exists: %w", entity, ErrConflict)
	}
	return fmt.Errorf("failed to write %s: %w", entity, err)
}

// deleteError classifies store errors raised by deletes
func deleteError(entity string, id uint, err error) error {
	err = database.Classify(err)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, database.ErrForeignKeyViolation):
		return fmt.Errorf("%s %d: %w", entity, id, ErrReferenced)
	}
	return fmt.Errorf("failed to delete %s %d: %w", entity, id, err)
}
