package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrForeignKeyViolation marks a write rejected by a referential constraint
	ErrForeignKeyViolation = errors.New("foreign key constraint violated")

	// ErrUniqueViolation marks a write rejected by a unique or primary key constraint
	ErrUniqueViolation = errors.New("unique constraint violated")
)

// PostgreSQL SQLSTATE codes
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// Classify maps driver level constraint errors to the package sentinels.
// Any other error, including nil, is returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errors.Join(ErrForeignKeyViolation, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Join(ErrUniqueViolation, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return errors.Join(ErrForeignKeyViolation, err)
		case pgUniqueViolation:
			return errors.Join(ErrUniqueViolation, err)
		}
	}

	return err
}
