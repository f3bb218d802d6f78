package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"gorm foreign key", gorm.ErrForeignKeyViolated, ErrForeignKeyViolation},
		{"gorm duplicate", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), ErrUniqueViolation},
		{"postgres foreign key", &pgconn.PgError{Code: "23503"}, ErrForeignKeyViolation},
		{"postgres unique", fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23505"}), ErrUniqueViolation},
		{"postgres other", &pgconn.PgError{Code: "40001"}, nil},
		{"unrelated", other, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if tt.want == nil {
				assert.Same(t, tt.err, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err, "original error stays in the chain")
		})
	}

	assert.NoError(t, Classify(nil))
}
