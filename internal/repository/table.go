package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sales-service/prometheus"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// table holds the CRUD plumbing shared by the entity repositories. Rows are
// passed as GORM destinations: pointers to a model or to a slice of models.
type table struct {
	db     *gorm.DB
	entity string
	// columns overwritten by replace
	columns []string
}

func (t *table) session(ctx context.Context) *gorm.DB {
	return t.db.WithContext(ctx)
}

// list loads every row into dest ordered by id
func (t *table) list(ctx context.Context, dest interface{}) error {
	defer prometheus.TrackDBOperation("query")(time.Now())

	if err := t.session(ctx).Order("id").Find(dest).Error; err != nil {
		return fmt.Errorf("failed to list %s: %w", t.entity, err)
	}
	return nil
}

// get loads the row with the given id into dest
func (t *table) get(ctx context.Context, id uint, dest interface{}) error {
	defer prometheus.TrackDBOperation("query")(time.Now())

	err := t.session(ctx).First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(t.entity, id)
	}
	if err != nil {
		return fmt.Errorf("failed to get %s %d: %w", t.entity, id, err)
	}
	return nil
}

// insert creates row inside a transaction, after check has validated references
func (t *table) insert(ctx context.Context, row interface{}, check func(tx *gorm.DB) error) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	return t.session(ctx).Transaction(func(tx *gorm.DB) error {
		if check != nil {
			if err := check(tx); err != nil {
				return err
			}
		}
		return writeError(t.entity, tx.Omit(clause.Associations).Create(row).Error)
	})
}

// replace overwrites every column of row. row must carry its primary key.
func (t *table) replace(ctx context.Context, id uint, row interface{}, check func(tx *gorm.DB) error) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	return t.session(ctx).Transaction(func(tx *gorm.DB) error {
		if check != nil {
			if err := check(tx); err != nil {
				return err
			}
		}
		result := tx.Model(row).Select(t.columns).Updates(row)
		if result.Error != nil {
			return writeError(t.entity, result.Error)
		}
		if result.RowsAffected == 0 {
			return notFound(t.entity, id)
		}
		return nil
	})
}

// delete removes the row of kind with the given id, after before has run
func (t *table) delete(ctx context.Context, id uint, kind interface{}, before func(tx *gorm.DB) error) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	return t.session(ctx).Transaction(func(tx *gorm.DB) error {
		if before != nil {
			if err := before(tx); err != nil {
				return err
			}
		}
		result := tx.Delete(kind, id)
		if result.Error != nil {
			return deleteError(t.entity, id, result.Error)
		}
		if result.RowsAffected == 0 {
			return notFound(t.entity, id)
		}
		return nil
	})
}

// existsIn reports whether a row of kind with the given id exists
func existsIn(tx *gorm.DB, kind interface{}, id uint) (bool, error) {
	var count int64
	if err := tx.Model(kind).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return count > 0, nil
}

// requireRow fails with ErrNotFound when no row of kind has the given id
func requireRow(tx *gorm.DB, kind interface{}, entity string, id uint) error {
	ok, err := existsIn(tx, kind, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(entity, id)
	}
	return nil
}

// restrict fails with ErrReferenced when rows of kind point at id through column
func restrict(tx *gorm.DB, kind interface{}, entity string, id uint, column string) error {
	var count int64
	if err := tx.Model(kind).Where(column+" = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count dependents of %s %d: %w", entity, id, err)
	}
	if count > 0 {
		return fmt.Errorf("%s %d has %d dependent rows: %w", entity, id, count, ErrReferenced)
	}
	return nil
}
