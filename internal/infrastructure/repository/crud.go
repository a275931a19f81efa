package repository

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// crud is the shared repository core. The per-entity repositories used to be
// near-identical copies of the same five operations; instead each one now
// supplies a small mapping: its noun for error messages, an id accessor, a
// duplicate probe selecting rows that collide with the candidate's unique
// key, and an optional foreign-reference check run inside the write
// transaction.
type crud[T any] struct {
	db   *gorm.DB
	noun string
	id   func(*T) int64
	dup  func(tx *gorm.DB, e *T) *gorm.DB
	refs func(tx *gorm.DB, e *T) error
}

func (r *crud[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var e T
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s id %d", domain.ErrNotFound, r.noun, id)
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// getBy backs the per-entity name lookups.
func (r *crud[T]) getBy(ctx context.Context, query string, args ...any) (*T, error) {
	var e T
	err := r.db.WithContext(ctx).Where(query, args...).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, r.noun)
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *crud[T]) GetAll(ctx context.Context) ([]*T, error) {
	entities := make([]*T, 0)
	if err := r.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Insert assigns the generated id back into the entity. The duplicate probe
// and the insert run in one transaction; the SQLSTATE check is a backstop
// for writers racing between probe and insert.
func (r *crud[T]) Insert(ctx context.Context, e *T) error {
	if e == nil {
		return fmt.Errorf("%w: nil %s", domain.ErrInvalidArgument, r.noun)
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := r.dup(tx.Model(new(T)), e).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: %s", domain.ErrConflict, r.noun)
		}
		if r.refs != nil {
			if err := r.refs(tx, e); err != nil {
				return err
			}
		}
		return tx.Create(e).Error
	})
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrConflict, r.noun)
	}
	return err
}

func (r *crud[T]) Update(ctx context.Context, e *T) error {
	if e == nil {
		return fmt.Errorf("%w: nil %s", domain.ErrInvalidArgument, r.noun)
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(new(T)).Where("id = ?", r.id(e)).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: %s id %d", domain.ErrInconsistentState, r.noun, r.id(e))
		}
		if r.refs != nil {
			if err := r.refs(tx, e); err != nil {
				return err
			}
		}
		return tx.Save(e).Error
	})
	// A rename racing into a taken unique name surfaces as a unique
	// violation here too, not just on Insert.
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrConflict, r.noun)
	}
	return err
}

// Delete returns the row as it stood at delete time.
func (r *crud[T]) Delete(ctx context.Context, e *T) (*T, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: nil %s", domain.ErrInvalidArgument, r.noun)
	}
	var deleted T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&deleted, r.id(e)).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s id %d", domain.ErrInconsistentState, r.noun, r.id(e))
		}
		if err != nil {
			return err
		}
		return tx.Delete(new(T), r.id(e)).Error
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

// refExists verifies a foreign id inside the caller's transaction.
func refExists[T any](tx *gorm.DB, noun string, id int64) error {
	var n int64
	if err := tx.Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s id %d", domain.ErrNotFound, noun, id)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
