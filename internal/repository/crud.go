package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the storage contract shared by every CRUD resource.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, e *T) error
	Update(ctx context.Context, e *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Options tunes a generic repository for one table.
type Options struct {
	// Order is the ORDER BY clause applied to List, e.g. "nombre asc".
	Order string
	// Preloads are the relations expanded on every read.
	Preloads []string
	// PreloadOrder sorts the rows of a preloaded relation, keyed by the
	// relation name used in Preloads.
	PreloadOrder map[string]string
	// CreateAssociations persists nested has-many rows together with the parent.
	CreateAssociations bool
	// BeforeDelete runs inside the delete transaction. Dependent rows are
	// removed here.
	BeforeDelete func(tx *gorm.DB, id uuid.UUID) error
}

type gormRepository[T any] struct {
	db   *gorm.DB
	opts Options
}

// New builds a Repository for model T.
func New[T any](db *gorm.DB, opts Options) Repository[T] {
	return &gormRepository[T]{db: db, opts: opts}
}

func (r *gormRepository[T]) read(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.opts.Preloads {
		if order, ok := r.opts.PreloadOrder[p]; ok {
			q = q.Preload(p, func(db *gorm.DB) *gorm.DB { return db.Order(order) })
			continue
		}
		q = q.Preload(p)
	}
	return q
}

func (r *gormRepository[T]) List(ctx context.Context) ([]T, error) {
	var list []T
	q := r.read(ctx)
	if r.opts.Order != "" {
		q = q.Order(r.opts.Order)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *gormRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var e T
	if err := r.read(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *gormRepository[T]) Create(ctx context.Context, e *T) error {
	q := r.db.WithContext(ctx)
	if !r.opts.CreateAssociations {
		q = q.Omit(clause.Associations)
	}
	return q.Create(e).Error
}

func (r *gormRepository[T]) Update(ctx context.Context, e *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(e).Error
}

func (r *gormRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if r.opts.BeforeDelete != nil {
			if err := r.opts.BeforeDelete(tx, id); err != nil {
				return err
			}
		}
		res := tx.Delete(new(T), "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
