package service

import (
	"context"

	"gestionpos/internal/repository"

	"github.com/google/uuid"
)

// keyed is satisfied by every model through the embedded model.Base.
type keyed interface {
	PrimaryKey() uuid.UUID
}

// Schema describes how one resource maps between its create/update payloads
// (C, U), its stored model (M) and its response representation (R).
type Schema[M, C, U, R any] struct {
	// Nombre names the resource in error messages.
	Nombre string
	// Build validates a create payload and returns the model to insert.
	Build func(ctx context.Context, caller Caller, req C) (*M, error)
	// Apply validates an update payload and applies it to m.
	Apply func(ctx context.Context, m *M, req U) error
	// Render converts a stored model into its response.
	Render func(m M) R
	// Save persists an updated model. Defaults to Repository.Update.
	Save func(ctx context.Context, m *M, req U) error
	// BeforeDelete can refuse a delete.
	BeforeDelete func(ctx context.Context, id uuid.UUID) error
}

// ResourceService is the CRUD contract every resource controller delegates to.
// Writes return the state read back from the store after the write.
type ResourceService[C, U, R any] interface {
	List(ctx context.Context) ([]R, error)
	Create(ctx context.Context, caller Caller, req C) (R, error)
	Get(ctx context.Context, id uuid.UUID) (R, error)
	Update(ctx context.Context, id uuid.UUID, req U) (R, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type resourceService[M, C, U, R any] struct {
	repo   repository.Repository[M]
	schema Schema[M, C, U, R]
}

func NewResourceService[M, C, U, R any](repo repository.Repository[M], schema Schema[M, C, U, R]) ResourceService[C, U, R] {
	if schema.Save == nil {
		schema.Save = func(ctx context.Context, m *M, _ U) error { return repo.Update(ctx, m) }
	}
	return &resourceService[M, C, U, R]{repo: repo, schema: schema}
}

func (s *resourceService[M, C, U, R]) List(ctx context.Context) ([]R, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]R, 0, len(list))
	for _, m := range list {
		result = append(result, s.schema.Render(m))
	}
	return result, nil
}

func (s *resourceService[M, C, U, R]) Create(ctx context.Context, caller Caller, req C) (R, error) {
	var zero R
	m, err := s.schema.Build(ctx, caller, req)
	if err != nil {
		return zero, err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return zero, storeErr(err, s.schema.Nombre)
	}
	return s.reload(ctx, any(m).(keyed).PrimaryKey())
}

func (s *resourceService[M, C, U, R]) Get(ctx context.Context, id uuid.UUID) (R, error) {
	return s.reload(ctx, id)
}

func (s *resourceService[M, C, U, R]) Update(ctx context.Context, id uuid.UUID, req U) (R, error) {
	var zero R
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return zero, storeErr(err, s.schema.Nombre)
	}
	if err := s.schema.Apply(ctx, m, req); err != nil {
		return zero, err
	}
	if err := s.schema.Save(ctx, m, req); err != nil {
		return zero, storeErr(err, s.schema.Nombre)
	}
	return s.reload(ctx, id)
}

func (s *resourceService[M, C, U, R]) Delete(ctx context.Context, id uuid.UUID) error {
	if s.schema.BeforeDelete != nil {
		if err := s.schema.BeforeDelete(ctx, id); err != nil {
			return err
		}
	}
	return storeErr(s.repo.Delete(ctx, id), s.schema.Nombre)
}

func (s *resourceService[M, C, U, R]) reload(ctx context.Context, id uuid.UUID) (R, error) {
	var zero R
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return zero, storeErr(err, s.schema.Nombre)
	}
	return s.schema.Render(*m), nil
}
