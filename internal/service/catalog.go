package service

import (
	"context"

	"gorm.io/gorm"

	"sandwichapi/internal/model"
	"sandwichapi/internal/repository"
	"sandwichapi/internal/repository/orm"
)

// CatalogService defines the use cases for one entity type.
type CatalogService[E any, C repository.Creatable[E], U repository.Patchable] interface {
	// Create stores a new record and returns it with its assigned ID.
	Create(ctx context.Context, in C) (*E, error)

	// ReadAll returns every record.
	ReadAll(ctx context.Context) ([]E, error)

	// ReadOne returns the record with the given ID, or false when there is none.
	ReadOne(ctx context.Context, id int64) (*E, bool, error)

	// Update applies a partial update. Missing records yield repository.ErrNotFound.
	Update(ctx context.Context, id int64, in U) (*E, error)

	// Delete removes a record. Missing records yield repository.ErrNotFound.
	Delete(ctx context.Context, id int64) error
}

type (
	ResourceService = CatalogService[model.Resource, model.ResourceCreate, model.ResourceUpdate]
	SandwichService = CatalogService[model.Sandwich, model.SandwichCreate, model.SandwichUpdate]
)

// catalog opens one unit of work per call and hands it to the repository.
// Writes run in a transaction so the existence check and the change commit together.
type catalog[E any, C repository.Creatable[E], U repository.Patchable] struct {
	db   *gorm.DB
	repo repository.Repository[E, C, U]
}

// NewCatalog constructs a CatalogService backed by repo.
func NewCatalog[E any, C repository.Creatable[E], U repository.Patchable](db *gorm.DB, repo repository.Repository[E, C, U]) CatalogService[E, C, U] {
	return &catalog[E, C, U]{db: db, repo: repo}
}

// NewResourceService wires the resources catalog.
func NewResourceService(db *gorm.DB) ResourceService {
	return NewCatalog[model.Resource, model.ResourceCreate, model.ResourceUpdate](db, orm.NewResourceCRUD())
}

// NewSandwichService wires the sandwiches catalog.
func NewSandwichService(db *gorm.DB) SandwichService {
	return NewCatalog[model.Sandwich, model.SandwichCreate, model.SandwichUpdate](db, orm.NewSandwichCRUD())
}

func (s *catalog[E, C, U]) Create(ctx context.Context, in C) (*E, error) {
	var out *E
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := s.repo.Create(tx, in)
		if err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *catalog[E, C, U]) ReadAll(ctx context.Context) ([]E, error) {
	return s.repo.ReadAll(s.db.WithContext(ctx))
}

func (s *catalog[E, C, U]) ReadOne(ctx context.Context, id int64) (*E, bool, error) {
	return s.repo.ReadOne(s.db.WithContext(ctx), id)
}

func (s *catalog[E, C, U]) Update(ctx context.Context, id int64, in U) (*E, error) {
	var out *E
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := s.repo.Update(tx, id, in)
		if err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *catalog[E, C, U]) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Delete(tx, id)
	})
}
