package orm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sandwichapi/internal/model"
	"sandwichapi/internal/repository"
)

// CRUD implements repository.Repository for a single gorm model.
// It carries only the entity name used in error messages.
type CRUD[E any, C repository.Creatable[E], U repository.Patchable] struct {
	name string
}

// NewCRUD creates a CRUD for entity E, labelled name in errors.
func NewCRUD[E any, C repository.Creatable[E], U repository.Patchable](name string) *CRUD[E, C, U] {
	return &CRUD[E, C, U]{name: name}
}

type (
	ResourceCRUD = CRUD[model.Resource, model.ResourceCreate, model.ResourceUpdate]
	SandwichCRUD = CRUD[model.Sandwich, model.SandwichCreate, model.SandwichUpdate]
)

var (
	_ repository.Repository[model.Resource, model.ResourceCreate, model.ResourceUpdate] = (*ResourceCRUD)(nil)
	_ repository.Repository[model.Sandwich, model.SandwichCreate, model.SandwichUpdate] = (*SandwichCRUD)(nil)
)

// NewResourceCRUD returns the resources table repository.
func NewResourceCRUD() *ResourceCRUD {
	return NewCRUD[model.Resource, model.ResourceCreate, model.ResourceUpdate]("resource")
}

// NewSandwichCRUD returns the sandwiches table repository.
func NewSandwichCRUD() *SandwichCRUD {
	return NewCRUD[model.Sandwich, model.SandwichCreate, model.SandwichUpdate]("sandwich")
}

// Create inserts the row and reads every column back with RETURNING.
func (r *CRUD[E, C, U]) Create(tx *gorm.DB, in C) (*E, error) {
	row := in.Entity()
	if err := tx.Clauses(clause.Returning{}).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create %s: %w", r.name, err)
	}
	return &row, nil
}

// ReadAll returns all rows ordered by id.
func (r *CRUD[E, C, U]) ReadAll(tx *gorm.DB) ([]E, error) {
	rows := make([]E, 0)
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", r.name, err)
	}
	return rows, nil
}

// ReadOne fetches a row by id. A missing row is not an error.
func (r *CRUD[E, C, U]) ReadOne(tx *gorm.DB, id int64) (*E, bool, error) {
	var row E
	err := tx.Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %s %d: %w", r.name, id, err)
	}
	return &row, true, nil
}

// Update writes only the changed columns. An update with no changes leaves the row as is.
func (r *CRUD[E, C, U]) Update(tx *gorm.DB, id int64, in U) (*E, error) {
	if err := r.mustExist(tx, id); err != nil {
		return nil, err
	}

	if changes := in.Changes(); len(changes) > 0 {
		if err := tx.Model(new(E)).Where("id = ?", id).Updates(changes).Error; err != nil {
			return nil, fmt.Errorf("update %s %d: %w", r.name, id, err)
		}
	}

	row, ok, err := r.ReadOne(tx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, r.notFound(id)
	}
	return row, nil
}

// Delete removes the row with the given id.
func (r *CRUD[E, C, U]) Delete(tx *gorm.DB, id int64) error {
	if err := r.mustExist(tx, id); err != nil {
		return err
	}
	if err := tx.Where("id = ?", id).Delete(new(E)).Error; err != nil {
		return fmt.Errorf("delete %s %d: %w", r.name, id, err)
	}
	return nil
}

func (r *CRUD[E, C, U]) mustExist(tx *gorm.DB, id int64) error {
	var n int64
	if err := tx.Model(new(E)).Where("id = ?", id).Count(&n).Error; err != nil {
		return fmt.Errorf("lookup %s %d: %w", r.name, id, err)
	}
	if n == 0 {
		return r.notFound(id)
	}
	return nil
}

func (r *CRUD[E, C, U]) notFound(id int64) error {
	return fmt.Errorf("%s %d: %w", r.name, id, repository.ErrNotFound)
}
