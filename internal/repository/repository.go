package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., orm) inside this directory.

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an operation targets an id with no stored row.
var ErrNotFound = errors.New("not found")

// Creatable is an input shape that carries every field of a new E.
type Creatable[E any] interface {
	Entity() E
}

// Patchable is an input shape for partial updates.
// Changes returns only the columns the caller supplied.
type Patchable interface {
	Changes() map[string]any
}

// Repository is the CRUD contract shared by every entity.
// Each call receives the unit of work it runs in; implementations hold no session.
type Repository[E any, C Creatable[E], U Patchable] interface {
	// Create inserts a new row and returns it as stored, including the assigned ID.
	Create(tx *gorm.DB, in C) (*E, error)

	// ReadAll returns every row in insertion order. The slice is empty, never nil, when there are none.
	ReadAll(tx *gorm.DB) ([]E, error)

	// ReadOne returns the row with the given ID. The boolean is false when no such row exists.
	ReadOne(tx *gorm.DB, id int64) (*E, bool, error)

	// Update applies the supplied fields to an existing row and returns the result.
	// It fails with ErrNotFound before touching anything when the row is missing.
	Update(tx *gorm.DB, id int64, in U) (*E, error)

	// Delete removes an existing row. It fails with ErrNotFound when the row is missing.
	Delete(tx *gorm.DB, id int64) error
}
