// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"domkarta/internal/domain/entity"
	"domkarta/internal/errors"
)

// Domain-specific errors for house persistence.
var (
	// ErrHouseNotFound is returned when a house is not found.
	ErrHouseNotFound = errors.New("house not found")
	// ErrPersistenceRejected is returned when the store refuses a write,
	// e.g. for authorization reasons.
	ErrPersistenceRejected = errors.New("store rejected the write")
)

// HouseRepository defines the interface for house-related document store
// operations. The store owns the canonical copy and assigns IDs on create.
type HouseRepository interface {
	// CreateHouse persists a new house and returns the store-assigned ID.
	CreateHouse(ctx context.Context, house *entity.House) (string, error)

	// UpdateHouse replaces the mutable fields of an existing house.
	UpdateHouse(ctx context.Context, house *entity.House) error

	// DeleteHouse removes a house by its ID.
	DeleteHouse(ctx context.Context, id string) error

	// FindHouseByID retrieves a single house.
	// Returns ErrHouseNotFound when the document does not exist.
	FindHouseByID(ctx context.Context, id string) (*entity.House, error)

	// ListHouses retrieves the full collection.
	ListHouses(ctx context.Context) ([]*entity.House, error)

	// WatchHouses streams full collection snapshots until ctx is done.
	// Every pushed snapshot is authoritative; consumers reconcile open
	// views by ID and drop views whose ID disappeared.
	WatchHouses(ctx context.Context) (<-chan []*entity.House, error)
}
