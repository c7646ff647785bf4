package usecase

import (
	"context"

	"domkarta/internal/domain/entity"
)

// FloorPlanInput is one floor-plan entry from the edit form.
type FloorPlanInput struct {
	URL string `json:"url"`
}

// HouseInput carries the form values of a create/edit submit. The footprint
// is not part of the form; it is produced by the coordinate resolver.
type HouseInput struct {
	Address        string           `json:"address"`
	Year           string           `json:"year"`
	BuildingSeries string           `json:"building_series"` // Comma-separated, split on assembly.
	Floors         int              `json:"floors"`
	ImageURL       string           `json:"image_url"`
	FloorPlans     []FloorPlanInput `json:"floor_plans"`
	ExternalID     string           `json:"external_id"`

	// Location inputs feeding the resolution context.
	Mode        ResolutionMode   `json:"mode"`
	ManualPoint *entity.GeoPoint `json:"manual_point,omitempty"`
}

// HouseUsecase drives the admin create/edit/delete flow: resolve a
// footprint, assemble the record, hand it to the store.
type HouseUsecase interface {
	// CreateHouse resolves coordinates for a new record and persists it.
	CreateHouse(ctx context.Context, input *HouseInput) (*entity.House, error)

	// UpdateHouse re-resolves coordinates only when their determining input
	// changed, then replaces the record's mutable fields.
	UpdateHouse(ctx context.Context, id string, input *HouseInput) (*entity.House, error)

	// DeleteHouse removes a record by ID.
	DeleteHouse(ctx context.Context, id string) error

	// GetHouse fetches a single record.
	GetHouse(ctx context.Context, id string) (*entity.House, error)

	// ListHouses fetches the full directory.
	ListHouses(ctx context.Context) ([]*entity.House, error)

	// WatchHouses streams authoritative collection snapshots.
	WatchHouses(ctx context.Context) (<-chan []*entity.House, error)
}
