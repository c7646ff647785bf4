package usecase

import (
	"context"

	"domkarta/internal/domain/entity"
)

// Search term kinds.
const (
	SearchByAddress = "address"
	SearchByYear    = "year"
	SearchBySeries  = "buildingSeries"
)

// SearchInput is one search-bar submission: an optional term of a given
// kind plus an optional city filter. AllMap disables the city filter.
type SearchInput struct {
	Term   string `json:"term"`
	Type   string `json:"type"`
	City   string `json:"city"`
	AllMap bool   `json:"all_map"`
}

// SearchUsecase filters the directory. A submission with neither a usable
// term nor a city filter returns nil, meaning "no active filter".
type SearchUsecase interface {
	SearchHouses(ctx context.Context, input *SearchInput) ([]*entity.House, error)
}
