package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	"domkarta/internal/domain/constants"
	"domkarta/internal/domain/entity"
	"domkarta/internal/domain/service"
	"domkarta/internal/usecase"

	pkgerrors "github.com/pkg/errors"
)

type mapLocationService struct {
	store  service.KeyValueStore
	logger *slog.Logger
}

// NewMapLocationService creates the last-location memory over a key-value
// store. The memory holds exactly one entry under a fixed key and is
// overwritten whole on every update.
func NewMapLocationService(store service.KeyValueStore, logger *slog.Logger) usecase.MapLocationUsecase {
	return &mapLocationService{
		store:  store,
		logger: logger,
	}
}

func (s *mapLocationService) Remember(ctx context.Context, location entity.MapLocation) error {
	payload, err := json.Marshal(location)
	if err != nil {
		return pkgerrors.Wrap(err, "marshal last location")
	}

	if err := s.store.Set(ctx, constants.LastLocationKey, string(payload)); err != nil {
		return pkgerrors.Wrap(err, "store last location")
	}

	return nil
}

// Recall returns the remembered location, or nil when nothing was stored
// yet. A corrupted stored value counts as "nothing remembered": the map
// falls back to its configured default view, it never fails to open.
func (s *mapLocationService) Recall(ctx context.Context) (*entity.MapLocation, error) {
	payload, ok, err := s.store.Get(ctx, constants.LastLocationKey)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load last location")
	}
	if !ok {
		return nil, nil
	}

	var location entity.MapLocation
	if err := json.Unmarshal([]byte(payload), &location); err != nil {
		s.logger.Warn("discarding corrupted last location",
			slog.Any("error", err),
		)

		return nil, nil
	}

	return &location, nil
}
