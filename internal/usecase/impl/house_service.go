package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "domkarta/internal/delivery/context"
	"domkarta/internal/domain/entity"
	"domkarta/internal/domain/lifecycle"
	"domkarta/internal/domain/repository"
	"domkarta/internal/domain/service"
	"domkarta/internal/usecase"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
)

type houseService struct {
	resolver  usecase.ResolveUsecase
	geocoder  usecase.GeocodeUsecase
	houseRepo repository.HouseRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewHouseService creates the house record usecase. Every create/update runs
// the coordinate resolver before anything touches the store; a record without
// a resolved footprint is never assembled.
func NewHouseService(
	resolver usecase.ResolveUsecase,
	geocoder usecase.GeocodeUsecase,
	houseRepo repository.HouseRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.HouseUsecase {
	return &houseService{
		resolver:  resolver,
		geocoder:  geocoder,
		houseRepo: houseRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateHouse resolves a footprint, assembles the record and persists it.
// Creation is the one synchronous write: the caller needs the store-assigned
// ID before the response can be built.
func (s *houseService) CreateHouse(ctx context.Context, input *usecase.HouseInput) (*entity.House, error) {
	footprint, err := s.resolveFootprint(ctx, input, nil)
	if err != nil {
		return nil, err
	}

	house := assembleHouse("", input, footprint)

	id, err := s.houseRepo.CreateHouse(ctx, house)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "create house")
	}
	house.ID = id

	s.publishEvent(ctx, service.HouseEventCreated, house, "")

	return house, nil
}

// UpdateHouse re-resolves coordinates only when their determining input
// changed (the resolver's reuse rules decide that), then replaces the
// record's mutable fields. The write itself is optimistic: it runs in the
// background and a refusal surfaces on the event side channel, never as an
// error of this call.
func (s *houseService) UpdateHouse(ctx context.Context, id string, input *usecase.HouseInput) (*entity.House, error) {
	existing, err := s.houseRepo.FindHouseByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load house for update")
	}

	footprint, err := s.resolveFootprint(ctx, input, existing)
	if err != nil {
		return nil, err
	}

	house := assembleHouse(id, input, footprint)

	s.writeOptimistically(ctx, service.HouseEventUpdated, house, func(writeCtx context.Context) error {
		return s.houseRepo.UpdateHouse(writeCtx, house)
	})

	return house, nil
}

// DeleteHouse removes a record. Like updates, the store write is optimistic.
func (s *houseService) DeleteHouse(ctx context.Context, id string) error {
	existing, err := s.houseRepo.FindHouseByID(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(err, "load house for delete")
	}

	s.writeOptimistically(ctx, service.HouseEventDeleted, existing, func(writeCtx context.Context) error {
		return s.houseRepo.DeleteHouse(writeCtx, id)
	})

	return nil
}

func (s *houseService) GetHouse(ctx context.Context, id string) (*entity.House, error) {
	house, err := s.houseRepo.FindHouseByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "get house")
	}

	return house, nil
}

func (s *houseService) ListHouses(ctx context.Context) ([]*entity.House, error) {
	houses, err := s.houseRepo.ListHouses(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list houses")
	}

	return houses, nil
}

func (s *houseService) WatchHouses(ctx context.Context) (<-chan []*entity.House, error) {
	snapshots, err := s.houseRepo.WatchHouses(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "watch houses")
	}

	return snapshots, nil
}

// resolveFootprint builds the resolution context from the submitted form and
// the record being edited (nil when creating) and runs the resolver.
func (s *houseService) resolveFootprint(ctx context.Context, input *usecase.HouseInput, existing *entity.House) (entity.Footprint, error) {
	rc := &usecase.ResolutionContext{
		Mode:                input.Mode,
		TypedAddress:        input.Address,
		ManualPoint:         input.ManualPoint,
		RequestedExternalID: input.ExternalID,
	}
	if rc.Mode == "" {
		rc.Mode = usecase.ModeAddress
	}

	if existing != nil {
		rc.IsEditingExisting = true
		rc.ExistingAddress = existing.Address
		rc.ExistingFootprint = &existing.Footprint
		rc.ExistingSourceID = existing.ExternalID
	}

	// A new or changed external id needs a fresh boundary; an unchanged one
	// is covered by the resolver's reuse rule, so skip the network call.
	if rc.Mode == usecase.ModeExternalID && input.ExternalID != "" &&
		(existing == nil || input.ExternalID != existing.ExternalID) {
		candidate, err := s.geocoder.FetchFootprint(ctx, input.ExternalID)
		if err != nil {
			s.logger.Warn("footprint lookup failed before resolution",
				slog.String("external_id", input.ExternalID),
				slog.Any("error", err),
			)
		} else {
			rc.FetchedCandidate = candidate
		}
	}

	return s.resolver.Resolve(ctx, rc)
}

// writeOptimistically dispatches a store write in the background and returns
// immediately. A refused write is published as a write-rejected event and
// logged; a successful one is published under the given action.
func (s *houseService) writeOptimistically(ctx context.Context, action string, house *entity.House, write func(context.Context) error) {
	// The request context dies with the HTTP response; the write must not.
	writeCtx := context.WithoutCancel(ctx)

	go func() {
		writeCtx, cancel := context.WithTimeout(writeCtx, lifecycle.DefaultTimeout)
		defer cancel()

		if err := write(writeCtx); err != nil {
			s.logger.Error("optimistic house write rejected",
				slog.String("action", action),
				slog.String("house_id", house.ID),
				slog.Any("error", err),
			)
			s.publishEvent(writeCtx, service.HouseEventWriteRejected, house, err.Error())

			return
		}

		s.publishEvent(writeCtx, action, house, "")
	}()
}

func (s *houseService) publishEvent(ctx context.Context, action string, house *entity.House, detail string) {
	event := &service.HouseEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.New().String(),
		Action:    action,
		HouseID:   house.ID,
		Address:   house.Address,
		Detail:    detail,
	}
	if point, ok := house.Footprint.FirstPoint(); ok {
		event.Latitude = point.Lat
		event.Longitude = point.Lng
	}

	if err := s.publisher.PublishHouseEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish house event",
			slog.String("action", action),
			slog.String("house_id", house.ID),
			slog.Any("error", err),
		)
	}
}

// assembleHouse turns validated form input plus a resolved footprint into the
// persisted record shape: series split and deduplicated, floor plans with
// empty URLs dropped.
func assembleHouse(id string, input *usecase.HouseInput, footprint entity.Footprint) *entity.House {
	plans := make([]entity.FloorPlan, 0, len(input.FloorPlans))
	for _, plan := range input.FloorPlans {
		url := strings.TrimSpace(plan.URL)
		if url == "" {
			continue
		}
		plans = append(plans, entity.FloorPlan{URL: url})
	}

	return &entity.House{
		ID:             id,
		Address:        strings.TrimSpace(input.Address),
		Footprint:      footprint,
		Year:           strings.TrimSpace(input.Year),
		BuildingSeries: entity.SplitSeries(input.BuildingSeries),
		Floors:         input.Floors,
		ImageURL:       strings.TrimSpace(input.ImageURL),
		FloorPlans:     plans,
		ExternalID:     strings.TrimSpace(input.ExternalID),
	}
}
