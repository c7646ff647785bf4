package firestore

import (
	"context"
	"log/slog"

	"domkarta/internal/domain/constants"
	"domkarta/internal/domain/entity"
	"domkarta/internal/domain/repository"
	"domkarta/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type houseRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewHouseRepository creates the Firestore-backed house repository.
func NewHouseRepository(client *firestore.Client, logger *slog.Logger) repository.HouseRepository {
	return &houseRepository{
		client: client,
		logger: logger,
	}
}

func (r *houseRepository) houses() *firestore.CollectionRef {
	return r.client.Collection(constants.HousesCollection)
}

func (r *houseRepository) CreateHouse(ctx context.Context, house *entity.House) (string, error) {
	docRef, _, err := r.houses().Add(ctx, model.FromHouseEntity(house))
	if err != nil {
		return "", translateWriteError(err, "create house document")
	}

	return docRef.ID, nil
}

func (r *houseRepository) UpdateHouse(ctx context.Context, house *entity.House) error {
	// Full replace of the document body; the store has no partial-update
	// semantics worth preserving for a record this small.
	_, err := r.houses().Doc(house.ID).Set(ctx, model.FromHouseEntity(house))
	if err != nil {
		return translateWriteError(err, "update house document")
	}

	return nil
}

func (r *houseRepository) DeleteHouse(ctx context.Context, id string) error {
	_, err := r.houses().Doc(id).Delete(ctx)
	if err != nil {
		return translateWriteError(err, "delete house document")
	}

	return nil
}

func (r *houseRepository) FindHouseByID(ctx context.Context, id string) (*entity.House, error) {
	snapshot, err := r.houses().Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrHouseNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get house document")
	}

	return decodeHouse(snapshot)
}

func (r *houseRepository) ListHouses(ctx context.Context) ([]*entity.House, error) {
	iter := r.houses().Documents(ctx)
	defer iter.Stop()

	var houses []*entity.House
	for {
		snapshot, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate house documents")
		}

		house, err := decodeHouse(snapshot)
		if err != nil {
			// One corrupted document must not take the directory down.
			r.logger.Warn("skipping undecodable house document",
				slog.String("id", snapshot.Ref.ID),
				slog.Any("error", err),
			)

			continue
		}
		houses = append(houses, house)
	}

	return houses, nil
}

// WatchHouses streams full collection snapshots until ctx is done. Every
// pushed snapshot is authoritative: consumers reconcile open views by id and
// drop views whose id disappeared.
func (r *houseRepository) WatchHouses(ctx context.Context) (<-chan []*entity.House, error) {
	snapshots := r.houses().Snapshots(ctx)
	out := make(chan []*entity.House)

	go func() {
		defer close(out)
		defer snapshots.Stop()

		for {
			snapshot, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					r.logger.Error("house snapshot stream broke", slog.Any("error", err))
				}

				return
			}

			houses, err := r.collectSnapshot(snapshot)
			if err != nil {
				r.logger.Error("failed to read house snapshot", slog.Any("error", err))

				continue
			}

			select {
			case out <- houses:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (r *houseRepository) collectSnapshot(snapshot *firestore.QuerySnapshot) ([]*entity.House, error) {
	houses := make([]*entity.House, 0)
	for {
		doc, err := snapshot.Documents.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate snapshot documents")
		}

		house, err := decodeHouse(doc)
		if err != nil {
			r.logger.Warn("skipping undecodable house document",
				slog.String("id", doc.Ref.ID),
				slog.Any("error", err),
			)

			continue
		}
		houses = append(houses, house)
	}

	return houses, nil
}

func decodeHouse(snapshot *firestore.DocumentSnapshot) (*entity.House, error) {
	var m model.HouseModel
	if err := snapshot.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "decode house document")
	}

	return m.ToHouseEntity(snapshot.Ref.ID), nil
}

// translateWriteError maps store refusals (security rules, missing
// permissions) onto the domain sentinel so the optimistic write path can
// report them uniformly.
func translateWriteError(err error, msg string) error {
	if status.Code(err) == codes.PermissionDenied {
		return repository.ErrPersistenceRejected
	}

	return errors.Wrap(err, msg)
}
