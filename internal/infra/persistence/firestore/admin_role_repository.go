package firestore

import (
	"context"

	"domkarta/internal/domain/constants"
	"domkarta/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type adminRoleRepository struct {
	client *firestore.Client
}

// NewAdminRoleRepository creates the admin-role lookup. Admin rights are
// granted by the existence of a roles_admin/{uid} document; the document
// body carries nothing.
func NewAdminRoleRepository(client *firestore.Client) repository.AdminRoleRepository {
	return &adminRoleRepository{client: client}
}

func (r *adminRoleRepository) IsAdmin(ctx context.Context, uid string) (bool, error) {
	_, err := r.client.Collection(constants.AdminRolesCollection).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "get admin role document")
	}

	return true, nil
}
