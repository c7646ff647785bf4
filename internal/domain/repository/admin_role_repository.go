package repository

import "context"

// AdminRoleRepository checks administrator membership. A user is an admin
// when a role document keyed by their UID exists.
type AdminRoleRepository interface {
	IsAdmin(ctx context.Context, uid string) (bool, error)
}
