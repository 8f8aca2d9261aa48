package user

import (
	"context"
)

type UserRepository interface {
	// GetByLogin finds a user by email or badge
	GetByLogin(ctx context.Context, login string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByRole(ctx context.Context, role Role) (bool, error)
}
