package interfaces

import (
	"context"
	"time"

	"m2_studio/internal/domain/entities"
)

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	Create(ctx context.Context, u entities.User) (entities.User, error)
	// UpdateProfile returns ErrConditionFailed when the user does not exist.
	UpdateProfile(ctx context.Context, id string, p entities.ProfileUpdate, at time.Time) (entities.User, error)
}
