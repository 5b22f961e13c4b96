package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase/interfaces"
)

// ProfileInput is the editable part of the signed-in user's profile.
type ProfileInput struct {
	Name    string
	Phone   string
	Company string
}

type IProfileUseCase interface {
	Update(ctx context.Context, p entities.Principal, in ProfileInput) (entities.User, error)
}

type ProfileUseCase struct {
	users interfaces.IUserRepository
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(users interfaces.IUserRepository) *ProfileUseCase {
	return &ProfileUseCase{users: users}
}

// Update stores name, phone and company. Email and role are owned by the
// auth provider and the studio and cannot be changed here.
func (u *ProfileUseCase) Update(ctx context.Context, p entities.Principal, in ProfileInput) (entities.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.User{}, newValidationError("name", "required")
	}
	updated, err := u.users.UpdateProfile(ctx, p.ID, entities.ProfileUpdate{
		DisplayName: name,
		Phone:       strings.TrimSpace(in.Phone),
		Company:     strings.TrimSpace(in.Company),
	}, time.Now().UTC())
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.User{}, ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, newStorageError("update profile", err)
	}
	log.Printf("[profile][usecase] updated user_id=%s", p.ID)
	return updated, nil
}
