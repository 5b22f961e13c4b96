package usecase

import (
	"context"
	"sort"
	"strings"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase/interfaces"
)

// INotificationUseCase backs the in-app notification bell.
type INotificationUseCase interface {
	List(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) (int, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// List returns the user's notifications newest first.
func (u *NotificationUseCase) List(ctx context.Context, userID string) ([]entities.Notification, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, newValidationError("user_id", "required")
	}
	items, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, newStorageError("list notifications", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, userID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return newValidationError("id", "required")
	}
	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return newStorageError("get notification", err)
	}
	// Someone else's notification is reported as missing.
	if n.ID == "" || n.UserID != userID {
		return ErrNotificationNotFound
	}
	if n.Read {
		return nil
	}
	if err := u.repo.MarkRead(ctx, n.ID); err != nil {
		return newStorageError("mark notification read", err)
	}
	return nil
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) (int, error) {
	items, err := u.List(ctx, userID)
	if err != nil {
		return 0, err
	}
	marked := 0
	for _, n := range items {
		if n.Read {
			continue
		}
		if err := u.repo.MarkRead(ctx, n.ID); err != nil {
			return marked, newStorageError("mark notification read", err)
		}
		marked++
	}
	return marked, nil
}
