package interfaces

import (
	"context"
	"m2_studio/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for in-app
// notifications. The worker writes them; the API lists and marks them read.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	GetByID(ctx context.Context, id string) (entities.Notification, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) error
}
