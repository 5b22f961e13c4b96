package interfaces

import (
	"context"
	"m2_studio/internal/domain/entities"
)

// IMessageRepository abstracts DynamoDB persistence for order chat messages.
type IMessageRepository interface {
	Create(ctx context.Context, m entities.Message) (entities.Message, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Message, error)
	MarkRead(ctx context.Context, id string) error
}
