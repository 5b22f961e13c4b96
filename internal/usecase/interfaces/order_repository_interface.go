package interfaces

import (
	"context"
	"m2_studio/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Reads of a missing order return a zero Order and a nil error.
// There is deliberately no way to set status without appending history:
//   - AppendStatus writes status, updated_at, delivered_at and the history
//     entry in one conditional update guarded by the expected current status
//   - Append*URLs use the store's list append so concurrent uploads do not
//     clobber each other
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Order, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
	AppendStatus(ctx context.Context, id string, from entities.OrderStatus, entry entities.StatusHistoryEntry) (entities.Order, error)
	AppendDownloadURLs(ctx context.Context, id string, urls []string) (entities.Order, error)
	AppendFileURLs(ctx context.Context, id string, urls []string) (entities.Order, error)
	UpdatePrice(ctx context.Context, id string, price string) (entities.Order, error)
}
