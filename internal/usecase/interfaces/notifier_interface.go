package interfaces

import (
	"context"
	"m2_studio/internal/domain/entities"
)

// INotifier hands an event to the notification outbox and returns without
// waiting for delivery. Delivery, fan-out and retries happen in the worker.
type INotifier interface {
	Dispatch(ctx context.Context, event entities.NotificationEvent) error
}
