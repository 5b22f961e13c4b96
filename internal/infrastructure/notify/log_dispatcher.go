package notify

import (
	"context"
	"log"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase/interfaces"
)

// LogDispatcher only logs events. Used in development when neither Redis
// nor RabbitMQ is available.
type LogDispatcher struct{}

var _ interfaces.INotifier = LogDispatcher{}

func (LogDispatcher) Dispatch(_ context.Context, event entities.NotificationEvent) error {
	log.Printf("[notify][log] event type=%s order_id=%s recipient=%s status=%s", event.Type, event.OrderID, event.RecipientID, event.Status)
	return nil
}

func (LogDispatcher) Close() error { return nil }
