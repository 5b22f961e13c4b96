package notify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/domain/timeline"
	"m2_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// InAppChannel writes the row shown in the client's notification bell.
// Only events addressed to a signed-in client produce a row.
type InAppChannel struct {
	repo interfaces.INotificationRepository
}

func NewInAppChannel(repo interfaces.INotificationRepository) *InAppChannel {
	return &InAppChannel{repo: repo}
}

func (c *InAppChannel) Name() string { return "in_app" }

func (c *InAppChannel) Deliver(ctx context.Context, ev entities.NotificationEvent) error {
	if ev.RecipientID == "" {
		return nil
	}
	n, ok := inAppNotification(ev)
	if !ok {
		return nil
	}
	n.ID = deliveryKey(ev, c.Name())
	n.UserID = ev.RecipientID
	n.OrderID = ev.OrderID
	n.CreatedAt = ev.OccurredAt
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	_, err := c.repo.Create(ctx, n)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		log.Printf("[notify][in_app] already delivered event_id=%s id=%s", ev.ID, n.ID)
		return nil
	}
	return err
}

// deliveryKey is stable for one event and channel, so a retried delivery
// writes the same row id.
func deliveryKey(ev entities.NotificationEvent, channel string) string {
	if ev.ID == "" {
		return uuid.NewString()
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(ev.ID+"/"+channel)).String()
}

func inAppNotification(ev entities.NotificationEvent) (entities.Notification, bool) {
	switch ev.Type {
	case entities.EventStatusChanged:
		msg := fmt.Sprintf("Your %s order is now %s.", ev.ServiceType, timeline.Label(ev.Status))
		if ev.Note != "" {
			msg += " " + ev.Note
		}
		return entities.Notification{Type: entities.NotificationTypeOrderUpdate, Title: "Order status updated", Message: msg}, true
	case entities.EventOrderDelivered:
		return entities.Notification{
			Type:    entities.NotificationTypeDelivery,
			Title:   "Your project is ready!",
			Message: fmt.Sprintf("Your %s order has been delivered. Download your files from the dashboard.", ev.ServiceType),
		}, true
	case entities.EventMessageNew:
		return entities.Notification{
			Type:    entities.NotificationTypeMessage,
			Title:   "New message from M2 Studio",
			Message: truncate(ev.Text, 140),
		}, true
	}
	return entities.Notification{}, false
}
