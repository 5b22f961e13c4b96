package usecase

import (
	"context"
	"log"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// dispatchBestEffort hands event to the outbox. A failure is logged and
// dropped: the write that produced the event is already committed.
func dispatchBestEffort(ctx context.Context, n interfaces.INotifier, area string, event entities.NotificationEvent) {
	if n == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if err := n.Dispatch(ctx, event); err != nil {
		nerr := &NotificationError{Event: string(event.Type), Err: err}
		log.Printf("[%s][usecase] notify failed order_id=%s err=%v", area, event.OrderID, nerr)
	}
}

func publishChange(feed interfaces.IChangeFeed, event entities.ChangeEvent, topics ...string) {
	if feed == nil {
		return
	}
	for _, topic := range topics {
		if topic == "" {
			continue
		}
		feed.Publish(topic, event)
	}
}

func publishOrder(feed interfaces.IChangeFeed, kind string, o entities.Order) {
	topics := []string{entities.OrderTopic(o.ID), entities.TopicAllOrders}
	if o.UserID != "" {
		topics = append(topics, entities.UserOrdersTopic(o.UserID))
	}
	publishChange(feed, entities.ChangeEvent{Type: kind, Data: o}, topics...)
}

// progressLogger logs upload progress at every quarter of the total size.
func progressLogger(area, key string) interfaces.ProgressFunc {
	next := int64(25)
	return func(sent, total int64) {
		if total <= 0 {
			return
		}
		pct := sent * 100 / total
		for pct >= next && next <= 100 {
			log.Printf("[%s][usecase] upload progress key=%s pct=%d", area, key, next)
			next += 25
		}
	}
}
