package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"m2_studio/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Task type constants
const (
	TaskOrderSubmitted  = "notify:order_submitted"
	TaskStatusChanged   = "notify:status_changed"
	TaskOrderDelivered  = "notify:delivered"
	TaskMessageNew      = "notify:message_new"
	TaskReviewSubmitted = "notify:review_submitted"
	TaskJoinSubmitted   = "notify:join_submitted"
	TaskDeliver         = "notify:deliver"

	QueueNotifications = "notifications"
	MaxRetry           = 5

	// Completed delivery tasks keep their id this long so a re-run split
	// does not enqueue them again.
	deliveryRetention = 24 * time.Hour
)

var taskTypes = map[entities.EventType]string{
	entities.EventOrderSubmitted:  TaskOrderSubmitted,
	entities.EventStatusChanged:   TaskStatusChanged,
	entities.EventOrderDelivered:  TaskOrderDelivered,
	entities.EventMessageNew:      TaskMessageNew,
	entities.EventReviewSubmitted: TaskReviewSubmitted,
	entities.EventJoinSubmitted:   TaskJoinSubmitted,
}

// TaskTypes lists every task type the worker must register.
func TaskTypes() []string {
	return []string{TaskOrderSubmitted, TaskStatusChanged, TaskOrderDelivered, TaskMessageNew, TaskReviewSubmitted, TaskJoinSubmitted}
}

func TaskTypeFor(t entities.EventType) (string, error) {
	tt, ok := taskTypes[t]
	if !ok {
		return "", fmt.Errorf("no task type for event %q", t)
	}
	return tt, nil
}

// NewTask wraps event in an asynq task on the notifications queue.
func NewTask(event entities.NotificationEvent) (*asynq.Task, error) {
	tt, err := TaskTypeFor(event.Type)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(withEventID(event))
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(tt, b, asynq.Queue(QueueNotifications), asynq.MaxRetry(MaxRetry)), nil
}

// Delivery is one event bound to one channel.
type Delivery struct {
	Channel string                     `json:"channel"`
	Event   entities.NotificationEvent `json:"event"`
	Attempt int                        `json:"attempt,omitempty"`
}

// DeliveryTaskID is unique per event and channel.
func DeliveryTaskID(d Delivery) string {
	return d.Event.ID + ":" + d.Channel
}

func NewDeliveryTask(d Delivery) (*asynq.Task, error) {
	if d.Event.ID == "" {
		return nil, fmt.Errorf("delivery for %s has no event id", d.Channel)
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDeliver, b,
		asynq.Queue(QueueNotifications),
		asynq.MaxRetry(MaxRetry),
		asynq.TaskID(DeliveryTaskID(d)),
		asynq.Retention(deliveryRetention),
	), nil
}

func decodeDelivery(payload []byte) (Delivery, error) {
	var d Delivery
	if err := json.Unmarshal(payload, &d); err != nil {
		return Delivery{}, err
	}
	if d.Channel == "" || d.Event.ID == "" {
		return Delivery{}, fmt.Errorf("delivery without channel or event id")
	}
	return d, nil
}

func withEventID(event entities.NotificationEvent) entities.NotificationEvent {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	return event
}

func decodeEvent(payload []byte) (entities.NotificationEvent, error) {
	var ev entities.NotificationEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return entities.NotificationEvent{}, err
	}
	return ev, nil
}
