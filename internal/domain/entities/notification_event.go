package entities

import "time"

// EventType names an outbox event. The worker fans each event out to the
// configured channels (email, chat webhooks, in-app notifications).
type EventType string

const (
	EventOrderSubmitted  EventType = "order.submitted"
	EventStatusChanged   EventType = "order.status_changed"
	EventOrderDelivered  EventType = "order.delivered"
	EventMessageNew      EventType = "message.new"
	EventReviewSubmitted EventType = "review.submitted"
	EventJoinSubmitted   EventType = "join.submitted"
)

// NotificationEvent is the payload handed to the notification outbox. ID
// identifies one occurrence; channels derive their idempotency keys from it.
type NotificationEvent struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	OrderID     string      `json:"order_id"`
	RecipientID string      `json:"recipient_id,omitempty"`
	Email       string      `json:"email,omitempty"`
	UserName    string      `json:"user_name,omitempty"`
	Whatsapp    string      `json:"whatsapp,omitempty"`
	ServiceType string      `json:"service_type,omitempty"`
	Description string      `json:"description,omitempty"`
	Deadline    string      `json:"deadline,omitempty"`
	Budget      string      `json:"budget,omitempty"`
	RawFileLink string      `json:"raw_file_link,omitempty"`
	Status      OrderStatus `json:"status,omitempty"`
	Note        string      `json:"note,omitempty"`
	Text        string      `json:"text,omitempty"`
	Rating      int         `json:"rating,omitempty"`
	OccurredAt  time.Time   `json:"occurred_at"`

	Application *Application `json:"application,omitempty"`
}

// JoinEvent carries a team application to the staff channels.
func JoinEvent(a Application) NotificationEvent {
	return NotificationEvent{
		Type:        EventJoinSubmitted,
		UserName:    a.FullName,
		OccurredAt:  a.SubmittedAt.UTC(),
		Application: &a,
	}
}

// OrderEvent fills the order fields every event carries.
func OrderEvent(t EventType, o Order, now time.Time) NotificationEvent {
	return NotificationEvent{
		Type:        t,
		OrderID:     o.ID,
		RecipientID: o.UserID,
		Email:       o.UserEmail,
		UserName:    o.UserName,
		Whatsapp:    o.UserWhatsapp,
		ServiceType: o.ServiceType,
		Description: o.Description,
		Deadline:    o.Deadline,
		Budget:      o.Budget,
		RawFileLink: o.RawFileLink,
		Status:      o.Status,
		OccurredAt:  now.UTC(),
	}
}
