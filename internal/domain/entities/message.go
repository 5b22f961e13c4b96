package entities

import "time"

type SenderRole string

const (
	SenderRoleClient SenderRole = "client"
	SenderRoleAdmin  SenderRole = "admin"
)

// Message is one chat line scoped to an order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id, sorted by created_at
type Message struct {
	ID         string     `json:"id"`
	OrderID    string     `json:"order_id"`
	SenderID   string     `json:"sender_id"`
	SenderName string     `json:"sender_name"`
	SenderRole SenderRole `json:"sender_role"`
	Body       string     `json:"message"`
	FileURL    string     `json:"file_url,omitempty"`
	FileName   string     `json:"file_name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	Read       bool       `json:"read"`
}
