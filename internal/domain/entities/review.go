package entities

import "time"

const (
	MinReviewRating = 1
	MaxReviewRating = 5
)

// Review is client feedback on a delivered order.
//
// Storage model (DynamoDB):
//   - PK: order_id (one review per order)
type Review struct {
	OrderID     string    `json:"order_id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	Rating      int       `json:"rating"`
	Text        string    `json:"review"`
	ServiceType string    `json:"service_type"`
	CreatedAt   time.Time `json:"created_at"`
}
