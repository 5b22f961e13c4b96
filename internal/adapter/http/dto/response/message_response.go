package response

import (
	"time"

	"m2_studio/internal/domain/entities"
)

type MessageResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	SenderRole string    `json:"sender_role"`
	Message    string    `json:"message"`
	FileURL    string    `json:"file_url,omitempty"`
	FileName   string    `json:"file_name,omitempty"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromMessage(m entities.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		OrderID:    m.OrderID,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		SenderRole: string(m.SenderRole),
		Message:    m.Body,
		FileURL:    m.FileURL,
		FileName:   m.FileName,
		Read:       m.Read,
		CreatedAt:  m.CreatedAt,
	}
}

func FromMessages(msgs []entities.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, FromMessage(m))
	}
	return out
}

type ThreadResponse struct {
	OrderID  string            `json:"order_id"`
	Unread   int               `json:"unread"`
	Messages []MessageResponse `json:"messages"`
}

type MarkedResponse struct {
	Marked int `json:"marked"`
}

type ReviewResponse struct {
	OrderID     string    `json:"order_id"`
	UserName    string    `json:"user_name"`
	Rating      int       `json:"rating"`
	Review      string    `json:"review"`
	ServiceType string    `json:"service_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromReview leaves out the reviewer's email and uid; reviews are public.
func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse{
		OrderID:     r.OrderID,
		UserName:    r.UserName,
		Rating:      r.Rating,
		Review:      r.Text,
		ServiceType: r.ServiceType,
		CreatedAt:   r.CreatedAt,
	}
}

func FromReviews(rs []entities.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReview(r))
	}
	return out
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	OrderID   string    `json:"order_id,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Unread        int                    `json:"unread"`
	Notifications []NotificationResponse `json:"notifications"`
}

func FromNotifications(ns []entities.Notification) NotificationListResponse {
	out := NotificationListResponse{Notifications: make([]NotificationResponse, 0, len(ns))}
	for _, n := range ns {
		if !n.Read {
			out.Unread++
		}
		out.Notifications = append(out.Notifications, NotificationResponse{
			ID:        n.ID,
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			OrderID:   n.OrderID,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}
