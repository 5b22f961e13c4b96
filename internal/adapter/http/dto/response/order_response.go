package response

import (
	"time"

	"m2_studio/internal/domain/dashboard"
	"m2_studio/internal/domain/entities"
	"m2_studio/internal/domain/timeline"
)

type StatusHistoryResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	UpdatedBy     string    `json:"updated_by,omitempty"`
	UpdatedByName string    `json:"updated_by_name,omitempty"`
	Note          string    `json:"note,omitempty"`
}

type OrderResponse struct {
	ID            string                  `json:"id"`
	UserID        string                  `json:"user_id,omitempty"`
	UserName      string                  `json:"user_name"`
	UserEmail     string                  `json:"user_email"`
	UserWhatsapp  string                  `json:"user_whatsapp"`
	ServiceType   string                  `json:"service_type"`
	Description   string                  `json:"project_description"`
	Deadline      string                  `json:"deadline,omitempty"`
	Budget        string                  `json:"budget"`
	Price         string                  `json:"price,omitempty"`
	RawFileLink   string                  `json:"raw_file_link,omitempty"`
	Status        string                  `json:"status"`
	StatusLabel   string                  `json:"status_label"`
	StatusHistory []StatusHistoryResponse `json:"status_history"`
	FileURLs      []string                `json:"file_urls"`
	DownloadURLs  []string                `json:"download_urls"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
	DeliveredAt   *time.Time              `json:"delivered_at,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	history := make([]StatusHistoryResponse, 0, len(o.StatusHistory))
	for _, h := range o.StatusHistory {
		history = append(history, StatusHistoryResponse{
			Status:        string(h.Status),
			Timestamp:     h.Timestamp,
			UpdatedBy:     h.UpdatedBy,
			UpdatedByName: h.UpdatedByName,
			Note:          h.Note,
		})
	}
	return OrderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		UserName:      o.UserName,
		UserEmail:     o.UserEmail,
		UserWhatsapp:  o.UserWhatsapp,
		ServiceType:   o.ServiceType,
		Description:   o.Description,
		Deadline:      o.Deadline,
		Budget:        o.Budget,
		Price:         o.Price,
		RawFileLink:   o.RawFileLink,
		Status:        string(o.Status),
		StatusLabel:   timeline.Label(o.Status),
		StatusHistory: history,
		FileURLs:      nonNil(o.FileURLs),
		DownloadURLs:  nonNil(o.DownloadURLs),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		DeliveredAt:   o.DeliveredAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type OrderListResponse struct {
	Status string          `json:"status"`
	Count  int             `json:"count"`
	Orders []OrderResponse `json:"orders"`
}

func NewOrderList(filter string, orders []entities.Order) OrderListResponse {
	if filter == "" {
		filter = dashboard.FilterAll
	}
	return OrderListResponse{Status: filter, Count: len(orders), Orders: FromOrders(orders)}
}

type TimelineResponse struct {
	OrderID string           `json:"order_id"`
	Status  string           `json:"status"`
	Entries []timeline.Entry `json:"entries"`
}

func FromTimeline(o entities.Order) TimelineResponse {
	return TimelineResponse{OrderID: o.ID, Status: string(o.Status), Entries: timeline.Project(o.StatusHistory)}
}

type DownloadsResponse struct {
	OrderID string   `json:"order_id"`
	URLs    []string `json:"urls"`
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
