// Package timeline projects an order's status history into display entries.
package timeline

import (
	"time"

	"m2_studio/internal/domain/entities"
)

const TimeLayout = "Jan 2, 2006, 03:04 PM"

var labels = map[entities.OrderStatus]string{
	entities.OrderStatusPending:   "Order Placed",
	entities.OrderStatusWorking:   "In Progress",
	entities.OrderStatusDelivered: "Delivered",
	entities.OrderStatusCancelled: "Cancelled",
}

type Entry struct {
	Status        entities.OrderStatus `json:"status"`
	Label         string               `json:"label"`
	Timestamp     time.Time            `json:"timestamp"`
	FormattedTime string               `json:"formatted_time"`
	UpdatedBy     string               `json:"updated_by,omitempty"`
	Note          string               `json:"note,omitempty"`
	IsCurrent     bool                 `json:"is_current"`
}

// Label returns the display label for a status, or the raw value when the
// status is not known.
func Label(s entities.OrderStatus) string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

// Project keeps the stored order; only the last entry is current.
func Project(history []entities.StatusHistoryEntry) []Entry {
	out := make([]Entry, 0, len(history))
	for i, h := range history {
		out = append(out, Entry{
			Status:        h.Status,
			Label:         Label(h.Status),
			Timestamp:     h.Timestamp,
			FormattedTime: h.Timestamp.UTC().Format(TimeLayout),
			UpdatedBy:     h.UpdatedByName,
			Note:          h.Note,
			IsCurrent:     i == len(history)-1,
		})
	}
	return out
}
