package entities

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultBudget        = "Not specified"
	DefaultUpdatedByName = "Admin"
)

// Order is one client engagement.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id, sorted by created_at
//
// StatusHistory is append-only and kept in insertion order. Status always
// equals the status of the last history entry; the repository only exposes
// writes that update both together.
type Order struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id,omitempty"`
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email"`
	UserWhatsapp string `json:"user_whatsapp"`

	ServiceType string `json:"service_type"`
	Description string `json:"description"`
	Deadline    string `json:"deadline,omitempty"`
	Budget      string `json:"budget"`
	Price       string `json:"price,omitempty"`
	RawFileLink string `json:"raw_file_link,omitempty"`

	Status        OrderStatus          `json:"status"`
	StatusHistory []StatusHistoryEntry `json:"status_history"`
	FileURLs      []string             `json:"file_urls,omitempty"`
	DownloadURLs  []string             `json:"download_urls,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

// StatusHistoryEntry records one transition. Entries are never edited or
// removed once written.
type StatusHistoryEntry struct {
	Status        OrderStatus `json:"status"`
	Timestamp     time.Time   `json:"timestamp"`
	UpdatedBy     string      `json:"updated_by,omitempty"`
	UpdatedByName string      `json:"updated_by_name,omitempty"`
	Note          string      `json:"note,omitempty"`
}

// Actor identifies who performed a status change.
type Actor struct {
	ID   string
	Name string
}

func NewStatusHistoryEntry(status OrderStatus, actor Actor, note string, now time.Time) StatusHistoryEntry {
	name := strings.TrimSpace(actor.Name)
	if name == "" {
		name = DefaultUpdatedByName
	}
	return StatusHistoryEntry{
		Status:        status,
		Timestamp:     now.UTC(),
		UpdatedBy:     strings.TrimSpace(actor.ID),
		UpdatedByName: name,
		Note:          strings.TrimSpace(note),
	}
}

// CheckTransition reports whether the order may move to next.
func (o Order) CheckTransition(next OrderStatus) error {
	if !next.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownOrderStatus, next)
	}
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
	}
	return nil
}

// AppendStatus applies entry to the in-memory order: status, updated_at,
// delivered_at and the history log move together.
func (o *Order) AppendStatus(entry StatusHistoryEntry) {
	history := make([]StatusHistoryEntry, 0, len(o.StatusHistory)+1)
	history = append(history, o.StatusHistory...)
	o.StatusHistory = append(history, entry)
	o.Status = entry.Status
	o.UpdatedAt = entry.Timestamp
	if entry.Status == OrderStatusDelivered {
		ts := entry.Timestamp
		o.DeliveredAt = &ts
	}
}

// CurrentStatus derives the status from the history log when present.
func (o Order) CurrentStatus() OrderStatus {
	if n := len(o.StatusHistory); n > 0 {
		return o.StatusHistory[n-1].Status
	}
	return o.Status
}

func (o Order) IsConsistent() bool {
	if len(o.StatusHistory) == 0 {
		return true
	}
	return o.Status == o.CurrentStatus()
}

func (o Order) IsOwnedBy(userID string) bool {
	return userID != "" && o.UserID == userID
}

// AcceptsClientFiles is true while the studio has not finished the order.
func (o Order) AcceptsClientFiles() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusWorking
}
