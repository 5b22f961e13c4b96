package response

import (
	"testing"
	"time"

	"m2_studio/internal/domain/entities"
)

func TestFromOrder(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	o := entities.Order{
		ID:          "o1",
		UserName:    "Ana",
		ServiceType: "Reels",
		Status:      entities.OrderStatusWorking,
		StatusHistory: []entities.StatusHistoryEntry{
			{Status: entities.OrderStatusPending, Timestamp: now, UpdatedByName: "Ana"},
			{Status: entities.OrderStatusWorking, Timestamp: now.Add(time.Hour), UpdatedByName: "Admin", Note: "Started"},
		},
	}

	got := FromOrder(o)
	if got.StatusLabel != "In Progress" || len(got.StatusHistory) != 2 || got.StatusHistory[1].Note != "Started" {
		t.Fatalf("unexpected response %+v", got)
	}
	if got.FileURLs == nil || got.DownloadURLs == nil {
		t.Fatalf("url lists should serialize as empty arrays")
	}

	tl := FromTimeline(o)
	if len(tl.Entries) != 2 || !tl.Entries[1].IsCurrent || tl.Entries[0].IsCurrent {
		t.Fatalf("unexpected timeline %+v", tl)
	}
}

func TestNewOrderList_DefaultsFilter(t *testing.T) {
	l := NewOrderList("", []entities.Order{{ID: "o1"}})
	if l.Status != "all" || l.Count != 1 {
		t.Fatalf("unexpected list %+v", l)
	}
}

func TestFromNotifications_CountsUnread(t *testing.T) {
	l := FromNotifications([]entities.Notification{{ID: "n1"}, {ID: "n2", Read: true}, {ID: "n3"}})
	if l.Unread != 2 || len(l.Notifications) != 3 {
		t.Fatalf("unexpected list %+v", l)
	}
}

func TestFromReview_HidesContactFields(t *testing.T) {
	r := FromReview(entities.Review{OrderID: "o1", UserID: "u1", UserEmail: "a@b.c", UserName: "Ana", Rating: 5, Text: "Great"})
	if r.Review != "Great" || r.Rating != 5 || r.UserName != "Ana" {
		t.Fatalf("unexpected review %+v", r)
	}
}
