package timeline

import (
	"reflect"
	"testing"
	"time"

	"m2_studio/internal/domain/entities"
)

func TestProject(t *testing.T) {
	t0 := time.Date(2025, 1, 5, 14, 30, 0, 0, time.UTC)
	history := []entities.StatusHistoryEntry{
		{Status: entities.OrderStatusPending, Timestamp: t0, UpdatedByName: "Jane"},
		{Status: entities.OrderStatusWorking, Timestamp: t0.Add(-time.Hour), UpdatedByName: "Admin", Note: "started"},
		{Status: entities.OrderStatusDelivered, Timestamp: t0.Add(48 * time.Hour)},
	}
	snapshot := append([]entities.StatusHistoryEntry(nil), history...)

	got := Project(history)
	if len(got) != len(history) {
		t.Fatalf("expected %d entries, got %d", len(history), len(got))
	}
	for i := range history {
		if got[i].Status != history[i].Status {
			t.Fatalf("entry %d reordered: %s != %s", i, got[i].Status, history[i].Status)
		}
	}
	if got[0].Label != "Order Placed" || got[1].Label != "In Progress" || got[2].Label != "Delivered" {
		t.Fatalf("unexpected labels: %+v", got)
	}
	if got[0].FormattedTime != "Jan 5, 2025, 02:30 PM" {
		t.Fatalf("unexpected formatted time %q", got[0].FormattedTime)
	}
	if got[2].UpdatedBy != "" || got[1].Note != "started" {
		t.Fatalf("unexpected actor/note: %+v", got)
	}

	current := 0
	for i, e := range got {
		if e.IsCurrent {
			current++
			if i != len(got)-1 {
				t.Fatalf("only the last entry may be current")
			}
		}
	}
	if current != 1 {
		t.Fatalf("expected exactly one current entry, got %d", current)
	}

	if !reflect.DeepEqual(Project(history), got) {
		t.Fatalf("projection must be deterministic")
	}
	if !reflect.DeepEqual(history, snapshot) {
		t.Fatalf("input must not be mutated")
	}
}

func TestProject_Empty(t *testing.T) {
	got := Project(nil)
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}

func TestLabel_Unknown(t *testing.T) {
	if got := Label("archived"); got != "archived" {
		t.Fatalf("expected raw status, got %q", got)
	}
	if got := Label(entities.OrderStatusCancelled); got != "Cancelled" {
		t.Fatalf("unexpected label %q", got)
	}
}
