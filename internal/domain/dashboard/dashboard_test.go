package dashboard

import (
	"errors"
	"testing"

	"m2_studio/internal/domain/entities"
)

func orders(statuses ...entities.OrderStatus) []entities.Order {
	out := make([]entities.Order, 0, len(statuses))
	for i, s := range statuses {
		out = append(out, entities.Order{ID: string(rune('a' + i)), Status: s})
	}
	return out
}

func TestAggregate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := Aggregate(nil); got != (Stats{}) {
			t.Fatalf("expected zero stats, got %+v", got)
		}
	})

	t.Run("mixed", func(t *testing.T) {
		in := orders(
			entities.OrderStatusPending, entities.OrderStatusWorking, entities.OrderStatusWorking,
			entities.OrderStatusDelivered, entities.OrderStatusCancelled, entities.OrderStatusPending,
		)
		got := Aggregate(in)
		want := Stats{Total: 6, Pending: 2, Working: 2, Delivered: 1, Cancelled: 1}
		if got != want {
			t.Fatalf("expected %+v got %+v", want, got)
		}
		if got.Total != got.Pending+got.Working+got.Delivered+got.Cancelled {
			t.Fatalf("total must equal bucket sum")
		}
	})

	t.Run("unknown status ignored", func(t *testing.T) {
		got := Aggregate(orders(entities.OrderStatusPending, "archived"))
		if got.Total != 1 || got.Pending != 1 {
			t.Fatalf("unexpected stats %+v", got)
		}
	})
}

func TestFilterByStatus(t *testing.T) {
	in := orders(entities.OrderStatusPending, entities.OrderStatusWorking, entities.OrderStatusPending)

	all := FilterByStatus(in, FilterAll)
	if len(all) != 3 {
		t.Fatalf("expected all orders, got %d", len(all))
	}

	pending := FilterByStatus(in, string(entities.OrderStatusPending))
	if len(pending) != 2 || pending[0].ID != "a" || pending[1].ID != "c" {
		t.Fatalf("expected stable filtered order, got %+v", pending)
	}

	if got := FilterByStatus(in, string(entities.OrderStatusDelivered)); len(got) != 0 {
		t.Fatalf("expected no delivered orders, got %d", len(got))
	}
}

func TestParseFilter(t *testing.T) {
	if f, err := ParseFilter(""); err != nil || f != FilterAll {
		t.Fatalf("expected all, got %q %v", f, err)
	}
	if f, err := ParseFilter(" Delivered "); err != nil || f != "delivered" {
		t.Fatalf("expected delivered, got %q %v", f, err)
	}
	if _, err := ParseFilter("shipped"); !errors.Is(err, entities.ErrUnknownOrderStatus) {
		t.Fatalf("expected ErrUnknownOrderStatus, got %v", err)
	}
}
