// Package dashboard computes order counts and filters for the client and
// admin dashboards.
package dashboard

import (
	"fmt"
	"strings"

	"m2_studio/internal/domain/entities"
)

const FilterAll = "all"

type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Working   int `json:"working"`
	Delivered int `json:"delivered"`
	Cancelled int `json:"cancelled"`
}

// Aggregate counts orders per status. Orders carrying an unknown status are
// left out so Total always equals the sum of the buckets.
func Aggregate(orders []entities.Order) Stats {
	var s Stats
	for _, o := range orders {
		switch o.Status {
		case entities.OrderStatusPending:
			s.Pending++
		case entities.OrderStatusWorking:
			s.Working++
		case entities.OrderStatusDelivered:
			s.Delivered++
		case entities.OrderStatusCancelled:
			s.Cancelled++
		default:
			continue
		}
		s.Total++
	}
	return s
}

// ParseFilter accepts "all", an empty string (same as all) or a status.
func ParseFilter(raw string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" || v == FilterAll {
		return FilterAll, nil
	}
	s, err := entities.ParseOrderStatus(v)
	if err != nil {
		return "", fmt.Errorf("invalid status filter: %w", err)
	}
	return string(s), nil
}

func FilterByStatus(orders []entities.Order, filter string) []entities.Order {
	if filter == FilterAll || filter == "" {
		return orders
	}
	out := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if string(o.Status) == filter {
			out = append(out, o)
		}
	}
	return out
}
