package order

import (
	"strings"

	"pyronix-studio/internal/pkg/model"
)

// StatusAll disables status filtering in FilterOrders.
const StatusAll = "all"

// FilterOrders narrows a fetched snapshot locally: case-insensitive substring
// match over email, handle and title, intersected with an exact status match.
// Pure, no round-trip.
func FilterOrders(orders []model.Order, term string, status string) []model.Order {
	term = strings.ToLower(strings.TrimSpace(term))

	filtered := make([]model.Order, 0, len(orders))
	for _, order := range orders {
		if term != "" &&
			!strings.Contains(strings.ToLower(order.Email), term) &&
			!strings.Contains(strings.ToLower(order.Handle), term) &&
			!strings.Contains(strings.ToLower(order.Title), term) {
			continue
		}
		if status != "" && status != StatusAll && string(order.Status) != status {
			continue
		}
		filtered = append(filtered, order)
	}
	return filtered
}
