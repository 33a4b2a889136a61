package order

import (
	"testing"

	"pyronix-studio/internal/pkg/model"

	"github.com/stretchr/testify/assert"
)

func TestFilterOrders(t *testing.T) {
	orders := []model.Order{
		{ID: "1", Email: "fan@mail.com", Handle: "popstar99", Title: "Nuit", Status: model.StatusNew},
		{ID: "2", Email: "other@mail.com", Handle: "rockman", Title: "Aube", Status: model.StatusDone},
		{ID: "3", Email: "popstar@mail.com", Handle: "dj_x", Title: "Feu", Status: model.StatusDelivered},
	}

	t.Run("substring over handle regardless of status", func(t *testing.T) {
		got := FilterOrders(orders, "popstar", StatusAll)
		assert.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		got := FilterOrders(orders, "POPSTAR99", StatusAll)
		assert.Len(t, got, 1)
		assert.Equal(t, "popstar99", got[0].Handle)
	})

	t.Run("matches title and email too", func(t *testing.T) {
		assert.Len(t, FilterOrders(orders, "aube", StatusAll), 1)
		assert.Len(t, FilterOrders(orders, "other@", StatusAll), 1)
	})

	t.Run("status intersects with search", func(t *testing.T) {
		got := FilterOrders(orders, "popstar", string(model.StatusDelivered))
		assert.Len(t, got, 1)
		assert.Equal(t, "3", got[0].ID)
	})

	t.Run("empty term with status filter", func(t *testing.T) {
		got := FilterOrders(orders, "", string(model.StatusDone))
		assert.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("all statuses and empty term returns everything", func(t *testing.T) {
		assert.Len(t, FilterOrders(orders, "", StatusAll), 3)
		assert.Len(t, FilterOrders(orders, "", ""), 3)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		assert.Empty(t, FilterOrders(orders, "zzz", StatusAll))
	})
}
