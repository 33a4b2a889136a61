package order

import (
	"context"
	"log/slog"
	"time"

	"pyronix-studio/internal/pkg/model"

	"github.com/google/uuid"
)

type Service interface {
	NewOrder(ctx context.Context, order model.Order) (*model.Order, error)
	GetOrders(ctx context.Context) ([]model.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error
	DeleteOrder(ctx context.Context, orderID string) error
}

type DefaultService struct {
	repo Repo
}

func NewDefaultService(repo Repo) Service {
	return &DefaultService{
		repo: repo,
	}
}

// NewOrder persists a freshly submitted brief. The identifier, reference,
// creation timestamp and initial status are assigned here, not by the caller.
func (d *DefaultService) NewOrder(ctx context.Context, order model.Order) (*model.Order, error) {
	order.ID = uuid.NewString()
	order.Status = model.StatusNew
	order.CreatedAt = time.Now().UTC()
	order.Reference = createOrderReference(order.Handle, order.Title, order.CreatedAt)

	dbOrder, err := toDBOrder(order)
	if err != nil {
		slog.Error("Failed to encode order", "error", err)
		return nil, err
	}

	if err := d.repo.InsertOrder(ctx, dbOrder); err != nil {
		slog.Error("Failed to create new order", "error", err)
		return nil, err
	}

	return &order, nil
}

func (d *DefaultService) GetOrders(ctx context.Context) ([]model.Order, error) {
	dbOrders, err := d.repo.GetOrders(ctx)
	if err != nil {
		slog.Error("Error retrieving orders", "error", err)
		return nil, err
	}

	orders := make([]model.Order, 0, len(dbOrders))
	for _, dbOrder := range dbOrders {
		order, err := fromDBOrder(dbOrder)
		if err != nil {
			slog.Error("Failed to decode order", "error", err, "orderID", dbOrder.OrderID)
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (d *DefaultService) GetOrderByID(ctx context.Context, orderID string) (*model.Order, error) {
	dbOrder, err := d.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		slog.Error("Error retrieving order", "error", err, "orderID", orderID)
		return nil, err
	}
	if dbOrder == nil {
		return nil, ErrOrderNotFound
	}

	order, err := fromDBOrder(*dbOrder)
	if err != nil {
		slog.Error("Failed to decode order", "error", err, "orderID", orderID)
		return nil, err
	}
	return &order, nil
}

func (d *DefaultService) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if err := d.repo.UpdateOrderStatus(ctx, orderID, string(status)); err != nil {
		slog.Error("Error updating order status", "error", err, "orderID", orderID, "status", status)
		return err
	}
	return nil
}

func (d *DefaultService) DeleteOrder(ctx context.Context, orderID string) error {
	if err := d.repo.DeleteOrder(ctx, orderID); err != nil {
		slog.Error("Error deleting order", "error", err, "orderID", orderID)
		return err
	}
	return nil
}
