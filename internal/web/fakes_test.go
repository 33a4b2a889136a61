package web

import (
	"context"
	"time"

	"pyronix-studio/internal/order"
	"pyronix-studio/internal/pkg/config"
	"pyronix-studio/internal/pkg/model"

	"github.com/google/uuid"
)

type fakeOrderService struct {
	orders       []model.Order
	deleteCalled []string
	err          error
}

func (f *fakeOrderService) NewOrder(_ context.Context, ord model.Order) (*model.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	ord.ID = uuid.NewString()
	ord.Status = model.StatusNew
	ord.CreatedAt = time.Now().UTC()
	f.orders = append(f.orders, ord)
	return &ord, nil
}

func (f *fakeOrderService) GetOrders(context.Context) ([]model.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.orders, nil
}

func (f *fakeOrderService) GetOrderByID(_ context.Context, orderID string) (*model.Order, error) {
	for _, ord := range f.orders {
		if ord.ID == orderID {
			return &ord, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (f *fakeOrderService) UpdateOrderStatus(_ context.Context, orderID string, status model.OrderStatus) error {
	if !status.Valid() {
		return order.ErrInvalidStatus
	}
	for i, ord := range f.orders {
		if ord.ID == orderID {
			f.orders[i].Status = status
			return nil
		}
	}
	return order.ErrOrderNotFound
}

func (f *fakeOrderService) DeleteOrder(_ context.Context, orderID string) error {
	f.deleteCalled = append(f.deleteCalled, orderID)
	for i, ord := range f.orders {
		if ord.ID == orderID {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return order.ErrOrderNotFound
}

type fakeSummarizer struct {
	summary string
	err     error
}

func (f *fakeSummarizer) Summarize(context.Context, model.Order) (string, error) {
	return f.summary, f.err
}

type fakeHandoff struct {
	notified []model.Order
}

func (f *fakeHandoff) NewOrderMailto(ord model.Order) string {
	return "mailto:studio@example.com?subject=" + ord.Title
}

func (f *fakeHandoff) NotifyOperator(ord model.Order) {
	f.notified = append(f.notified, ord)
}

func testAuthCfg() *config.AuthCfg {
	return &config.AuthCfg{
		OperatorEmail:    "studio@example.com",
		OperatorPassword: "secret",
		SessionTTL:       time.Hour,
	}
}
