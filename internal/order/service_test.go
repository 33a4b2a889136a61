package order

import (
	"context"
	"errors"
	"testing"

	"pyronix-studio/internal/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	inserted      []DBOrder
	stored        []DBOrder
	statusUpdates map[string]string
	deleted       []string
	err           error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{statusUpdates: make(map[string]string)}
}

func (f *fakeRepo) InsertOrder(_ context.Context, order DBOrder) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, order)
	return nil
}

func (f *fakeRepo) GetOrders(context.Context) ([]DBOrder, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stored, nil
}

func (f *fakeRepo) GetOrderByID(_ context.Context, orderID string) (*DBOrder, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, order := range f.stored {
		if order.OrderID == orderID {
			return &order, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) UpdateOrderStatus(_ context.Context, orderID string, status string) error {
	if f.err != nil {
		return f.err
	}
	f.statusUpdates[orderID] = status
	return nil
}

func (f *fakeRepo) DeleteOrder(_ context.Context, orderID string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, orderID)
	return nil
}

func sampleOrder() model.Order {
	return model.Order{
		Email:    "a@b.com",
		Handle:   "@test",
		Title:    "Hit",
		Platform: model.Choice{Value: "TikTok"},
		Styles:   []string{"Pop"},
		Voice: model.Voice{
			Mode: model.VoiceSolo,
			Solo: &model.VoicePart{Gender: model.GenderFemale, Language: model.Choice{Value: "Français"}},
		},
		VocalLanguageStyle: model.VocalNative,
		Mood:               model.Choice{Value: "Énergique"},
		Tempo:              model.TempoMedium,
		Energy:             3,
		Subject:            "une histoire",
		Summary:            "Prêt pour la prod.",
	}
}

func TestNewOrderAssignsIdentityAndStatus(t *testing.T) {
	repo := newFakeRepo()
	service := NewDefaultService(repo)

	created, err := service.NewOrder(context.Background(), sampleOrder())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.Reference)
	assert.Equal(t, model.StatusNew, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	require.Len(t, repo.inserted, 1)
	inserted := repo.inserted[0]
	assert.Equal(t, created.ID, inserted.OrderID)
	assert.JSONEq(t, `["Pop"]`, string(inserted.Styles))
	require.NotNil(t, inserted.AISummary)
	assert.Equal(t, "Prêt pour la prod.", *inserted.AISummary)
}

func TestNewOrderReferenceIsSlugged(t *testing.T) {
	repo := newFakeRepo()
	service := NewDefaultService(repo)

	ord := sampleOrder()
	ord.Handle = "@Test Artist"
	ord.Title = "Été Brûlant"
	created, err := service.NewOrder(context.Background(), ord)
	require.NoError(t, err)
	assert.Regexp(t, `^[a-z0-9-]+$`, created.Reference)
}

func TestGetOrdersRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	service := NewDefaultService(repo)

	created, err := service.NewOrder(context.Background(), sampleOrder())
	require.NoError(t, err)
	repo.stored = repo.inserted

	orders, err := service.GetOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, created.ID, orders[0].ID)
	assert.Equal(t, []string{"Pop"}, orders[0].Styles)
	require.NotNil(t, orders[0].Voice.Solo)
	assert.Equal(t, "Français", orders[0].Voice.Solo.Language.Value)
}

func TestGetOrderByIDNotFound(t *testing.T) {
	service := NewDefaultService(newFakeRepo())

	_, err := service.GetOrderByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("rejects unknown status before touching the repo", func(t *testing.T) {
		repo := newFakeRepo()
		service := NewDefaultService(repo)

		err := service.UpdateOrderStatus(context.Background(), "id-1", "archived")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Empty(t, repo.statusUpdates)
	})

	t.Run("writes a valid status", func(t *testing.T) {
		repo := newFakeRepo()
		service := NewDefaultService(repo)

		err := service.UpdateOrderStatus(context.Background(), "id-1", model.StatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, "in_progress", repo.statusUpdates["id-1"])
	})

	t.Run("propagates repo failures", func(t *testing.T) {
		repo := newFakeRepo()
		repo.err = errors.New("db down")
		service := NewDefaultService(repo)

		err := service.UpdateOrderStatus(context.Background(), "id-1", model.StatusDone)
		assert.Error(t, err)
	})
}

func TestDeleteOrder(t *testing.T) {
	repo := newFakeRepo()
	service := NewDefaultService(repo)

	require.NoError(t, service.DeleteOrder(context.Background(), "id-1"))
	assert.Equal(t, []string{"id-1"}, repo.deleted)
}
