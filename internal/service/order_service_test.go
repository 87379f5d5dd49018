package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/psds-microservice/support-bot/internal/config"
	"github.com/psds-microservice/support-bot/internal/model"
	"github.com/psds-microservice/support-bot/internal/store"
	"github.com/psds-microservice/support-bot/pkg/logger"
)

var testProduct = config.Product{Name: "OSIO Focus line 14", Price: 14999}

func TestOrderCreate_PersistsAllFields(t *testing.T) {
	st := store.NewMemStore()
	svc := NewOrderService(st, testProduct, nil, nil, logger.Nop())

	draft := OrderDraft{
		Name:     "Ann Smith",
		Email:    "ann@example.com",
		Phone:    "+27100000000",
		City:     "Durban",
		Address:  "Main st 1, 4001",
		Delivery: model.DeliveryPickup,
	}
	order, err := svc.Create(context.Background(), draft)
	require.NoError(t, err)

	require.True(t, strings.HasSuffix(order.ID, "-0001"), "first id in empty collection: %s", order.ID)
	require.True(t, strings.HasPrefix(order.ID, "O"))
	require.WithinDuration(t, time.Now().UTC(), order.CreatedAt, time.Minute)
	require.Equal(t, testProduct.Name, order.Product)
	require.Equal(t, testProduct.Price, order.Price)
	require.Equal(t, draft.Name, order.Name)
	require.Equal(t, draft.Email, order.Email)
	require.Equal(t, draft.Phone, order.Phone)
	require.Equal(t, draft.City, order.City)
	require.Equal(t, draft.Address, order.Address)
	require.Equal(t, draft.Delivery, order.Delivery)

	stored := st.LoadOrders()
	require.Len(t, stored, 1)
	require.Equal(t, order, stored[order.ID])
}

func TestOrderCreate_SequentialIDs(t *testing.T) {
	svc := NewOrderService(store.NewMemStore(), testProduct, nil, nil, logger.Nop())

	first, err := svc.Create(context.Background(), OrderDraft{Name: "a", Email: "a@b.co", Delivery: model.DeliveryStandard})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), OrderDraft{Name: "b", Email: "b@c.co", Delivery: model.DeliveryStandard})
	require.NoError(t, err)

	require.True(t, strings.HasSuffix(first.ID, "-0001"))
	require.True(t, strings.HasSuffix(second.ID, "-0002"))
}

func TestOrderCreate_EmitsEvent(t *testing.T) {
	producer := &recordingProducer{}
	svc := NewOrderService(store.NewMemStore(), testProduct, producer, nil, logger.Nop())

	_, err := svc.Create(context.Background(), OrderDraft{Name: "a", Email: "a@b.co", Delivery: model.DeliveryExpress})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return producer.seen("order.created") },
		time.Second, 10*time.Millisecond)
}

func TestOrderList_SortedByID(t *testing.T) {
	svc := NewOrderService(store.NewMemStore(), testProduct, nil, nil, logger.Nop())
	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.Create(context.Background(), OrderDraft{Name: name, Email: name + "@x.co", Delivery: model.DeliveryStandard})
		require.NoError(t, err)
	}
	list := svc.List()
	require.Len(t, list, 3)
	require.True(t, list[0].ID < list[1].ID && list[1].ID < list[2].ID)
}
