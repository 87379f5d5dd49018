package flow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psds-microservice/support-bot/internal/config"
	"github.com/psds-microservice/support-bot/internal/model"
	"github.com/psds-microservice/support-bot/internal/service"
	"github.com/psds-microservice/support-bot/internal/store"
	"github.com/psds-microservice/support-bot/pkg/logger"
)

const (
	testUser     = "user-7"
	testOperator = "admin-1"
)

func newTestEngine(t *testing.T) (*Engine, *store.MemStore) {
	t.Helper()
	st := store.NewMemStore()
	log := logger.Nop()
	product := config.Product{Name: "OSIO Focus line 14", Price: 14999}
	orders := service.NewOrderService(st, product, nil, nil, log)
	tickets := service.NewTicketService(st, nil, nil, log)
	e := NewEngine(NewSessionStore(), orders, tickets, product, "ZAR", testOperator, log)
	return e, st
}

func sendText(e *Engine, user, text string) []Reply {
	return e.Handle(context.Background(), Update{UserID: user, Text: text})
}

func sendAction(e *Engine, user, action string) []Reply {
	return e.Handle(context.Background(), Update{UserID: user, Action: action})
}

func TestOrderFlow_HappyPath(t *testing.T) {
	e, st := newTestEngine(t)

	replies := sendAction(e, testUser, "menu_buy")
	require.Len(t, replies, 1)
	require.Contains(t, replies[0].Text, "Оформление заказа")

	replies = sendText(e, testUser, "Ann Smith")
	require.Contains(t, replies[0].Text, "почта")

	replies = sendText(e, testUser, "a@b.co")
	require.Contains(t, replies[0].Text, "Телефон")

	replies = sendText(e, testUser, "+27100000000")
	require.Contains(t, replies[0].Text, "Город")

	replies = sendText(e, testUser, "Кейптаун")
	require.Contains(t, replies[0].Text, "Адрес")

	replies = sendText(e, testUser, "Main st 1, 8001")
	require.Contains(t, replies[0].Text, "способ доставки")
	require.Len(t, replies[0].Buttons, 4)

	replies = sendAction(e, testUser, "del_express")
	require.Len(t, replies, 1)
	require.Contains(t, replies[0].Text, "Заказ создан")
	require.Contains(t, replies[0].Text, "14 999 ZAR")
	require.Contains(t, replies[0].Text, "Ann Smith")
	require.Contains(t, replies[0].Text, "a@b.co")
	require.Equal(t, "Заказ оформлен!", replies[0].Alert)

	orders := st.LoadOrders()
	require.Len(t, orders, 1)
	for _, o := range orders {
		require.Equal(t, "Ann Smith", o.Name)
		require.Equal(t, "a@b.co", o.Email)
		require.Equal(t, "+27100000000", o.Phone)
		require.Equal(t, "Кейптаун", o.City)
		require.Equal(t, "Main st 1, 8001", o.Address)
		require.Equal(t, model.DeliveryExpress, o.Delivery)
		require.Equal(t, "OSIO Focus line 14", o.Product)
		require.Equal(t, 14999, o.Price)
	}

	// сессия пуста сразу после подтверждения
	require.Equal(t, StateIdle, e.sessions.Get(testUser).State)
}

func TestOrderFlow_EmailValidation(t *testing.T) {
	e, st := newTestEngine(t)

	sendAction(e, testUser, "menu_buy")
	sendText(e, testUser, "Ann")

	// невалидный email повторяет тот же шаг без смены состояния
	replies := sendText(e, testUser, "not-an-email")
	require.Contains(t, replies[0].Text, "не похоже на email")
	require.Equal(t, StateTakingEmail, e.sessions.Get(testUser).State)

	replies = sendText(e, testUser, "still not an email")
	require.Contains(t, replies[0].Text, "не похоже на email")
	require.Equal(t, StateTakingEmail, e.sessions.Get(testUser).State)
	require.Empty(t, st.LoadOrders())

	replies = sendText(e, testUser, "a@b.co")
	require.Contains(t, replies[0].Text, "Телефон")
	require.Equal(t, StateTakingPhone, e.sessions.Get(testUser).State)
}

func TestOrderFlow_EmptyInputReprompts(t *testing.T) {
	e, _ := newTestEngine(t)

	sendAction(e, testUser, "menu_buy")
	replies := sendText(e, testUser, "   ")
	require.Contains(t, replies[0].Text, "Попробуйте ещё раз")
	require.Equal(t, StateTakingName, e.sessions.Get(testUser).State)
}

func TestOrderFlow_UnknownDeliveryIgnored(t *testing.T) {
	e, st := newTestEngine(t)

	sendAction(e, testUser, "menu_buy")
	sendText(e, testUser, "Ann")
	sendText(e, testUser, "a@b.co")
	sendText(e, testUser, "+27")
	sendText(e, testUser, "Durban")
	sendText(e, testUser, "addr")

	replies := sendAction(e, testUser, "del_rocket")
	require.Empty(t, replies)
	require.Empty(t, st.LoadOrders())
	require.Equal(t, StateTakingDelivery, e.sessions.Get(testUser).State)
}

func TestStartClearsSessionMidFlow(t *testing.T) {
	e, _ := newTestEngine(t)

	sendAction(e, testUser, "menu_buy")
	sendText(e, testUser, "Ann")
	require.Equal(t, StateTakingEmail, e.sessions.Get(testUser).State)

	replies := sendText(e, testUser, "/start")
	require.Contains(t, replies[0].Text, "OSIO Focus line")
	require.Len(t, replies[0].Buttons, 4)
	require.Equal(t, StateIdle, e.sessions.Get(testUser).State)
}
