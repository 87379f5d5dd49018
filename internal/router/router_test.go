package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/psds-microservice/support-bot/internal/config"
	"github.com/psds-microservice/support-bot/internal/flow"
	"github.com/psds-microservice/support-bot/internal/handler"
	"github.com/psds-microservice/support-bot/internal/model"
	"github.com/psds-microservice/support-bot/internal/service"
	"github.com/psds-microservice/support-bot/internal/store"
	"github.com/psds-microservice/support-bot/pkg/logger"
)

const (
	testToken    = "secret-token"
	testOperator = "admin-1"
)

func newTestServer(t *testing.T) (http.Handler, *service.TicketService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemStore()
	log := logger.Nop()
	product := config.Product{Name: "OSIO Focus line 14", Price: 14999}
	orders := service.NewOrderService(st, product, nil, nil, log)
	tickets := service.NewTicketService(st, nil, nil, log)
	engine := flow.NewEngine(flow.NewSessionStore(), orders, tickets, product, "ZAR", testOperator, log)

	h := New(
		testToken,
		handler.NewChatHandler(engine),
		handler.NewTicketHandler(tickets),
		handler.NewAdminHandler(orders, tickets, testOperator),
	)
	return h, tickets
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func authed(extra map[string]string) map[string]string {
	out := map[string]string{"X-Bot-Token": testToken}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

func TestHealthWithoutToken(t *testing.T) {
	h, _ := newTestServer(t)
	w := doJSON(t, h, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestChat_RequiresToken(t *testing.T) {
	h, _ := newTestServer(t)
	w := doJSON(t, h, http.MethodPost, "/api/v1/chat", map[string]string{"user_id": "u1", "text": "/start"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChat_StartReturnsMenu(t *testing.T) {
	h, _ := newTestServer(t)
	w := doJSON(t, h, http.MethodPost, "/api/v1/chat",
		map[string]string{"user_id": "u1", "text": "/start"}, authed(nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Replies []flow.Reply `json:"replies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Replies, 1)
	require.Len(t, resp.Replies[0].Buttons, 4)
}

func TestChat_MissingUserID(t *testing.T) {
	h, _ := newTestServer(t)
	w := doJSON(t, h, http.MethodPost, "/api/v1/chat", map[string]string{"text": "/start"}, authed(nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdvanceTicket(t *testing.T) {
	h, tickets := newTestServer(t)
	ticket, err := tickets.Create(context.Background(), "SN1", "flicker", false)
	require.NoError(t, err)

	w := doJSON(t, h, http.MethodPost, "/api/v1/tickets/"+ticket.ID+"/advance",
		map[string]string{"action": "asc_redirect"}, authed(nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got model.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, model.TicketStatusASCRedirect, got.Status)
	require.Len(t, got.History, 3)
}

func TestAdvanceTicket_NotFound(t *testing.T) {
	h, _ := newTestServer(t)
	w := doJSON(t, h, http.MethodPost, "/api/v1/tickets/T19700101-0001/advance",
		map[string]string{"action": "repair"}, authed(nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdvanceTicket_InvalidAction(t *testing.T) {
	h, tickets := newTestServer(t)
	ticket, err := tickets.Create(context.Background(), "SN1", "x", false)
	require.NoError(t, err)

	w := doJSON(t, h, http.MethodPost, "/api/v1/tickets/"+ticket.ID+"/advance",
		map[string]string{"action": "teleport"}, authed(nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTicket(t *testing.T) {
	h, tickets := newTestServer(t)
	ticket, err := tickets.Create(context.Background(), "SN1", "x", true)
	require.NoError(t, err)

	w := doJSON(t, h, http.MethodGet, "/api/v1/tickets/"+ticket.ID, nil, authed(nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got model.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, model.TicketStatusRemoteScheduled, got.Status)
}

func TestOperatorListings_Gated(t *testing.T) {
	h, tickets := newTestServer(t)
	_, err := tickets.Create(context.Background(), "SN1", "x", false)
	require.NoError(t, err)

	// без операторского заголовка — молчаливый 404
	w := doJSON(t, h, http.MethodGet, "/api/v1/tickets", nil, authed(nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, h, http.MethodGet, "/api/v1/tickets", nil, authed(map[string]string{"X-Operator-Id": "intruder"}))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, h, http.MethodGet, "/api/v1/tickets", nil, authed(map[string]string{"X-Operator-Id": testOperator}))
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h, http.MethodGet, "/api/v1/orders", nil, authed(map[string]string{"X-Operator-Id": testOperator}))
	require.Equal(t, http.StatusOK, w.Code)
}
