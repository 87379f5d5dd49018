package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psds-microservice/support-bot/internal/service"
)

const operatorHeader = "X-Operator-Id"

// AdminHandler — операторские выборки. Доступ только при точном совпадении
// заголовка с настроенным идентификатором оператора; иначе молчаливый 404,
// как и в чат-командах. Пустой operatorID полностью выключает выборки.
type AdminHandler struct {
	orders     *service.OrderService
	tickets    service.TicketServicer
	operatorID string
}

func NewAdminHandler(orders *service.OrderService, tickets service.TicketServicer, operatorID string) *AdminHandler {
	return &AdminHandler{orders: orders, tickets: tickets, operatorID: operatorID}
}

func (h *AdminHandler) allowed(c *gin.Context) bool {
	if h.operatorID == "" || c.GetHeader(operatorHeader) != h.operatorID {
		c.Status(http.StatusNotFound)
		return false
	}
	return true
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	if !h.allowed(c) {
		return
	}
	items := h.orders.List()
	c.JSON(http.StatusOK, gin.H{"orders": items, "total": len(items)})
}

func (h *AdminHandler) ListTickets(c *gin.Context) {
	if !h.allowed(c) {
		return
	}
	items := h.tickets.List()
	c.JSON(http.StatusOK, gin.H{"tickets": items, "total": len(items)})
}
