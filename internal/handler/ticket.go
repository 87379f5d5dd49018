package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psds-microservice/support-bot/internal/errs"
	"github.com/psds-microservice/support-bot/internal/model"
	"github.com/psds-microservice/support-bot/internal/service"
)

// TicketHandler — прямой доступ к жизненному циклу тикета: просмотр и
// действия лестницы эскалации (идемпотентные, адресуются номером тикета).
type TicketHandler struct {
	svc service.TicketServicer
}

func NewTicketHandler(svc service.TicketServicer) *TicketHandler {
	return &TicketHandler{svc: svc}
}

func (h *TicketHandler) Get(c *gin.Context) {
	t, err := h.svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

type advanceRequest struct {
	Action string `json:"action" binding:"required"`
}

// Advance применяет действие эскалации. Неизвестный тикет — 404 без
// изменения хранилища; проверки легальности перехода нет.
func (h *TicketHandler) Advance(c *gin.Context) {
	var req advanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	action := model.StageAction(req.Action)
	if !action.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action"})
		return
	}
	t, err := h.svc.Advance(c.Request.Context(), c.Param("id"), action)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, t)
}
