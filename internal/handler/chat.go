package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psds-microservice/support-bot/internal/flow"
)

// ChatHandler переводит HTTP-вызовы чат-транспорта в ходы диалогового движка.
type ChatHandler struct {
	engine *flow.Engine
}

func NewChatHandler(engine *flow.Engine) *ChatHandler {
	return &ChatHandler{engine: engine}
}

type chatRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Text   string `json:"text"`
	Action string `json:"action"`
}

// Handle принимает один ход пользователя (текст или действие кнопки) и
// возвращает ответы движка. Пустой список — молчание.
func (h *ChatHandler) Handle(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	replies := h.engine.Handle(c.Request.Context(), flow.Update{
		UserID: req.UserID,
		Text:   req.Text,
		Action: req.Action,
	})
	if replies == nil {
		replies = []flow.Reply{}
	}
	c.JSON(http.StatusOK, gin.H{"replies": replies})
}
