package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/psds-microservice/support-bot/api"
	"github.com/psds-microservice/support-bot/internal/handler"
)

const (
	pathHealth  = "/health"
	pathReady   = "/ready"
	pathSwagger = "/swagger"
)

// botTokenHeader — секрет чат-платформы; им авторизуется транспорт,
// дёргающий API.
const botTokenHeader = "X-Bot-Token"

func New(botToken string, chat *handler.ChatHandler, ticket *handler.TicketHandler, admin *handler.AdminHandler) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET(pathHealth, handler.Health)
	r.GET(pathReady, handler.Ready)
	r.GET(pathSwagger, func(c *gin.Context) { c.Redirect(http.StatusFound, pathSwagger+"/") })
	r.GET(pathSwagger+"/*any", func(c *gin.Context) {
		if strings.TrimPrefix(c.Param("any"), "/") == "openapi.json" {
			c.Data(http.StatusOK, "application/json", api.OpenAPISpec)
			return
		}
		if strings.TrimPrefix(c.Param("any"), "/") == "" {
			c.Request.URL.Path = pathSwagger + "/index.html"
			c.Request.RequestURI = pathSwagger + "/index.html"
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/openapi.json"))(c)
	})

	v1 := r.Group("/api/v1", requireBotToken(botToken))
	{
		v1.POST("/chat", chat.Handle)
		v1.GET("/tickets/:id", ticket.Get)
		v1.POST("/tickets/:id/advance", ticket.Advance)
		v1.GET("/tickets", admin.ListTickets)
		v1.GET("/orders", admin.ListOrders)
	}

	return r
}

func requireBotToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(botTokenHeader) != token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
