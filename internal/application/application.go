package application

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/psds-microservice/support-bot/internal/config"
	"github.com/psds-microservice/support-bot/internal/flow"
	"github.com/psds-microservice/support-bot/internal/handler"
	"github.com/psds-microservice/support-bot/internal/kafka"
	"github.com/psds-microservice/support-bot/internal/notify"
	"github.com/psds-microservice/support-bot/internal/router"
	"github.com/psds-microservice/support-bot/internal/service"
	"github.com/psds-microservice/support-bot/internal/store"
	"github.com/psds-microservice/support-bot/pkg/logger"
)

// API — приложение чат-сервиса: хранилище, сервисы, диалоговый движок и
// HTTP-сервер.
type API struct {
	cfg      *config.Config
	log      logger.Logger
	httpSrv  *http.Server
	producer *kafka.Producer
}

// NewAPI собирает приложение. Единственная фатальная ошибка конфигурации —
// отсутствующий BOT_TOKEN.
func NewAPI(cfg *config.Config) (*API, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logger.New(cfg.LogLevel)

	st, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicEvents, log)
	operator := notify.NewClient(cfg.OperatorWebhookURL, log)

	orderSvc := service.NewOrderService(st, cfg.Product, producer, operator, log)
	ticketSvc := service.NewTicketService(st, producer, operator, log)

	engine := flow.NewEngine(
		flow.NewSessionStore(),
		orderSvc,
		ticketSvc,
		cfg.Product,
		cfg.Currency,
		cfg.AdminChatID,
		log,
	)

	h := router.New(
		cfg.BotToken,
		handler.NewChatHandler(engine),
		handler.NewTicketHandler(ticketSvc),
		handler.NewAdminHandler(orderSvc, ticketSvc, cfg.AdminChatID),
	)

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &API{cfg: cfg, log: log, httpSrv: httpSrv, producer: producer}, nil
}

// Run запускает HTTP-сервер и блокируется до отмены ctx.
func (a *API) Run(ctx context.Context) error {
	host := a.cfg.AppHost
	if host == "0.0.0.0" {
		host = "localhost"
	}
	base := "http://" + host + ":" + a.cfg.HTTPPort
	a.log.Info("HTTP server listening", "addr", a.httpSrv.Addr)
	a.log.Info("endpoints",
		"chat", base+"/api/v1/chat",
		"swagger", base+"/swagger",
		"health", base+"/health",
	)
	if a.cfg.AdminChatID == "" {
		a.log.Warn("ADMIN_CHAT_ID is not set: operator listings and notifications are disabled")
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := a.producer.Close(); err != nil {
		a.log.Warn("kafka close", "err", err)
	}
	return nil
}
