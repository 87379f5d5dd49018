// Package notify доставляет новые и обновлённые записи в операторский канал
// HTTP-вебхуком. Доставка best-effort: неуспех логируется и не влияет на
// сценарий, который её вызвал.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/psds-microservice/support-bot/pkg/logger"
)

// Client отправляет уведомления оператору. Если baseURL пустой — no-op.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
}

func NewClient(baseURL string, log logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		log:     log,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Payload — тело POST на операторский вебхук.
type Payload struct {
	Event  string      `json:"event"`
	ID     string      `json:"id"`
	Record interface{} `json:"record"`
}

// Notify отправляет запись оператору. Вызывать в горутине после создания
// или изменения записи.
func (c *Client) Notify(ctx context.Context, event, id string, record interface{}) {
	if c.baseURL == "" {
		return
	}
	body, err := json.Marshal(Payload{Event: event, ID: id, Record: record})
	if err != nil {
		c.log.Error("notify: marshal", "event", event, "err", err)
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		c.log.Error("notify: new request", "event", event, "err", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("notify: request", "event", event, "err", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		c.log.Warn("notify: status", "event", event, "id", id, "status", resp.StatusCode)
	}
}

// NotifyAsync вызывает Notify в отдельной горутине (не блокирует ответ).
func (c *Client) NotifyAsync(event, id string, record interface{}) {
	if c.baseURL == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c.Notify(ctx, event, id, record)
	}()
}
