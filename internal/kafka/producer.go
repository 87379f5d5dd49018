package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/psds-microservice/support-bot/pkg/logger"
)

// EventProducer — интерфейс отправки операторских событий (для подмены
// моком в тестах).
type EventProducer interface {
	ProduceEvent(ctx context.Context, event string, payload map[string]interface{})
}

// Producer пишет события заказов и тикетов в топик Kafka (best-effort,
// не блокирует основной сценарий и никогда не роняет его).
type Producer struct {
	writer *kafka.Writer
	topic  string
	log    logger.Logger
}

// NewProducer создаёт продюсер. Если brokers или topic пустые — методы no-op.
func NewProducer(brokers []string, topic string, log logger.Logger) *Producer {
	if len(brokers) == 0 || topic == "" {
		return &Producer{log: log}
	}
	return &Producer{
		topic: topic,
		log:   log,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// ProduceEvent отправляет событие в топик. Ошибки логируются и глотаются.
func (p *Producer) ProduceEvent(ctx context.Context, event string, payload map[string]interface{}) {
	if p.writer == nil {
		return
	}
	msg := map[string]interface{}{"event": event}
	for k, v := range payload {
		msg[k] = v
	}
	body, err := json.Marshal(msg)
	if err != nil {
		p.log.Error("kafka: marshal event", "event", event, "err", err)
		return
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Value: body}); err != nil {
		p.log.Error("kafka: write event", "event", event, "err", err)
	}
}

// Close закрывает writer.
func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
