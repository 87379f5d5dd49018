package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/psds-microservice/support-bot/internal/config"
	"github.com/psds-microservice/support-bot/internal/kafka"
	"github.com/psds-microservice/support-bot/internal/model"
	"github.com/psds-microservice/support-bot/internal/notify"
	"github.com/psds-microservice/support-bot/internal/store"
	"github.com/psds-microservice/support-bot/pkg/logger"
)

// OrderDraft — поля заказа, собранные диалогом покупки. Товар и цена
// добавляются сервисом из карточки товара.
type OrderDraft struct {
	Name     string
	Email    string
	Phone    string
	City     string
	Address  string
	Delivery model.DeliveryMethod
}

// OrderService создаёт и перечисляет заказы. Цикл read-modify-write по
// коллекции сериализован мьютексом: одновременные создания не теряют записи.
type OrderService struct {
	store    store.Store
	product  config.Product
	producer kafka.EventProducer
	operator *notify.Client
	log      logger.Logger

	mu sync.Mutex
}

func NewOrderService(st store.Store, product config.Product, producer kafka.EventProducer, operator *notify.Client, log logger.Logger) *OrderService {
	return &OrderService{
		store:    st,
		product:  product,
		producer: producer,
		operator: operator,
		log:      log,
	}
}

// Create присваивает номер, сохраняет заказ и best-effort уведомляет
// оператора. Заказ после создания неизменяем: пути обновления нет.
func (s *OrderService) Create(ctx context.Context, d OrderDraft) (model.Order, error) {
	s.mu.Lock()
	orders := s.store.LoadOrders()
	now := time.Now().UTC()
	order := model.Order{
		ID:        store.OrderID(len(orders), now),
		CreatedAt: now,
		Product:   s.product.Name,
		Price:     s.product.Price,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		City:      d.City,
		Address:   d.Address,
		Delivery:  d.Delivery,
	}
	orders[order.ID] = order
	err := s.store.SaveOrders(orders)
	s.mu.Unlock()
	if err != nil {
		return model.Order{}, fmt.Errorf("save orders: %w", err)
	}
	s.log.Info("order created", "id", order.ID, "city", order.City, "delivery", order.Delivery)
	s.emit("order.created", order.ID, order, orderEventPayload(&order))
	return order, nil
}

// List возвращает все заказы, отсортированные по номеру.
func (s *OrderService) List() []model.Order {
	orders := s.store.LoadOrders()
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// emit — fire-and-forget: событие должно уйти даже при отмене запроса,
// но с таймаутом; неуспех не влияет на результат сценария.
func (s *OrderService) emit(event, id string, record interface{}, payload map[string]interface{}) {
	if s.producer != nil {
		eventCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		go func() {
			defer cancel()
			s.producer.ProduceEvent(eventCtx, event, payload)
		}()
	}
	if s.operator != nil {
		s.operator.NotifyAsync(event, id, record)
	}
}

func orderEventPayload(o *model.Order) map[string]interface{} {
	return map[string]interface{}{
		"order_id": o.ID,
		"product":  o.Product,
		"price":    o.Price,
		"email":    o.Email,
		"city":     o.City,
		"delivery": string(o.Delivery),
	}
}
