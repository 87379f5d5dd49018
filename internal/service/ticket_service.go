package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/psds-microservice/support-bot/internal/errs"
	"github.com/psds-microservice/support-bot/internal/kafka"
	"github.com/psds-microservice/support-bot/internal/model"
	"github.com/psds-microservice/support-bot/internal/notify"
	"github.com/psds-microservice/support-bot/internal/store"
	"github.com/psds-microservice/support-bot/pkg/logger"
)

// TicketServicer — интерфейс жизненного цикла тикета (для подмены в тестах
// обработчиков и движка диалога).
type TicketServicer interface {
	Create(ctx context.Context, serial, issue string, remoteOK bool) (model.Ticket, error)
	ScheduleRemote(ctx context.Context, serial, issue, slot string) (*model.Ticket, error)
	Advance(ctx context.Context, id string, action model.StageAction) (model.Ticket, error)
	Get(id string) (model.Ticket, error)
	List() []model.Ticket
}

// TicketService ведёт тикеты гарантийного сервиса: создание, назначение
// удалённой диагностики и лестницу эскалации. История тикета append-only;
// статус всегда равен последнему применённому этапу.
type TicketService struct {
	store    store.Store
	producer kafka.EventProducer
	operator *notify.Client
	log      logger.Logger

	mu sync.Mutex
}

func NewTicketService(st store.Store, producer kafka.EventProducer, operator *notify.Client, log logger.Logger) *TicketService {
	return &TicketService{
		store:    st,
		producer: producer,
		operator: operator,
		log:      log,
	}
}

// Create — точка создания тикета (момент ответа на вопрос об удалённой
// диагностике). История получает ровно два события: created и
// remote_consent:<yes|no>.
func (s *TicketService) Create(ctx context.Context, serial, issue string, remoteOK bool) (model.Ticket, error) {
	consent := "no"
	status := model.TicketStatusTLWait
	if remoteOK {
		consent = "yes"
		status = model.TicketStatusRemoteScheduled
	}

	s.mu.Lock()
	tickets := s.store.LoadTickets()
	now := time.Now().UTC()
	ticket := model.Ticket{
		ID:        store.TicketID(len(tickets), now),
		CreatedAt: now,
		Serial:    serial,
		Issue:     issue,
		RemoteOK:  remoteOK,
		Status:    status,
		History: []model.HistoryEntry{
			{TS: now, Event: "created"},
			{TS: now, Event: "remote_consent:" + consent},
		},
	}
	tickets[ticket.ID] = ticket
	err := s.store.SaveTickets(tickets)
	s.mu.Unlock()
	if err != nil {
		return model.Ticket{}, fmt.Errorf("save tickets: %w", err)
	}
	s.log.Info("ticket created", "id", ticket.ID, "serial", serial, "status", status)
	s.emit("ticket.created", ticket.ID, ticket)
	return ticket, nil
}

// ScheduleRemote записывает слот удалённого подключения в только что
// созданный тикет. Тикет ищется эвристикой: самый свежий по времени
// создания с теми же серийником и описанием. Если совпадения нет,
// возвращается (nil, nil) — хранилище не меняется.
func (s *TicketService) ScheduleRemote(ctx context.Context, serial, issue, slot string) (*model.Ticket, error) {
	s.mu.Lock()
	tickets := s.store.LoadTickets()
	var match *model.Ticket
	for _, t := range newestFirst(tickets) {
		if t.Serial == serial && t.Issue == issue {
			match = &t
			break
		}
	}
	if match == nil {
		s.mu.Unlock()
		return nil, nil
	}
	match.History = append(match.History, model.HistoryEntry{
		TS:    time.Now().UTC(),
		Event: "remote_scheduled:" + slot,
	})
	match.Status = model.TicketStatusRemoteScheduled
	tickets[match.ID] = *match
	err := s.store.SaveTickets(tickets)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("save tickets: %w", err)
	}
	s.log.Info("remote session scheduled", "id", match.ID, "slot", slot)
	s.emit("ticket.updated", match.ID, *match)
	return match, nil
}

// Advance применяет действие эскалации: одна запись в историю, статус
// перезаписывается на соответствующий действию. Легальность перехода от
// текущего статуса не проверяется; неизвестный id — ErrTicketNotFound без
// изменения хранилища.
func (s *TicketService) Advance(ctx context.Context, id string, action model.StageAction) (model.Ticket, error) {
	if !action.Valid() {
		return model.Ticket{}, errs.ErrInvalidAction
	}

	s.mu.Lock()
	tickets := s.store.LoadTickets()
	ticket, ok := tickets[id]
	if !ok {
		s.mu.Unlock()
		return model.Ticket{}, errs.ErrTicketNotFound
	}
	ticket.History = append(ticket.History, model.HistoryEntry{
		TS:    time.Now().UTC(),
		Event: string(action),
	})
	ticket.Status = action.Status()
	tickets[id] = ticket
	err := s.store.SaveTickets(tickets)
	s.mu.Unlock()
	if err != nil {
		return model.Ticket{}, fmt.Errorf("save tickets: %w", err)
	}
	s.log.Info("ticket advanced", "id", id, "action", action, "status", ticket.Status)
	s.emit("ticket.updated", id, ticket)
	return ticket, nil
}

func (s *TicketService) Get(id string) (model.Ticket, error) {
	tickets := s.store.LoadTickets()
	ticket, ok := tickets[id]
	if !ok {
		return model.Ticket{}, errs.ErrTicketNotFound
	}
	return ticket, nil
}

// List возвращает все тикеты, отсортированные по номеру.
func (s *TicketService) List() []model.Ticket {
	tickets := s.store.LoadTickets()
	out := make([]model.Ticket, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *TicketService) emit(event, id string, ticket model.Ticket) {
	if s.producer != nil {
		eventCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		go func() {
			defer cancel()
			s.producer.ProduceEvent(eventCtx, event, ticketEventPayload(&ticket))
		}()
	}
	if s.operator != nil {
		s.operator.NotifyAsync(event, id, ticket)
	}
}

func ticketEventPayload(t *model.Ticket) map[string]interface{} {
	return map[string]interface{}{
		"ticket_id": t.ID,
		"serial":    t.Serial,
		"issue":     t.Issue,
		"remote_ok": t.RemoteOK,
		"status":    string(t.Status),
	}
}

// newestFirst — тикеты по убыванию времени создания, при равенстве — по
// убыванию номера (у номеров в пределах дня сквозная нумерация).
func newestFirst(tickets map[string]model.Ticket) []model.Ticket {
	out := make([]model.Ticket, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
