package store

import (
	"sync"

	"github.com/psds-microservice/support-bot/internal/model"
)

// MemStore — хранилище в памяти для тестов, тот же контракт что и FileStore.
type MemStore struct {
	mu      sync.Mutex
	orders  map[string]model.Order
	tickets map[string]model.Ticket
}

func NewMemStore() *MemStore {
	return &MemStore{
		orders:  make(map[string]model.Order),
		tickets: make(map[string]model.Ticket),
	}
}

func (s *MemStore) LoadOrders() map[string]model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]model.Order, len(s.orders))
	for k, v := range s.orders {
		out[k] = v
	}
	return out
}

func (s *MemStore) SaveOrders(orders map[string]model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make(map[string]model.Order, len(orders))
	for k, v := range orders {
		s.orders[k] = v
	}
	return nil
}

func (s *MemStore) LoadTickets() map[string]model.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]model.Ticket, len(s.tickets))
	for k, v := range s.tickets {
		out[k] = v
	}
	return out
}

func (s *MemStore) SaveTickets(tickets map[string]model.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets = make(map[string]model.Ticket, len(tickets))
	for k, v := range tickets {
		s.tickets[k] = v
	}
	return nil
}
