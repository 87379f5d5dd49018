package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/psds-microservice/support-bot/internal/model"
)

const (
	ordersFile  = "orders.json"
	ticketsFile = "tickets.json"
)

// FileStore хранит коллекции в JSON-файлах внутри каталога данных.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore создаёт каталог данных, если его нет.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %q: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) LoadOrders() map[string]model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]model.Order)
	loadJSON(filepath.Join(s.dir, ordersFile), &out)
	return out
}

func (s *FileStore) SaveOrders(orders map[string]model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveJSON(filepath.Join(s.dir, ordersFile), orders)
}

func (s *FileStore) LoadTickets() map[string]model.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]model.Ticket)
	loadJSON(filepath.Join(s.dir, ticketsFile), &out)
	return out
}

func (s *FileStore) SaveTickets(tickets map[string]model.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveJSON(filepath.Join(s.dir, ticketsFile), tickets)
}

// loadJSON читает коллекцию из файла. Отсутствие файла и битый JSON не
// ошибка: коллекция остаётся пустой.
func loadJSON(path string, out interface{}) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		// повреждённый файл трактуем как пустую коллекцию
		return
	}
}

func saveJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
