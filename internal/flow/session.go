package flow

import (
	"sync"

	"github.com/psds-microservice/support-bot/internal/service"
)

// State — шаг диалога, на котором находится пользователь.
type State string

const (
	StateIdle State = ""

	StateTakingName     State = "taking_name"
	StateTakingEmail    State = "taking_email"
	StateTakingPhone    State = "taking_phone"
	StateTakingCity     State = "taking_city"
	StateTakingAddress  State = "taking_address"
	StateTakingDelivery State = "taking_delivery"

	StateTakingSerial   State = "taking_serial"
	StateTakingIssue    State = "taking_issue"
	StateAskRemote      State = "ask_remote"
	StateScheduleRemote State = "schedule_remote"
)

// Session — накопитель ответов текущего диалога одного пользователя.
// Живёт только в памяти процесса: потеря при рестарте допустима по
// контракту (durability для сессий не обещана).
type Session struct {
	State  State
	Order  service.OrderDraft
	Serial string
	Issue  string
}

// SessionStore хранит сессии по идентификатору пользователя. Разные
// пользователи могут ходить параллельно; один пользователь ведёт не
// больше одного диалога одновременно.
type SessionStore struct {
	mu sync.Mutex
	m  map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{m: make(map[string]*Session)}
}

// Get возвращает сессию пользователя, создавая пустую при первом обращении.
func (s *SessionStore) Get(userID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.m[userID]
	if !ok {
		sess = &Session{}
		s.m[userID] = sess
	}
	return sess
}

// Clear сбрасывает сессию: диалог завершён или начат заново.
func (s *SessionStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, userID)
}
