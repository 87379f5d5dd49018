// Package store реализует плоское key-value хранилище заказов и тикетов:
// каждая коллекция — один JSON-файл «id → запись». Отсутствующий или
// повреждённый файл читается как пустая коллекция, без ошибки.
package store

import "github.com/psds-microservice/support-bot/internal/model"

// Store — контракт хранилища. Примитивов update/delete нет: вызывающий
// читает всю коллекцию, меняет её в памяти и сохраняет целиком.
type Store interface {
	LoadOrders() map[string]model.Order
	SaveOrders(orders map[string]model.Order) error
	LoadTickets() map[string]model.Ticket
	SaveTickets(tickets map[string]model.Ticket) error
}
