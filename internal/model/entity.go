package model

import "time"

type TicketStatus string

const (
	TicketStatusRemoteScheduled TicketStatus = "remote_scheduled"
	TicketStatusTLWait          TicketStatus = "tl_wait"
	TicketStatusASCRedirect     TicketStatus = "asc_redirect"
	TicketStatusASCControl      TicketStatus = "asc_control"
	TicketStatusRepair          TicketStatus = "repair"
	TicketStatusHandover        TicketStatus = "handover"
	TicketStatusClosed          TicketStatus = "closed"
)

// HistoryEntry — одна запись журнала тикета (append-only).
type HistoryEntry struct {
	TS    time.Time `json:"ts"`
	Event string    `json:"event"`
}

type Ticket struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Serial    string         `json:"serial"`
	Issue     string         `json:"issue"`
	RemoteOK  bool           `json:"remote_ok"`
	Status    TicketStatus   `json:"status"`
	History   []HistoryEntry `json:"history"`
}

type DeliveryMethod string

const (
	DeliveryStandard DeliveryMethod = "standard"
	DeliveryExpress  DeliveryMethod = "express"
	DeliveryPickup   DeliveryMethod = "pickup"
)

// Label возвращает текст варианта доставки для подтверждения заказа.
func (d DeliveryMethod) Label() string {
	switch d {
	case DeliveryExpress:
		return "Экспресс (1–2 дня)"
	case DeliveryPickup:
		return "Самовывоз партнёр"
	default:
		return "Стандартная (3–5 дней)"
	}
}

func (d DeliveryMethod) Valid() bool {
	switch d {
	case DeliveryStandard, DeliveryExpress, DeliveryPickup:
		return true
	}
	return false
}

type Order struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Product   string         `json:"product"`
	Price     int            `json:"price"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	City      string         `json:"city"`
	Address   string         `json:"address"`
	Delivery  DeliveryMethod `json:"delivery"`
}
