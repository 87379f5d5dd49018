package flow

import (
	"fmt"
	"strings"
)

// Операторские команды /orders и /tickets: доступны только точному
// совпадению с настроенным идентификатором оператора, для остальных —
// молчаливый no-op. Если оператор не настроен, команд фактически нет.

func (e *Engine) isOperator(userID string) bool {
	return e.operatorID != "" && userID == e.operatorID
}

func (e *Engine) listOrders(userID string) []Reply {
	if !e.isOperator(userID) {
		return nil
	}
	orders := e.orders.List()
	if len(orders) == 0 {
		return []Reply{{Text: "Нет заказов."}}
	}
	var b strings.Builder
	b.WriteString("Заказы")
	for _, o := range orders {
		fmt.Fprintf(&b, "\n• %s: %s — %d %s, %s", o.ID, o.Product, o.Price, e.currency, o.Email)
	}
	return []Reply{{Text: b.String()}}
}

func (e *Engine) listTickets(userID string) []Reply {
	if !e.isOperator(userID) {
		return nil
	}
	tickets := e.tickets.List()
	if len(tickets) == 0 {
		return []Reply{{Text: "Нет тикетов."}}
	}
	var b strings.Builder
	b.WriteString("Тикеты")
	for _, t := range tickets {
		fmt.Fprintf(&b, "\n%s: %s | %s | %s", t.ID, t.Serial, t.Status, truncate(t.Issue, 40))
	}
	return []Reply{{Text: b.String()}}
}

// truncate обрезает строку до n рун (описания проблем бывают длинными).
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
