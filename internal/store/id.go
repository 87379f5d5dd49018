package store

import (
	"fmt"
	"time"
)

// OrderID строит человекочитаемый номер заказа: O<YYYYMMDD>-<n+1, 4 знака>,
// где n — текущий размер коллекции. Глобальная уникальность при параллельном
// создании не гарантируется; для масштаба системы это принято.
func OrderID(n int, t time.Time) string {
	return sequentialID("O", n, t)
}

// TicketID — то же для тикетов, префикс T.
func TicketID(n int, t time.Time) string {
	return sequentialID("T", n, t)
}

func sequentialID(prefix string, n int, t time.Time) string {
	return fmt.Sprintf("%s%s-%04d", prefix, t.UTC().Format("20060102"), n+1)
}
