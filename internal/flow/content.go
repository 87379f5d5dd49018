package flow

import (
	"fmt"
	"strings"

	"github.com/psds-microservice/support-bot/internal/config"
)

// Карточка товара и тексты бота. Имя и цена приходят из конфигурации,
// остальное — статичная витрина.

var productSpecs = []string{
	"14\" IPS 1920x1200, антибликовый",
	"AMD Ryzen 7 / 16 ГБ / 1 ТБ NVMe",
	"Wi‑Fi 6, BT 5.2, 2×USB‑C, HDMI, microSD",
	"Вес 1.35 кг, корпус с защитой от пыли (IP5X*)",
	"Батарея 70 Вт·ч — до 14 ч работы",
}

const (
	productTagline    = "Сделан в России. Готов к пустыне. Рождён для дела."
	productDisclaimer = "* Степень пылезащиты ориентировочная для демо. Уточняйте точные IP-показатели в финальной спецификации."

	flavorHero = "Он — курьер знаний. В мире, где влага — роскошь, он выбирает устройства, на которые можно положиться."
	flavorMood = "hi‑tech / dry life: минимум лишнего, максимум выносливости и пользы."
)

var warrantySteps = []string{
	"1) Обращение: сайт / email / заявка через КЦ.",
	"2) Решение силами ТП: инструкции по переписке / удалённое подключение (обработка 15–30 минут в зависимости от загрузки).",
	"3) Эскалация ТЛ: если решение не найдено. Ответ в течение 3–5 рабочих дней.",
	"4) Направление в АСЦ: при отсутствии решения. В особых случаях — забор курьером (2–3 дня).",
	"5) Контроль работы АСЦ: при уведомлении о визите. Помощь в логистике ЗЧ (3–7 дней).",
	"6) Ремонт устройства: 7–30 дней, зависит от удалённости АСЦ и сложности.",
	"7) Передача устройства клиенту: 3–5 дней, зависит от удалённости.",
	"8) Получение ОС (обратная связь).",
}

// formatMoney — сумма с разрядами через пробел и кодом валюты: "14 999 ZAR".
func formatMoney(amount int, currency string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + " " + currency
}

func welcomeText() string {
	return "OSIO Focus line\n" +
		flavorHero + "\n\n" +
		"Мир «" + flavorMood + "». Ты в официальном чат‑боте OSIO.\n" +
		"Выбирай действие ниже."
}

func presentationText(product config.Product, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s — %s\n\n", product.Name, productTagline)
	fmt.Fprintf(&b, "Цена: %s\n\n", formatMoney(product.Price, currency))
	b.WriteString("Ключевые характеристики:\n")
	for _, s := range productSpecs {
		b.WriteString("• " + s + "\n")
	}
	b.WriteString("\n" + productDisclaimer)
	return b.String()
}

func contactsText() string {
	return "Контакты OSIO для Южной Африки\n" +
		"• Email: support@osio.example\n" +
		"• Телефон: +27 10 555 0123\n" +
		"• Вопросы по партнёрству: partners@osio.example"
}

func warrantyIntroText() string {
	var b strings.Builder
	b.WriteString("🛠 Гарантийный сервис OSIO\nРаботаем по следующему регламенту:\n")
	for _, s := range warrantySteps {
		b.WriteString("• " + s + "\n")
	}
	b.WriteString("\nНачнём оформление тикета. Введите серийный номер устройства:")
	return b.String()
}
