// Package flow — диалоговый движок бота: конечные автоматы покупки и
// гарантийного обращения поверх транспортно-независимых Update/Reply.
// Сам чат-транспорт (доставка сообщений, отрисовка клавиатур) — внешний
// коллаборатор; движку достаточно текста сообщения или кода действия.
package flow

// Update — один ход пользователя: либо текст сообщения (включая команды
// вида /start), либо код действия нажатой кнопки.
type Update struct {
	UserID string `json:"user_id"`
	Text   string `json:"text,omitempty"`
	Action string `json:"action,omitempty"`
}

// Button — кнопка инлайн-клавиатуры.
type Button struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

// Reply — ответ движка: текст, ряды кнопок и необязательное короткое
// всплывающее уведомление.
type Reply struct {
	Text    string     `json:"text,omitempty"`
	Buttons [][]Button `json:"buttons,omitempty"`
	Alert   string     `json:"alert,omitempty"`
}

const (
	actionMenuHome         = "menu_home"
	actionMenuPresentation = "menu_presentation"
	actionMenuBuy          = "menu_buy"
	actionMenuWarranty     = "menu_warranty"
	actionMenuContacts     = "menu_contacts"
	actionYes              = "yes"
	actionNo               = "no"

	actionDeliveryPrefix = "del_"
)

func mainMenu() [][]Button {
	return [][]Button{
		{{Label: "💻 Презентация OSIO Focus", Action: actionMenuPresentation}},
		{{Label: "🛒 Купить", Action: actionMenuBuy}},
		{{Label: "🛠 Гарантийный сервис", Action: actionMenuWarranty}},
		{{Label: "📩 Контакты", Action: actionMenuContacts}},
	}
}

func backMenu() [][]Button {
	return [][]Button{{{Label: "↩️ В меню", Action: actionMenuHome}}}
}

func yesNoKeyboard() [][]Button {
	return [][]Button{{
		{Label: "Да", Action: actionYes},
		{Label: "Нет", Action: actionNo},
	}}
}

func deliveryKeyboard() [][]Button {
	return [][]Button{
		{{Label: "Стандартная курьерская (3–5 дней)", Action: "del_standard"}},
		{{Label: "Экспресс (1–2 дня)", Action: "del_express"}},
		{{Label: "Самовывоз партнёр", Action: "del_pickup"}},
		{{Label: "↩️ В меню", Action: actionMenuHome}},
	}
}

func progressKeyboard(ticketID string) [][]Button {
	return [][]Button{
		{{Label: "⏳ Ожидать ответ ТЛ (3–5 раб. дней)", Action: "tl_wait:" + ticketID}},
		{{Label: "🏥 Направить в АСЦ (2–3 дня)", Action: "asc_redirect:" + ticketID}},
		{{Label: "📦 Контроль АСЦ и ЗЧ (3–7 дней)", Action: "asc_control:" + ticketID}},
		{{Label: "🛠 Ремонт (7–30 дней)", Action: "repair:" + ticketID}},
		{{Label: "📬 Передача клиенту (3–5 дней)", Action: "handover:" + ticketID}},
		{{Label: "✅ Получение ОС", Action: "feedback:" + ticketID}},
		{{Label: "↩️ В меню", Action: actionMenuHome}},
	}
}
