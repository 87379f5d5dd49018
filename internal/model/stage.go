package model

// StageAction — идемпотентное действие эскалации, адресуемое по id тикета.
// Каждое действие добавляет одну запись в историю и перезаписывает статус;
// легальность перехода от текущего статуса не проверяется (поведение
// сохранено как есть: закрытый тикет можно снова двинуть по лестнице).
type StageAction string

const (
	ActionTLWait      StageAction = "tl_wait"
	ActionASCRedirect StageAction = "asc_redirect"
	ActionASCControl  StageAction = "asc_control"
	ActionRepair      StageAction = "repair"
	ActionHandover    StageAction = "handover"
	ActionFeedback    StageAction = "feedback"
)

var stageStatus = map[StageAction]TicketStatus{
	ActionTLWait:      TicketStatusTLWait,
	ActionASCRedirect: TicketStatusASCRedirect,
	ActionASCControl:  TicketStatusASCControl,
	ActionRepair:      TicketStatusRepair,
	ActionHandover:    TicketStatusHandover,
	ActionFeedback:    TicketStatusClosed,
}

var stageText = map[StageAction]string{
	ActionTLWait:      "Ожидание ответа ТЛ (3–5 раб. дней).",
	ActionASCRedirect: "Направлено в АСЦ. В особых случаях — забор курьером (2–3 дня).",
	ActionASCControl:  "Контроль АСЦ и логистики ЗЧ (3–7 дней).",
	ActionRepair:      "Ремонт (7–30 дней).",
	ActionHandover:    "Передача устройства клиенту (3–5 дней).",
	ActionFeedback:    "Получение ОС. Спасибо за обратную связь!",
}

func (a StageAction) Valid() bool {
	_, ok := stageStatus[a]
	return ok
}

// Status — статус, который действие выставляет тикету (feedback закрывает).
func (a StageAction) Status() TicketStatus {
	return stageStatus[a]
}

// Text — описание этапа для ответа пользователю.
func (a StageAction) Text() string {
	return stageText[a]
}

// StageActions — все шесть действий в порядке лестницы эскалации.
func StageActions() []StageAction {
	return []StageAction{
		ActionTLWait,
		ActionASCRedirect,
		ActionASCControl,
		ActionRepair,
		ActionHandover,
		ActionFeedback,
	}
}
