package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/psds-microservice/support-bot/internal/errs"
	"github.com/psds-microservice/support-bot/internal/model"
)

// Диалог гарантийного обращения: серийник → описание проблемы → согласие на
// удалённую диагностику. Тикет создаётся в момент ответа на вопрос о
// диагностике; дальше лестница эскалации двигается кнопками в любой момент.

func (e *Engine) startWarranty(userID string) []Reply {
	sess := e.sessions.Get(userID)
	*sess = Session{State: StateTakingSerial}
	return []Reply{{Text: warrantyIntroText()}}
}

// takeSerial нормализует серийный номер: верхний регистр, без пробельных
// символов.
func (e *Engine) takeSerial(sess *Session, text string) []Reply {
	serial := strings.Join(strings.Fields(strings.ToUpper(text)), "")
	if serial == "" {
		return []Reply{{Text: "Введите серийный номер устройства:"}}
	}
	sess.Serial = serial
	sess.State = StateTakingIssue
	return []Reply{{Text: "Опишите проблему максимально подробно. Можно приложить фото/видео/логи."}}
}

func (e *Engine) takeIssue(sess *Session, text string) []Reply {
	if text == "" {
		return []Reply{{Text: "Опишите проблему максимально подробно. Можно приложить фото/видео/логи."}}
	}
	sess.Issue = text
	sess.State = StateAskRemote
	return []Reply{{
		Text: "Готовы ли вы к удалённому подключению нашего инженера для быстрой диагностики? " +
			"(это ускоряет этап 2 — 15–30 минут)",
		Buttons: yesNoKeyboard(),
	}}
}

// answerRemote — точка создания тикета. При согласии диалог ждёт слот для
// подключения; при отказе сессия завершена, тикет уходит в ожидание ТЛ.
func (e *Engine) answerRemote(ctx context.Context, userID string, sess *Session, remoteOK bool) []Reply {
	ticket, err := e.tickets.Create(ctx, sess.Serial, sess.Issue, remoteOK)
	if err != nil {
		e.log.Error("create ticket", "user", userID, "err", err)
		return []Reply{{Text: "Не удалось создать тикет. Попробуйте позже.", Buttons: backMenu()}}
	}

	if remoteOK {
		sess.State = StateScheduleRemote
		return []Reply{{Text: fmt.Sprintf(
			"✅ Тикет %s создан.\nОтправьте удобные дата/время (UTC+2) и контакт для удалённого подключения.",
			ticket.ID,
		)}}
	}

	e.sessions.Clear(userID)
	return []Reply{{
		Text: fmt.Sprintf(
			"✅ Тикет %s создан.\nМы передали запрос тимлиду (ТЛ). Ожидайте ответ в течение 3–5 рабочих дней.",
			ticket.ID,
		),
		Buttons: progressKeyboard(ticket.ID),
	}}
}

// scheduleRemote записывает слот в последний тикет с теми же серийником и
// описанием (эвристическая корреляция, сохранена как есть) и завершает
// диалог.
func (e *Engine) scheduleRemote(ctx context.Context, userID string, sess *Session, text string) []Reply {
	if text == "" {
		return []Reply{{Text: "Отправьте дата/время (UTC+2) и контакт для удалённого подключения."}}
	}
	ticket, err := e.tickets.ScheduleRemote(ctx, sess.Serial, sess.Issue, text)
	if err != nil {
		e.log.Error("schedule remote", "user", userID, "err", err)
	}
	e.sessions.Clear(userID)

	ticketID := "unknown"
	if ticket != nil {
		ticketID = ticket.ID
	}
	return []Reply{{
		Text:    "Инженер свяжется в указанный слот. Если проблема сохранится — эскалируем к ТЛ (3–5 рабочих дней).",
		Buttons: progressKeyboard(ticketID),
	}}
}

// advanceTicket применяет действие лестницы эскалации к тикету по номеру.
func (e *Engine) advanceTicket(ctx context.Context, action model.StageAction, ticketID string) []Reply {
	if !action.Valid() {
		return nil
	}
	ticket, err := e.tickets.Advance(ctx, ticketID, action)
	if err != nil {
		if errors.Is(err, errs.ErrTicketNotFound) {
			return []Reply{{Alert: "Тикет не найден"}}
		}
		e.log.Error("advance ticket", "id", ticketID, "action", action, "err", err)
		return []Reply{{Alert: "Не удалось обновить тикет"}}
	}
	return []Reply{{Text: fmt.Sprintf("🔄 Тикет %s: %s", ticket.ID, action.Text())}}
}
