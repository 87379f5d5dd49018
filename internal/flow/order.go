package flow

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/psds-microservice/support-bot/internal/model"
	"github.com/psds-microservice/support-bot/internal/service"
)

// Диалог покупки: строго линейная цепочка шагов, каждый шаг принимает один
// ответ, валидирует его и фиксирует поле черновика. Таблица переходов
// (state, вход) → (следующий state, побочный эффект) — см. orderSteps.

var emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

type orderStep struct {
	// assign фиксирует проверенный ответ в черновике заказа
	assign func(d *service.OrderDraft, v string)
	// reprompt — текст повтора шага при невалидном вводе ("" — валиден)
	validate func(v string) (reprompt string)
	next     State
	// prompt следующего шага
	prompt string
}

var orderSteps = map[State]orderStep{
	StateTakingName: {
		assign: func(d *service.OrderDraft, v string) { d.Name = v },
		next:   StateTakingEmail,
		prompt: "✉️ Ваша электронная почта (для счёта и отслеживания):",
	},
	StateTakingEmail: {
		assign: func(d *service.OrderDraft, v string) { d.Email = v },
		validate: func(v string) string {
			if !emailRe.MatchString(v) {
				return "Похоже, это не похоже на email. Попробуйте ещё раз:"
			}
			return ""
		},
		next:   StateTakingPhone,
		prompt: "📞 Телефон (формат +27…):",
	},
	StateTakingPhone: {
		assign: func(d *service.OrderDraft, v string) { d.Phone = v },
		next:   StateTakingCity,
		prompt: "🏙 Город в ЮАР (например, Кейптаун/Йоханнесбург/Дурбан):",
	},
	StateTakingCity: {
		assign: func(d *service.OrderDraft, v string) { d.City = v },
		next:   StateTakingAddress,
		prompt: "🏠 Адрес доставки (улица, дом, индекс):",
	},
	StateTakingAddress: {
		assign: func(d *service.OrderDraft, v string) { d.Address = v },
		next:   StateTakingDelivery,
		prompt: "🚚 Выберите способ доставки:",
	},
}

func (e *Engine) startOrder(userID string) []Reply {
	sess := e.sessions.Get(userID)
	*sess = Session{State: StateTakingName}
	return []Reply{{Text: "🛒 Оформление заказа\nКак к вам обращаться (Имя и Фамилия)?"}}
}

// orderAnswer обрабатывает текстовый ответ на текущем шаге покупки.
// Невалидный ввод повторяет тот же шаг без смены состояния и без записи.
func (e *Engine) orderAnswer(sess *Session, text string) []Reply {
	step := orderSteps[sess.State]
	if text == "" {
		return []Reply{{Text: "Нужен текстовый ответ. Попробуйте ещё раз:"}}
	}
	if step.validate != nil {
		if reprompt := step.validate(text); reprompt != "" {
			return []Reply{{Text: reprompt}}
		}
	}
	step.assign(&sess.Order, text)
	sess.State = step.next

	reply := Reply{Text: step.prompt}
	if step.next == StateTakingDelivery {
		reply.Buttons = deliveryKeyboard()
	}
	return []Reply{reply}
}

// takeDelivery — терминальный переход: выбор доставки завершает диалог,
// заказ сохраняется, сессия очищается.
func (e *Engine) takeDelivery(ctx context.Context, userID string, sess *Session, action string) []Reply {
	method := model.DeliveryMethod(strings.TrimPrefix(action, actionDeliveryPrefix))
	if !method.Valid() {
		return nil
	}
	sess.Order.Delivery = method

	order, err := e.orders.Create(ctx, sess.Order)
	if err != nil {
		e.log.Error("create order", "user", userID, "err", err)
		return []Reply{{Text: "Не удалось сохранить заказ. Попробуйте позже.", Buttons: backMenu()}}
	}
	e.sessions.Clear(userID)

	text := fmt.Sprintf(
		"✅ Заказ создан\n"+
			"Номер: %s\n"+
			"Товар: %s\n"+
			"Сумма к оплате: %s\n\n"+
			"Получатель: %s\n"+
			"Email: %s\n"+
			"Телефон: %s\n"+
			"Город: %s\n"+
			"Адрес: %s\n"+
			"Доставка: %s\n\n"+
			"Мы свяжемся с вами для счёта и подтверждения.\n"+
			"Если допустили ошибку — просто повторите /start и оформите заново.",
		order.ID, order.Product, formatMoney(order.Price, e.currency),
		order.Name, order.Email, order.Phone, order.City, order.Address,
		order.Delivery.Label(),
	)
	return []Reply{{Text: text, Buttons: backMenu(), Alert: "Заказ оформлен!"}}
}
