package flow

import (
	"context"
	"strings"

	"github.com/psds-microservice/support-bot/internal/config"
	"github.com/psds-microservice/support-bot/internal/model"
	"github.com/psds-microservice/support-bot/internal/service"
	"github.com/psds-microservice/support-bot/pkg/logger"
)

// Engine принимает ходы пользователей и двигает их диалоги. Состояние
// диалога живёт в SessionStore, записи уходят через сервисы заказов и
// тикетов. Пустой срез ответов означает молчание (например, операторская
// команда от постороннего).
type Engine struct {
	sessions   *SessionStore
	orders     *service.OrderService
	tickets    service.TicketServicer
	product    config.Product
	currency   string
	operatorID string
	log        logger.Logger
}

func NewEngine(
	sessions *SessionStore,
	orders *service.OrderService,
	tickets service.TicketServicer,
	product config.Product,
	currency string,
	operatorID string,
	log logger.Logger,
) *Engine {
	return &Engine{
		sessions:   sessions,
		orders:     orders,
		tickets:    tickets,
		product:    product,
		currency:   currency,
		operatorID: operatorID,
		log:        log,
	}
}

func (e *Engine) Handle(ctx context.Context, upd Update) []Reply {
	if upd.Action != "" {
		return e.handleAction(ctx, upd.UserID, upd.Action)
	}
	return e.handleText(ctx, upd.UserID, strings.TrimSpace(upd.Text))
}

func (e *Engine) handleText(ctx context.Context, userID, text string) []Reply {
	switch text {
	case "/start":
		e.sessions.Clear(userID)
		return []Reply{{Text: welcomeText(), Buttons: mainMenu()}}
	case "/orders":
		return e.listOrders(userID)
	case "/tickets":
		return e.listTickets(userID)
	}

	sess := e.sessions.Get(userID)
	switch sess.State {
	case StateTakingName, StateTakingEmail, StateTakingPhone, StateTakingCity, StateTakingAddress:
		return e.orderAnswer(sess, text)
	case StateTakingSerial:
		return e.takeSerial(sess, text)
	case StateTakingIssue:
		return e.takeIssue(sess, text)
	case StateScheduleRemote:
		return e.scheduleRemote(ctx, userID, sess, text)
	}
	// вне диалога любой текст возвращает в меню
	return []Reply{{Text: "Главное меню\nВыбери раздел.", Buttons: mainMenu()}}
}

func (e *Engine) handleAction(ctx context.Context, userID, action string) []Reply {
	if stage, ticketID, ok := strings.Cut(action, ":"); ok {
		return e.advanceTicket(ctx, model.StageAction(stage), ticketID)
	}

	switch action {
	case actionMenuHome:
		return []Reply{{Text: "Главное меню\nВыбери раздел.", Buttons: mainMenu()}}
	case actionMenuPresentation:
		return []Reply{{
			Text: presentationText(e.product, e.currency),
			Buttons: [][]Button{
				{{Label: "🛒 Купить", Action: actionMenuBuy}},
				{{Label: "🛠 Гарантия", Action: actionMenuWarranty}},
				{{Label: "↩️ В меню", Action: actionMenuHome}},
			},
		}}
	case actionMenuContacts:
		return []Reply{{Text: contactsText(), Buttons: backMenu()}}
	case actionMenuBuy:
		return e.startOrder(userID)
	case actionMenuWarranty:
		return e.startWarranty(userID)
	case actionYes, actionNo:
		sess := e.sessions.Get(userID)
		if sess.State == StateAskRemote {
			return e.answerRemote(ctx, userID, sess, action == actionYes)
		}
	}

	if strings.HasPrefix(action, actionDeliveryPrefix) {
		sess := e.sessions.Get(userID)
		if sess.State == StateTakingDelivery {
			return e.takeDelivery(ctx, userID, sess, action)
		}
	}

	e.log.Debug("unhandled action", "user", userID, "action", action)
	return nil
}
