package errs

import "errors"

var (
	// ErrTicketNotFound — действие эскалации адресовано несуществующему тикету.
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrInvalidAction — неизвестное действие эскалации.
	ErrInvalidAction = errors.New("invalid stage action")
)
