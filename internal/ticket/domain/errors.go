package domain

import "errors"

var (
	ErrNotFound  = errors.New("ticket_not_found")
	ErrInvalidID = errors.New("invalid_ticket_id")
)
