package domain

import "errors"

var (
	ErrInvalidGuests          = errors.New("invalid_guests")
	ErrInvalidTicketPrice     = errors.New("invalid_ticket_price")
	ErrInvalidOrderSize       = errors.New("invalid_order_size")
	ErrInvalidCommissionPayer = errors.New("invalid_commission_payer")
	ErrInvalidBookingPayer    = errors.New("invalid_booking_payer")
)
