package domain

import "errors"

var (
	ErrNotFound             = errors.New("order_not_found")
	ErrInvalidID            = errors.New("invalid_order_id")
	ErrInvalidEventID       = errors.New("invalid_event_id")
	ErrInvalidBuyerName     = errors.New("invalid_buyer_name")
	ErrInvalidBuyerPhone    = errors.New("invalid_buyer_phone")
	ErrInvalidBuyerEmail    = errors.New("invalid_buyer_email")
	ErrInvalidQuantity      = errors.New("invalid_quantity")
	ErrInvalidPaymentMethod = errors.New("invalid_payment_method")
	ErrCheckoutInProgress   = errors.New("checkout_in_progress")
)
