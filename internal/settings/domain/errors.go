package domain

import "errors"

var (
	ErrInvalidVATPercentage        = errors.New("invalid_vat_percentage")
	ErrInvalidCommissionPercentage = errors.New("invalid_commission_percentage")
	ErrInvalidBookingFeeAmount     = errors.New("invalid_booking_fee_amount")
)
