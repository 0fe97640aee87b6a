package domain

import "github.com/shopspring/decimal"

// Payer identifies who bears a fee component.
type Payer string

const (
	PayerOrganizer Payer = "organizer"
	PayerGuest     Payer = "guest"
)

func (p Payer) Valid() bool {
	return p == PayerOrganizer || p == PayerGuest
}

// CalculationInput is the organizer-entered scenario for a payout estimate.
type CalculationInput struct {
	Guests         int64
	TicketPrice    decimal.Decimal
	OrderSize      int64
	CommissionPayer Payer
	BookingPayer   Payer
}

// CalculationResult is the full breakdown an organizer sees. Values carry
// full precision; rounding happens only at the presentation boundary.
type CalculationResult struct {
	TotalTickets        int64
	GrossRevenue        decimal.Decimal
	CommissionFee       decimal.Decimal
	TotalBookingFees    decimal.Decimal
	VATAmount           decimal.Decimal
	OrganizerCosts      decimal.Decimal
	FinalPayout         decimal.Decimal
	GuestChargePerOrder decimal.Decimal
}
