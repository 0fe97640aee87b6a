package service

import (
	"github.com/shopspring/decimal"
	pricingdomain "github.com/tikitihq/tikiti/internal/pricing/domain"
	settingsdomain "github.com/tikitihq/tikiti/internal/settings/domain"
)

var oneHundred = decimal.NewFromInt(100)

// Calculate derives the organizer payout breakdown from a scenario and a
// settings snapshot. It is pure: identical inputs always produce identical
// results, and it never reads shared state mid-computation.
//
// VAT applies only to fee components the organizer bears; guest-borne fees
// are pass-through charges the platform does not tax. Booking fees are
// charged per checkout order, so the order count is guests divided by the
// average order size using real division.
func Calculate(input pricingdomain.CalculationInput, settings settingsdomain.CalculatorSettings) (pricingdomain.CalculationResult, error) {
	var result pricingdomain.CalculationResult

	if input.Guests <= 0 {
		return result, pricingdomain.ErrInvalidGuests
	}
	if input.OrderSize <= 0 {
		return result, pricingdomain.ErrInvalidOrderSize
	}
	if input.TicketPrice.IsNegative() {
		return result, pricingdomain.ErrInvalidTicketPrice
	}
	if !input.CommissionPayer.Valid() {
		return result, pricingdomain.ErrInvalidCommissionPayer
	}
	if !input.BookingPayer.Valid() {
		return result, pricingdomain.ErrInvalidBookingPayer
	}

	guests := decimal.NewFromInt(input.Guests)
	grossRevenue := guests.Mul(input.TicketPrice)
	commissionFee := grossRevenue.Mul(settings.CommissionPercentage).Div(oneHundred)

	orderCount := guests.Div(decimal.NewFromInt(input.OrderSize))
	totalBookingFees := orderCount.Mul(settings.BookingFeeAmount)

	vatBase := decimal.Zero
	if input.CommissionPayer == pricingdomain.PayerOrganizer {
		vatBase = vatBase.Add(commissionFee)
	}
	if input.BookingPayer == pricingdomain.PayerOrganizer {
		vatBase = vatBase.Add(totalBookingFees)
	}
	vatAmount := vatBase.Mul(settings.VATPercentage).Div(oneHundred)

	organizerCosts := vatBase.Add(vatAmount)
	finalPayout := grossRevenue.Sub(organizerCosts)

	guestChargePerOrder := decimal.Zero
	if input.BookingPayer == pricingdomain.PayerGuest {
		guestChargePerOrder = settings.BookingFeeAmount
	}

	result = pricingdomain.CalculationResult{
		TotalTickets:        input.Guests,
		GrossRevenue:        grossRevenue,
		CommissionFee:       commissionFee,
		TotalBookingFees:    totalBookingFees,
		VATAmount:           vatAmount,
		OrganizerCosts:      organizerCosts,
		FinalPayout:         finalPayout,
		GuestChargePerOrder: guestChargePerOrder,
	}
	return result, nil
}
