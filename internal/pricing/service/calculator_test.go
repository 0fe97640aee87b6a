package service

import (
	"testing"

	"github.com/shopspring/decimal"
	pricingdomain "github.com/tikitihq/tikiti/internal/pricing/domain"
	settingsdomain "github.com/tikitihq/tikiti/internal/settings/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSettings() settingsdomain.CalculatorSettings {
	return settingsdomain.CalculatorSettings{
		ID:                   "test",
		VATPercentage:        settingsdomain.DefaultVATPercentage,
		CommissionPercentage: settingsdomain.DefaultCommissionPercentage,
		BookingFeeAmount:     settingsdomain.DefaultBookingFeeAmount,
	}
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestCalculate_WorkedExample(t *testing.T) {
	input := pricingdomain.CalculationInput{
		Guests:          100,
		TicketPrice:     dec(t, "50000"),
		OrderSize:       2,
		CommissionPayer: pricingdomain.PayerOrganizer,
		BookingPayer:    pricingdomain.PayerGuest,
	}

	result, err := Calculate(input, defaultSettings())
	require.NoError(t, err)

	assert.Equal(t, int64(100), result.TotalTickets)
	assert.True(t, result.GrossRevenue.Equal(dec(t, "5000000")), "gross %s", result.GrossRevenue)
	assert.True(t, result.CommissionFee.Equal(dec(t, "245000")), "commission %s", result.CommissionFee)
	assert.True(t, result.TotalBookingFees.Equal(dec(t, "375")), "booking fees %s", result.TotalBookingFees)
	assert.True(t, result.VATAmount.Equal(dec(t, "44100")), "vat %s", result.VATAmount)
	assert.True(t, result.OrganizerCosts.Equal(dec(t, "289100")), "costs %s", result.OrganizerCosts)
	assert.True(t, result.FinalPayout.Equal(dec(t, "4710900")), "payout %s", result.FinalPayout)
	assert.True(t, result.GuestChargePerOrder.Equal(dec(t, "7.50")), "guest charge %s", result.GuestChargePerOrder)
}

func TestCalculate_OrganizerBearsEverything(t *testing.T) {
	input := pricingdomain.CalculationInput{
		Guests:          100,
		TicketPrice:     dec(t, "50000"),
		OrderSize:       2,
		CommissionPayer: pricingdomain.PayerOrganizer,
		BookingPayer:    pricingdomain.PayerOrganizer,
	}

	result, err := Calculate(input, defaultSettings())
	require.NoError(t, err)

	// vatBase = 245000 + 375, vat = 245375 * 0.18 = 44167.50
	assert.True(t, result.VATAmount.Equal(dec(t, "44167.50")), "vat %s", result.VATAmount)
	assert.True(t, result.OrganizerCosts.Equal(dec(t, "289542.50")), "costs %s", result.OrganizerCosts)
	assert.True(t, result.FinalPayout.Equal(dec(t, "4710457.50")), "payout %s", result.FinalPayout)
	assert.True(t, result.GuestChargePerOrder.IsZero())
}

func TestCalculate_GuestBearsEverything(t *testing.T) {
	input := pricingdomain.CalculationInput{
		Guests:          10,
		TicketPrice:     dec(t, "15000"),
		OrderSize:       1,
		CommissionPayer: pricingdomain.PayerGuest,
		BookingPayer:    pricingdomain.PayerGuest,
	}

	result, err := Calculate(input, defaultSettings())
	require.NoError(t, err)

	// No organizer-borne fees means no VAT base at all.
	assert.True(t, result.VATAmount.IsZero())
	assert.True(t, result.OrganizerCosts.IsZero())
	assert.True(t, result.FinalPayout.Equal(result.GrossRevenue))
	assert.True(t, result.GuestChargePerOrder.Equal(dec(t, "7.50")))
}

func TestCalculate_PayerSwitchSymmetry(t *testing.T) {
	settings := defaultSettings()
	base := pricingdomain.CalculationInput{
		Guests:       240,
		TicketPrice:  dec(t, "18000"),
		OrderSize:    3,
		BookingPayer: pricingdomain.PayerGuest,
	}

	organizerPays := base
	organizerPays.CommissionPayer = pricingdomain.PayerOrganizer
	guestPays := base
	guestPays.CommissionPayer = pricingdomain.PayerGuest

	organizerResult, err := Calculate(organizerPays, settings)
	require.NoError(t, err)
	guestResult, err := Calculate(guestPays, settings)
	require.NoError(t, err)

	// Moving the commission to guests recovers the commission fee plus its VAT.
	taxMultiplier := decimal.NewFromInt(1).Add(settings.VATPercentage.Div(oneHundred))
	expectedDelta := organizerResult.CommissionFee.Mul(taxMultiplier)
	delta := guestResult.FinalPayout.Sub(organizerResult.FinalPayout)
	assert.True(t, delta.Equal(expectedDelta), "delta %s want %s", delta, expectedDelta)
}

func TestCalculate_FractionalOrderCount(t *testing.T) {
	input := pricingdomain.CalculationInput{
		Guests:          5,
		TicketPrice:     dec(t, "10000"),
		OrderSize:       2,
		CommissionPayer: pricingdomain.PayerGuest,
		BookingPayer:    pricingdomain.PayerOrganizer,
	}

	result, err := Calculate(input, defaultSettings())
	require.NoError(t, err)

	// 5/2 = 2.5 orders, real division.
	assert.True(t, result.TotalBookingFees.Equal(dec(t, "18.75")), "booking fees %s", result.TotalBookingFees)
}

func TestCalculate_Idempotent(t *testing.T) {
	input := pricingdomain.CalculationInput{
		Guests:          777,
		TicketPrice:     dec(t, "12345.67"),
		OrderSize:       4,
		CommissionPayer: pricingdomain.PayerOrganizer,
		BookingPayer:    pricingdomain.PayerOrganizer,
	}
	settings := defaultSettings()

	first, err := Calculate(input, settings)
	require.NoError(t, err)
	second, err := Calculate(input, settings)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculate_InvalidInput(t *testing.T) {
	valid := pricingdomain.CalculationInput{
		Guests:          100,
		TicketPrice:     dec(t, "50000"),
		OrderSize:       2,
		CommissionPayer: pricingdomain.PayerOrganizer,
		BookingPayer:    pricingdomain.PayerGuest,
	}

	cases := []struct {
		name    string
		mutate  func(in *pricingdomain.CalculationInput)
		wantErr error
	}{
		{"zero guests", func(in *pricingdomain.CalculationInput) { in.Guests = 0 }, pricingdomain.ErrInvalidGuests},
		{"negative guests", func(in *pricingdomain.CalculationInput) { in.Guests = -1 }, pricingdomain.ErrInvalidGuests},
		{"zero order size", func(in *pricingdomain.CalculationInput) { in.OrderSize = 0 }, pricingdomain.ErrInvalidOrderSize},
		{"negative ticket price", func(in *pricingdomain.CalculationInput) { in.TicketPrice = dec(t, "-1") }, pricingdomain.ErrInvalidTicketPrice},
		{"unknown commission payer", func(in *pricingdomain.CalculationInput) { in.CommissionPayer = "platform" }, pricingdomain.ErrInvalidCommissionPayer},
		{"unknown booking payer", func(in *pricingdomain.CalculationInput) { in.BookingPayer = "" }, pricingdomain.ErrInvalidBookingPayer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)
			_, err := Calculate(input, defaultSettings())
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
