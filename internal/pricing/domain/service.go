package domain

import (
	"context"

	settingsdomain "github.com/tikitihq/tikiti/internal/settings/domain"
)

// Service produces payout estimates against the current settings snapshot.
type Service interface {
	Estimate(ctx context.Context, req EstimateRequest) (*EstimateResponse, error)
}

// EstimateRequest mirrors the calculator form. Numeric fields arrive as
// strings so the caller controls decimal parsing, matching the settings wire
// format.
type EstimateRequest struct {
	Guests          int64  `json:"guests"`
	TicketPrice     string `json:"ticketPrice"`
	OrderSize       int64  `json:"orderSize"`
	CommissionPayer string `json:"commissionPayer"`
	BookingPayer    string `json:"bookingPayer"`
}

// EstimateResponse renders the breakdown with two-decimal money strings and
// echoes the settings snapshot the estimate was computed against.
type EstimateResponse struct {
	TotalTickets        int64                    `json:"totalTickets"`
	GrossRevenue        string                   `json:"grossRevenue"`
	CommissionFee       string                   `json:"commissionFee"`
	TotalBookingFees    string                   `json:"totalBookingFees"`
	VATAmount           string                   `json:"vatAmount"`
	OrganizerCosts      string                   `json:"organizerCosts"`
	FinalPayout         string                   `json:"finalPayout"`
	GuestChargePerOrder string                   `json:"guestChargePerOrder"`
	Settings            *settingsdomain.Response `json:"settings"`
}
