package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	pricingdomain "github.com/tikitihq/tikiti/internal/pricing/domain"
	settingsdomain "github.com/tikitihq/tikiti/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	settings settingsdomain.Service
	log      *zap.Logger
}

type ServiceParam struct {
	fx.In

	Settings settingsdomain.Service
	Log      *zap.Logger
}

func NewService(p ServiceParam) pricingdomain.Service {
	return &Service{
		settings: p.Settings,
		log:      p.Log.Named("pricing.service"),
	}
}

// Estimate takes an explicit snapshot of the current settings and feeds it
// to the pure calculator, so a concurrent admin update can never be observed
// half-applied within one calculation.
func (s *Service) Estimate(ctx context.Context, req pricingdomain.EstimateRequest) (*pricingdomain.EstimateResponse, error) {
	ticketPrice, err := decimal.NewFromString(strings.TrimSpace(req.TicketPrice))
	if err != nil {
		return nil, pricingdomain.ErrInvalidTicketPrice
	}

	input := pricingdomain.CalculationInput{
		Guests:          req.Guests,
		TicketPrice:     ticketPrice,
		OrderSize:       req.OrderSize,
		CommissionPayer: pricingdomain.Payer(strings.TrimSpace(req.CommissionPayer)),
		BookingPayer:    pricingdomain.Payer(strings.TrimSpace(req.BookingPayer)),
	}

	snapshot, err := s.settings.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	result, err := Calculate(input, *snapshot)
	if err != nil {
		return nil, err
	}

	return &pricingdomain.EstimateResponse{
		TotalTickets:        result.TotalTickets,
		GrossRevenue:        result.GrossRevenue.StringFixed(2),
		CommissionFee:       result.CommissionFee.StringFixed(2),
		TotalBookingFees:    result.TotalBookingFees.StringFixed(2),
		VATAmount:           result.VATAmount.StringFixed(2),
		OrganizerCosts:      result.OrganizerCosts.StringFixed(2),
		FinalPayout:         result.FinalPayout.StringFixed(2),
		GuestChargePerOrder: result.GuestChargePerOrder.StringFixed(2),
		Settings:            snapshot.ToResponse(),
	}, nil
}
