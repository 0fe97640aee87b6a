package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tikitihq/tikiti/internal/clock"
	settingsdomain "github.com/tikitihq/tikiti/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	repo  settingsdomain.Repository
	clock clock.Clock
	log   *zap.Logger
}

type ServiceParam struct {
	fx.In

	Repository settingsdomain.Repository
	Clock      clock.Clock
	Log        *zap.Logger
}

func NewService(p ServiceParam) settingsdomain.Service {
	return &Service{
		repo:  p.Repository,
		clock: p.Clock,
		log:   p.Log.Named("settings.service"),
	}
}

func (s *Service) Get(ctx context.Context) (*settingsdomain.Response, error) {
	settings, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return settings.ToResponse(), nil
}

func (s *Service) Snapshot(ctx context.Context) (*settingsdomain.CalculatorSettings, error) {
	settings, err := s.repo.GetLatest(ctx)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}
	return s.materializeDefaults(ctx)
}

func (s *Service) Update(ctx context.Context, req settingsdomain.UpdateRequest) (*settingsdomain.Response, error) {
	vat, err := parseNonNegativeDecimal(req.VATPercentage)
	if err != nil {
		return nil, settingsdomain.ErrInvalidVATPercentage
	}
	commission, err := parseNonNegativeDecimal(req.CommissionPercentage)
	if err != nil {
		return nil, settingsdomain.ErrInvalidCommissionPercentage
	}
	bookingFee, err := parseNonNegativeDecimal(req.BookingFeeAmount)
	if err != nil {
		return nil, settingsdomain.ErrInvalidBookingFeeAmount
	}

	current, err := s.repo.GetLatest(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		current, err = s.materializeDefaults(ctx)
		if err != nil {
			return nil, err
		}
	}

	current.VATPercentage = vat
	current.CommissionPercentage = commission
	current.BookingFeeAmount = bookingFee
	current.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}

	s.log.Info("calculator settings updated",
		zap.String("id", current.ID),
		zap.String("vat_percentage", vat.StringFixed(2)),
		zap.String("commission_percentage", commission.StringFixed(2)),
		zap.String("booking_fee_amount", bookingFee.StringFixed(2)),
	)
	return current.ToResponse(), nil
}

func (s *Service) materializeDefaults(ctx context.Context) (*settingsdomain.CalculatorSettings, error) {
	settings := &settingsdomain.CalculatorSettings{
		ID:                   uuid.NewString(),
		VATPercentage:        settingsdomain.DefaultVATPercentage,
		CommissionPercentage: settingsdomain.DefaultCommissionPercentage,
		BookingFeeAmount:     settingsdomain.DefaultBookingFeeAmount,
		UpdatedAt:            s.clock.Now(),
	}
	if err := s.repo.Create(ctx, settings); err != nil {
		return nil, err
	}

	s.log.Info("calculator settings materialized with defaults", zap.String("id", settings.ID))
	return settings, nil
}

func parseNonNegativeDecimal(raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, err
	}
	if value.IsNegative() {
		return decimal.Decimal{}, errNegative
	}
	return value, nil
}

var errNegative = errors.New("negative decimal")
