package repository

import (
	"context"
	"errors"

	settingsdomain "github.com/tikitihq/tikiti/internal/settings/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) settingsdomain.Repository {
	return &repository{db: db}
}

func (r *repository) GetLatest(ctx context.Context) (*settingsdomain.CalculatorSettings, error) {
	var settings settingsdomain.CalculatorSettings
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *repository) Create(ctx context.Context, settings *settingsdomain.CalculatorSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

func (r *repository) Update(ctx context.Context, settings *settingsdomain.CalculatorSettings) error {
	return r.db.WithContext(ctx).Exec(
		`UPDATE calculator_settings
		 SET vat_percentage = ?, commission_percentage = ?, booking_fee_amount = ?, updated_at = ?
		 WHERE id = ?`,
		settings.VATPercentage,
		settings.CommissionPercentage,
		settings.BookingFeeAmount,
		settings.UpdatedAt,
		settings.ID,
	).Error
}
