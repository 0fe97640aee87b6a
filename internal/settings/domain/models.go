package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Default economics applied when no settings row exists yet. The store
// materializes these on first read so calculations never run against an
// absent configuration.
var (
	DefaultVATPercentage        = decimal.New(1800, -2) // 18.00
	DefaultCommissionPercentage = decimal.New(490, -2)  // 4.90
	DefaultBookingFeeAmount     = decimal.New(750, -2)  // 7.50 TZS per order
)

// CalculatorSettings is the single logical configuration record behind the
// organizer pricing calculator. Decimal fields are stored at fixed precision
// and travel the wire as strings so currency math never touches binary floats.
type CalculatorSettings struct {
	ID                   string          `gorm:"type:varchar(36);primaryKey"`
	VATPercentage        decimal.Decimal `gorm:"column:vat_percentage;type:numeric(5,2);not null"`
	CommissionPercentage decimal.Decimal `gorm:"column:commission_percentage;type:numeric(5,2);not null"`
	BookingFeeAmount     decimal.Decimal `gorm:"column:booking_fee_amount;type:numeric(10,2);not null"`
	UpdatedAt            time.Time       `gorm:"column:updated_at;not null"`
}

func (CalculatorSettings) TableName() string { return "calculator_settings" }
