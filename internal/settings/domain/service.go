package domain

import (
	"context"
	"time"
)

type Service interface {
	// Get returns the current settings, materializing defaults when absent.
	Get(ctx context.Context) (*Response, error)
	// Update validates and persists new economics values onto the current row.
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	// Snapshot returns the raw current record for calculation callers.
	Snapshot(ctx context.Context) (*CalculatorSettings, error)
}

// UpdateRequest carries the admin-entered decimal strings. All three fields
// are required and must parse as non-negative decimals.
type UpdateRequest struct {
	VATPercentage        string `json:"vatPercentage"`
	CommissionPercentage string `json:"commissionPercentage"`
	BookingFeeAmount     string `json:"bookingFeeAmount"`
}

// Response is the wire shape of a settings record. Decimal fields are
// rendered at fixed two-decimal precision.
type Response struct {
	ID                   string    `json:"id"`
	VATPercentage        string    `json:"vatPercentage"`
	CommissionPercentage string    `json:"commissionPercentage"`
	BookingFeeAmount     string    `json:"bookingFeeAmount"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func (s *CalculatorSettings) ToResponse() *Response {
	return &Response{
		ID:                   s.ID,
		VATPercentage:        s.VATPercentage.StringFixed(2),
		CommissionPercentage: s.CommissionPercentage.StringFixed(2),
		BookingFeeAmount:     s.BookingFeeAmount.StringFixed(2),
		UpdatedAt:            s.UpdatedAt,
	}
}
