package domain

import "context"

type Repository interface {
	// GetLatest returns the current settings row, or nil when none exists.
	GetLatest(ctx context.Context) (*CalculatorSettings, error)
	Create(ctx context.Context, settings *CalculatorSettings) error
	Update(ctx context.Context, settings *CalculatorSettings) error
}
