package domain

import (
	"context"
	"time"
)

type ListFilter struct {
	Query      string
	Category   string
	Location   string
	MoodEnergy string

	// Cursor pagination: rows strictly older than the cursor, newest first.
	CursorCreatedAt *time.Time
	CursorID        string
	Limit           int
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]*Event, error)
	FindByID(ctx context.Context, id string) (*Event, error)
	FindBySlug(ctx context.Context, slug string) (*Event, error)
	Create(ctx context.Context, event *Event) error
	Count(ctx context.Context) (int64, error)
}
