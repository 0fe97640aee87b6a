package repository

import (
	"context"
	"errors"
	"strings"

	eventdomain "github.com/tikitihq/tikiti/internal/event/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) eventdomain.Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, filter eventdomain.ListFilter) ([]*eventdomain.Event, error) {
	stmt := r.db.WithContext(ctx).Model(&eventdomain.Event{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		stmt = stmt.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?",
			like, like, like,
		)
	}
	if filter.Category != "" {
		stmt = stmt.Where("category = ?", filter.Category)
	}
	if filter.Location != "" {
		stmt = stmt.Where("location = ?", filter.Location)
	}
	if filter.MoodEnergy != "" {
		stmt = stmt.Where("mood_energy = ?", filter.MoodEnergy)
	}
	if filter.CursorCreatedAt != nil && filter.CursorID != "" {
		stmt = stmt.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			*filter.CursorCreatedAt, *filter.CursorCreatedAt, filter.CursorID,
		)
	}

	stmt = stmt.Order("created_at DESC, id DESC")
	if filter.Limit > 0 {
		stmt = stmt.Limit(filter.Limit)
	}

	var events []*eventdomain.Event
	if err := stmt.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*eventdomain.Event, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *repository) FindBySlug(ctx context.Context, slug string) (*eventdomain.Event, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *repository) findOne(ctx context.Context, query string, arg string) (*eventdomain.Event, error) {
	var event eventdomain.Event
	err := r.db.WithContext(ctx).Where(query, arg).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *repository) Create(ctx context.Context, event *eventdomain.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&eventdomain.Event{}).Count(&count).Error
	return count, err
}
