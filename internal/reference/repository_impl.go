package reference

import (
	"context"

	"github.com/gosimple/slug"
	eventdomain "github.com/tikitihq/tikiti/internal/event/domain"
	"github.com/tikitihq/tikiti/internal/reference/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) ListRegions(ctx context.Context) ([]domain.Region, error) {
	var regions []domain.Region
	err := r.db.WithContext(ctx).
		Raw(`SELECT code, name FROM regions ORDER BY name`).
		Scan(&regions).Error
	if err != nil {
		return nil, err
	}
	return regions, nil
}

// ListCategories returns the fixed v1 category set. Categories are code,
// not data, so there is no table behind them.
func (r *repository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	labels := []string{
		eventdomain.CategoryMusic,
		eventdomain.CategorySports,
		eventdomain.CategoryFood,
		eventdomain.CategoryComedy,
		eventdomain.CategoryBusiness,
	}

	categories := make([]domain.Category, 0, len(labels))
	for _, label := range labels {
		categories = append(categories, domain.Category{
			Slug:  slug.Make(label),
			Label: label,
		})
	}
	return categories, nil
}
