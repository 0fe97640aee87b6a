package domain

import "context"

type Repository interface {
	ListRegions(ctx context.Context) ([]Region, error)
	ListCategories(ctx context.Context) ([]Category, error)
}
