package option

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// QueryOption mutates a GORM statement before execution.
type QueryOption interface {
	Apply(stmt *gorm.DB) *gorm.DB
}

type queryOptionFunc func(stmt *gorm.DB) *gorm.DB

func (f queryOptionFunc) Apply(stmt *gorm.DB) *gorm.DB { return f(stmt) }

// WithSortBy orders results by a whitelisted column. Unknown columns and
// orders fall back to created_at DESC so user input can never inject SQL.
func WithSortBy(sortBy, orderBy string, allowed map[string]bool) QueryOption {
	return queryOptionFunc(func(stmt *gorm.DB) *gorm.DB {
		column := strings.TrimSpace(sortBy)
		if column == "" || !allowed[column] {
			column = "created_at"
		}
		direction := strings.ToUpper(strings.TrimSpace(orderBy))
		if direction != "ASC" && direction != "DESC" {
			direction = "DESC"
		}
		return stmt.Order(fmt.Sprintf("%s %s", column, direction))
	})
}

// WithLimit caps the number of rows returned.
func WithLimit(limit int) QueryOption {
	return queryOptionFunc(func(stmt *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return stmt
		}
		return stmt.Limit(limit)
	})
}

// Apply runs a set of options over a statement.
func Apply(stmt *gorm.DB, opts ...QueryOption) *gorm.DB {
	for _, opt := range opts {
		if opt != nil {
			stmt = opt.Apply(stmt)
		}
	}
	return stmt
}
