package domain

import "time"

// Region is an administrative region events are hosted in.
type Region struct {
	Code      string    `json:"code" gorm:"type:varchar(32);primaryKey;column:code"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at,omitempty" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Region) TableName() string { return "regions" }

// Category is a browsable event category with its display label.
type Category struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}
