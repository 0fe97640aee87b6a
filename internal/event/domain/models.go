package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event categories (v1). Stable identifiers, safe to filter on.
const (
	CategoryMusic    = "Music"
	CategorySports   = "Sports"
	CategoryFood     = "Food"
	CategoryComedy   = "Comedy"
	CategoryBusiness = "Business"
)

// MoodEnergy buckets events by crowd energy for discovery filters.
type MoodEnergy string

const (
	MoodEnergyLow    MoodEnergy = "low"
	MoodEnergyMedium MoodEnergy = "medium"
	MoodEnergyHigh   MoodEnergy = "high"
)

// Event is a published listing in the marketplace catalog. Prices are TZS.
type Event struct {
	ID          string          `gorm:"type:varchar(36);primaryKey"`
	Slug        string          `gorm:"type:text;not null;uniqueIndex"`
	Title       string          `gorm:"type:text;not null"`
	Description string          `gorm:"type:text;not null"`
	StartsAt    time.Time       `gorm:"column:starts_at;not null;index"`
	Location    string          `gorm:"type:text;not null;index"`
	Venue       string          `gorm:"type:text;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageURL    string          `gorm:"column:image_url;type:text"`
	Category    string          `gorm:"type:text;not null;index"`

	Latitude  float64 `gorm:"column:latitude"`
	Longitude float64 `gorm:"column:longitude"`

	MoodEnergy    MoodEnergy `gorm:"column:mood_energy;type:text"`
	MoodVibe      string     `gorm:"column:mood_vibe;type:text"`
	MoodIntensity int        `gorm:"column:mood_intensity"` // 1-10 scale

	IsOutdoor bool `gorm:"column:is_outdoor;not null;default:false"`

	OrganizerName    string `gorm:"column:organizer_name;type:text;not null"`
	OrganizerCompany string `gorm:"column:organizer_company;type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Event) TableName() string { return "events" }
