package domain

import (
	"context"
	"time"

	"github.com/tikitihq/tikiti/pkg/db/pagination"
)

type Service interface {
	List(ctx context.Context, req ListRequest) (*ListResponse, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	GetBySlug(ctx context.Context, slug string) (*Response, error)
}

type ListRequest struct {
	Query      string
	Category   string
	Location   string
	MoodEnergy string
	PageToken  string
	PageSize   int
}

type ListResponse struct {
	Events   []*Response          `json:"events"`
	PageInfo *pagination.PageInfo `json:"pageInfo"`
}

type Mood struct {
	Energy    MoodEnergy `json:"energy"`
	Vibe      string     `json:"vibe"`
	Intensity int        `json:"intensity"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Organizer struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
}

type Response struct {
	ID          string      `json:"id"`
	Slug        string      `json:"slug"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	StartsAt    time.Time   `json:"startsAt"`
	Location    string      `json:"location"`
	Venue       string      `json:"venue"`
	Price       string      `json:"price"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	Category    string      `json:"category"`
	Coordinates Coordinates `json:"coordinates"`
	Mood        Mood        `json:"mood"`
	IsOutdoor   bool        `json:"isOutdoor"`
	Organizer   Organizer   `json:"organizer"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func (e *Event) ToResponse() *Response {
	return &Response{
		ID:          e.ID,
		Slug:        e.Slug,
		Title:       e.Title,
		Description: e.Description,
		StartsAt:    e.StartsAt,
		Location:    e.Location,
		Venue:       e.Venue,
		Price:       e.Price.StringFixed(2),
		ImageURL:    e.ImageURL,
		Category:    e.Category,
		Coordinates: Coordinates{Lat: e.Latitude, Lng: e.Longitude},
		Mood: Mood{
			Energy:    e.MoodEnergy,
			Vibe:      e.MoodVibe,
			Intensity: e.MoodIntensity,
		},
		IsOutdoor: e.IsOutdoor,
		Organizer: Organizer{
			Name:    e.OrganizerName,
			Company: e.OrganizerCompany,
		},
		CreatedAt: e.CreatedAt,
	}
}
