package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	eventdomain "github.com/tikitihq/tikiti/internal/event/domain"
	"github.com/tikitihq/tikiti/internal/event/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (eventdomain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:events_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&eventdomain.Event{})
	require.NoError(t, err)

	svc := NewService(ServiceParam{
		Repository: repository.NewRepository(db),
		Log:        zap.NewNop(),
	})
	return svc, db
}

func seedEvents(t *testing.T, db *gorm.DB, count int) []eventdomain.Event {
	t.Helper()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	events := make([]eventdomain.Event, 0, count)
	for i := 0; i < count; i++ {
		category := eventdomain.CategoryMusic
		location := "Dar es Salaam"
		if i%2 == 1 {
			category = eventdomain.CategorySports
			location = "Arusha"
		}

		event := eventdomain.Event{
			ID:            uuid.NewString(),
			Slug:          fmt.Sprintf("event-%02d", i),
			Title:         fmt.Sprintf("Event %02d", i),
			Description:   "a night to remember",
			StartsAt:      base.AddDate(0, 1, i),
			Location:      location,
			Venue:         "Main Hall",
			Price:         decimal.NewFromInt(int64(10000 + i*500)),
			Category:      category,
			MoodEnergy:    eventdomain.MoodEnergyHigh,
			MoodVibe:      "energetic",
			MoodIntensity: 8,
			OrganizerName: "Test Organizer",
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
			UpdatedAt:     base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&event).Error)
		events = append(events, event)
	}
	return events
}

func TestList_PaginatesNewestFirst(t *testing.T) {
	svc, db := newTestService(t)
	seeded := seedEvents(t, db, 5)
	ctx := context.Background()

	first, err := svc.List(ctx, eventdomain.ListRequest{PageSize: 2})
	assert.NoError(t, err)
	assert.Len(t, first.Events, 2)
	assert.True(t, first.PageInfo.HasMore)
	assert.NotEmpty(t, first.PageInfo.NextPageToken)
	// Newest created_at wins.
	assert.Equal(t, seeded[4].ID, first.Events[0].ID)
	assert.Equal(t, seeded[3].ID, first.Events[1].ID)

	second, err := svc.List(ctx, eventdomain.ListRequest{PageSize: 2, PageToken: first.PageInfo.NextPageToken})
	assert.NoError(t, err)
	assert.Len(t, second.Events, 2)
	assert.Equal(t, seeded[2].ID, second.Events[0].ID)
	assert.Equal(t, seeded[1].ID, second.Events[1].ID)
	assert.True(t, second.PageInfo.HasMore)

	third, err := svc.List(ctx, eventdomain.ListRequest{PageSize: 2, PageToken: second.PageInfo.NextPageToken})
	assert.NoError(t, err)
	assert.Len(t, third.Events, 1)
	assert.Equal(t, seeded[0].ID, third.Events[0].ID)
	assert.False(t, third.PageInfo.HasMore)
}

func TestList_Filters(t *testing.T) {
	svc, db := newTestService(t)
	seedEvents(t, db, 6)
	ctx := context.Background()

	byCategory, err := svc.List(ctx, eventdomain.ListRequest{Category: eventdomain.CategorySports})
	assert.NoError(t, err)
	assert.Len(t, byCategory.Events, 3)
	for _, e := range byCategory.Events {
		assert.Equal(t, eventdomain.CategorySports, e.Category)
	}

	byLocation, err := svc.List(ctx, eventdomain.ListRequest{Location: "Arusha"})
	assert.NoError(t, err)
	assert.Len(t, byLocation.Events, 3)

	// Search is case-insensitive over title, description and location.
	byQuery, err := svc.List(ctx, eventdomain.ListRequest{Query: "EVENT 03"})
	assert.NoError(t, err)
	assert.Len(t, byQuery.Events, 1)
	assert.Equal(t, "event-03", byQuery.Events[0].Slug)

	none, err := svc.List(ctx, eventdomain.ListRequest{Query: "no such thing"})
	assert.NoError(t, err)
	assert.Empty(t, none.Events)
	assert.False(t, none.PageInfo.HasMore)
}

func TestList_InvalidPagination(t *testing.T) {
	svc, db := newTestService(t)
	seedEvents(t, db, 1)
	ctx := context.Background()

	_, err := svc.List(ctx, eventdomain.ListRequest{PageSize: 500})
	assert.ErrorIs(t, err, eventdomain.ErrInvalidPageSize)

	_, err = svc.List(ctx, eventdomain.ListRequest{PageToken: "not-a-cursor"})
	assert.ErrorIs(t, err, eventdomain.ErrInvalidPageToken)
}

func TestGetByID_AndSlug(t *testing.T) {
	svc, db := newTestService(t)
	seeded := seedEvents(t, db, 2)
	ctx := context.Background()

	byID, err := svc.GetByID(ctx, seeded[0].ID)
	assert.NoError(t, err)
	assert.Equal(t, seeded[0].Title, byID.Title)
	assert.Equal(t, "10000.00", byID.Price)

	bySlug, err := svc.GetBySlug(ctx, seeded[1].Slug)
	assert.NoError(t, err)
	assert.Equal(t, seeded[1].ID, bySlug.ID)

	_, err = svc.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, eventdomain.ErrNotFound)

	_, err = svc.GetByID(ctx, "  ")
	assert.ErrorIs(t, err, eventdomain.ErrInvalidID)
}
