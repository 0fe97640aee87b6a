package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	eventdomain "github.com/tikitihq/tikiti/internal/event/domain"
	eventrepository "github.com/tikitihq/tikiti/internal/event/repository"
	ticketdomain "github.com/tikitihq/tikiti/internal/ticket/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (ticketdomain.Service, *gorm.DB, *eventdomain.Event) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:tickets_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&eventdomain.Event{}, &ticketdomain.Ticket{})
	require.NoError(t, err)

	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	event := &eventdomain.Event{
		ID:            uuid.NewString(),
		Slug:          "zanzibar-food-festival",
		Title:         "Zanzibar Food Festival",
		Description:   "the best of Zanzibar cuisine",
		StartsAt:      now.AddDate(0, 1, 0),
		Location:      "Stone Town, Zanzibar",
		Venue:         "Forodhani Gardens",
		Price:         decimal.NewFromInt(20000),
		Category:      eventdomain.CategoryFood,
		OrganizerName: "Zanzibar Cuisine Co",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, db.Create(event).Error)

	svc := NewService(ServiceParam{
		DB:        db,
		EventRepo: eventrepository.NewRepository(db),
		Log:       zap.NewNop(),
	})
	return svc, db, event
}

func seedTicket(t *testing.T, db *gorm.DB, eventID, orderID, serial string) *ticketdomain.Ticket {
	t.Helper()

	now := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	ticket := &ticketdomain.Ticket{
		ID:         uuid.NewString(),
		OrderID:    orderID,
		EventID:    eventID,
		HolderName: "Neema John",
		Serial:     serial,
		QRCode:     "tikiti://ticket/" + serial,
		IssuedAt:   now,
		CreatedAt:  now,
	}
	require.NoError(t, db.Create(ticket).Error)
	return ticket
}

func TestGetByID_EnrichesEvent(t *testing.T) {
	svc, db, event := newTestService(t)
	ticket := seedTicket(t, db, event.ID, uuid.NewString(), "TKT-1001")
	ctx := context.Background()

	got, err := svc.GetByID(ctx, ticket.ID)
	assert.NoError(t, err)
	assert.Equal(t, ticket.Serial, got.Serial)
	assert.Equal(t, ticket.QRCode, got.QRCode)
	require.NotNil(t, got.Event)
	assert.Equal(t, event.Title, got.Event.Title)
	assert.Equal(t, "20000.00", got.Event.Price)

	_, err = svc.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ticketdomain.ErrNotFound)

	_, err = svc.GetByID(ctx, "")
	assert.ErrorIs(t, err, ticketdomain.ErrInvalidID)
}

func TestListByOrder(t *testing.T) {
	svc, db, event := newTestService(t)
	orderID := uuid.NewString()
	seedTicket(t, db, event.ID, orderID, "TKT-2001")
	seedTicket(t, db, event.ID, orderID, "TKT-2002")
	seedTicket(t, db, event.ID, uuid.NewString(), "TKT-3001")
	ctx := context.Background()

	tickets, err := svc.ListByOrder(ctx, orderID)
	assert.NoError(t, err)
	assert.Len(t, tickets, 2)
	for _, ticket := range tickets {
		assert.Equal(t, orderID, ticket.OrderID)
	}

	empty, err := svc.ListByOrder(ctx, uuid.NewString())
	assert.NoError(t, err)
	assert.Empty(t, empty)
}
