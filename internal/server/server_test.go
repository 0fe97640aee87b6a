package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tikitihq/tikiti/internal/clock"
	"github.com/tikitihq/tikiti/internal/config"
	eventdomain "github.com/tikitihq/tikiti/internal/event/domain"
	eventrepository "github.com/tikitihq/tikiti/internal/event/repository"
	eventservice "github.com/tikitihq/tikiti/internal/event/service"
	orderdomain "github.com/tikitihq/tikiti/internal/order/domain"
	orderservice "github.com/tikitihq/tikiti/internal/order/service"
	pricingservice "github.com/tikitihq/tikiti/internal/pricing/service"
	"github.com/tikitihq/tikiti/internal/reference"
	referencedomain "github.com/tikitihq/tikiti/internal/reference/domain"
	settingsdomain "github.com/tikitihq/tikiti/internal/settings/domain"
	settingsrepository "github.com/tikitihq/tikiti/internal/settings/repository"
	settingsservice "github.com/tikitihq/tikiti/internal/settings/service"
	ticketdomain "github.com/tikitihq/tikiti/internal/ticket/domain"
	ticketservice "github.com/tikitihq/tikiti/internal/ticket/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testServer struct {
	engine *gin.Engine
	db     *gorm.DB
	event  *eventdomain.Event
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:server_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&settingsdomain.CalculatorSettings{},
		&eventdomain.Event{},
		&orderdomain.Order{},
		&ticketdomain.Ticket{},
		&referencedomain.Region{},
	)
	require.NoError(t, err)

	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	event := &eventdomain.Event{
		ID:            uuid.NewString(),
		Slug:          "simba-sc-vs-young-africans",
		Title:         "Simba SC vs Young Africans",
		Description:   "the biggest derby in Tanzanian football",
		StartsAt:      now.AddDate(0, 1, 0),
		Location:      "Dar es Salaam",
		Venue:         "Benjamin Mkapa Stadium",
		Price:         decimal.NewFromInt(15000),
		Category:      eventdomain.CategorySports,
		IsOutdoor:     true,
		OrganizerName: "Sports Tanzania",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, db.Create(event).Error)

	log := zap.NewNop()
	clk := clock.NewFakeClock(now)
	eventRepo := eventrepository.NewRepository(db)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	settingsSvc := settingsservice.NewService(settingsservice.ServiceParam{
		Repository: settingsrepository.NewRepository(db),
		Clock:      clk,
		Log:        log,
	})
	pricingSvc := pricingservice.NewService(pricingservice.ServiceParam{
		Settings: settingsSvc,
		Log:      log,
	})
	eventSvc := eventservice.NewService(eventservice.ServiceParam{
		Repository: eventRepo,
		Log:        log,
	})
	orderSvc := orderservice.NewService(orderservice.ServiceParam{
		DB:        db,
		EventRepo: eventRepo,
		Node:      node,
		Clock:     clk,
		Config:    config.Config{Checkout: config.CheckoutConfig{LockTTLSeconds: 10}},
		Log:       log,
	})
	ticketSvc := ticketservice.NewService(ticketservice.ServiceParam{
		DB:        db,
		EventRepo: eventRepo,
		Log:       log,
	})

	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	NewServer(ServerParams{
		Gin:         engine,
		Cfg:         config.Config{},
		DB:          db,
		SettingsSvc: settingsSvc,
		PricingSvc:  pricingSvc,
		EventSvc:    eventSvc,
		OrderSvc:    orderSvc,
		TicketSvc:   ticketSvc,
		Refrepo:     reference.NewRepository(db),
	})

	return &testServer{engine: engine, db: db, event: event}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCalculatorSettingsRoundTrip(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/calculator-settings", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "18.00", body["vatPercentage"])
	assert.Equal(t, "4.90", body["commissionPercentage"])
	assert.Equal(t, "7.50", body["bookingFeeAmount"])
	assert.NotEmpty(t, body["id"])

	rec = ts.do(t, http.MethodPut, "/api/calculator-settings", map[string]string{
		"vatPercentage":        "20.00",
		"commissionPercentage": "5.25",
		"bookingFeeAmount":     "10.00",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody(t, rec)
	assert.Equal(t, "20.00", updated["vatPercentage"])
	assert.Equal(t, body["id"], updated["id"])

	rec = ts.do(t, http.MethodGet, "/api/calculator-settings", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5.25", decodeBody(t, rec)["commissionPercentage"])
}

func TestUpdateCalculatorSettings_Validation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPut, "/api/calculator-settings", map[string]string{
		"vatPercentage":        "abc",
		"commissionPercentage": "5.25",
		"bookingFeeAmount":     "10.00",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "validation_error", errObj["type"])
	fieldErrs, ok := errObj["errors"].([]any)
	require.True(t, ok)
	require.Len(t, fieldErrs, 1)
	first := fieldErrs[0].(map[string]any)
	assert.Equal(t, "invalid_vat_percentage", first["code"])
	assert.Equal(t, "vat_percentage", first["field"])
}

func TestEstimatePricing(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/pricing/estimate", map[string]any{
		"guests":          100,
		"ticketPrice":     "50000",
		"orderSize":       2,
		"commissionPayer": "organizer",
		"bookingPayer":    "guest",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "5000000.00", body["grossRevenue"])
	assert.Equal(t, "245000.00", body["commissionFee"])
	assert.Equal(t, "375.00", body["totalBookingFees"])
	assert.Equal(t, "44100.00", body["vatAmount"])
	assert.Equal(t, "289100.00", body["organizerCosts"])
	assert.Equal(t, "4710900.00", body["finalPayout"])
	assert.Equal(t, "7.50", body["guestChargePerOrder"])

	rec = ts.do(t, http.MethodPost, "/api/pricing/estimate", map[string]any{
		"guests":          0,
		"ticketPrice":     "50000",
		"orderSize":       2,
		"commissionPayer": "organizer",
		"bookingPayer":    "guest",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/events", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	events, ok := body["events"].([]any)
	require.True(t, ok)
	require.Len(t, events, 1)
	first := events[0].(map[string]any)
	assert.Equal(t, ts.event.Title, first["title"])
	assert.Equal(t, "15000.00", first["price"])

	rec = ts.do(t, http.MethodGet, "/api/events/"+ts.event.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Slug fallback keeps shared links working.
	rec = ts.do(t, http.MethodGet, "/api/events/"+ts.event.Slug, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ts.event.ID, decodeBody(t, rec)["id"])

	rec = ts.do(t, http.MethodGet, "/api/events/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderCheckoutFlow(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/orders", map[string]any{
		"eventId":       ts.event.ID,
		"buyerName":     "Asha Mrema",
		"buyerPhone":    "+255 712 000 111",
		"quantity":      2,
		"paymentMethod": "mpesa",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	placed := decodeBody(t, rec)
	orderID, _ := placed["id"].(string)
	require.NotEmpty(t, orderID)
	assert.Equal(t, "30000.00", placed["totalAmount"])
	tickets, ok := placed["tickets"].([]any)
	require.True(t, ok)
	assert.Len(t, tickets, 2)

	rec = ts.do(t, http.MethodGet, "/api/orders/"+orderID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/orders/"+orderID+"/tickets", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	listed := decodeBody(t, rec)["tickets"].([]any)
	assert.Len(t, listed, 2)

	ticketID := tickets[0].(map[string]any)["id"].(string)
	rec = ts.do(t, http.MethodGet, "/api/tickets/"+ticketID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/orders/"+uuid.NewString()+"/tickets", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/orders", map[string]any{
		"eventId":       ts.event.ID,
		"buyerName":     "Asha Mrema",
		"buyerPhone":    "+255 712 000 111",
		"quantity":      2,
		"paymentMethod": "cash",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReferenceEndpoints(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.db.Create(&referencedomain.Region{Code: "arusha", Name: "Arusha"}).Error)

	rec := ts.do(t, http.MethodGet, "/api/categories", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	categories := decodeBody(t, rec)["categories"].([]any)
	assert.Len(t, categories, 5)

	rec = ts.do(t, http.MethodGet, "/api/regions", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	regions := decodeBody(t, rec)["regions"].([]any)
	require.Len(t, regions, 1)
	assert.Equal(t, "Arusha", regions[0].(map[string]any)["name"])
}
