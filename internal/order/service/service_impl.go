package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tikitihq/tikiti/internal/clock"
	"github.com/tikitihq/tikiti/internal/config"
	eventdomain "github.com/tikitihq/tikiti/internal/event/domain"
	"github.com/tikitihq/tikiti/internal/observability/logger"
	"github.com/tikitihq/tikiti/internal/observability/metrics"
	orderdomain "github.com/tikitihq/tikiti/internal/order/domain"
	"github.com/tikitihq/tikiti/internal/ratelimit"
	ticketdomain "github.com/tikitihq/tikiti/internal/ticket/domain"
	"github.com/tikitihq/tikiti/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxTicketsPerOrder = 10

type Service struct {
	db        *gorm.DB
	orders    repository.Repository[orderdomain.Order]
	tickets   repository.Repository[ticketdomain.Ticket]
	eventRepo eventdomain.Repository
	locker    *ratelimit.Locker
	node      *snowflake.Node
	clock     clock.Clock
	metrics   *metrics.Metrics
	lockTTL   time.Duration
	log       *zap.Logger
}

type ServiceParam struct {
	fx.In

	DB        *gorm.DB
	EventRepo eventdomain.Repository
	Locker    *ratelimit.Locker `optional:"true"`
	Node      *snowflake.Node
	Clock     clock.Clock
	Metrics   *metrics.Metrics
	Config    config.Config
	Log       *zap.Logger
}

func NewService(p ServiceParam) orderdomain.Service {
	return &Service{
		db:        p.DB,
		orders:    repository.ProvideStore[orderdomain.Order](p.DB),
		tickets:   repository.ProvideStore[ticketdomain.Ticket](p.DB),
		eventRepo: p.EventRepo,
		locker:    p.Locker,
		node:      p.Node,
		clock:     p.Clock,
		metrics:   p.Metrics,
		lockTTL:   time.Duration(p.Config.Checkout.LockTTLSeconds) * time.Second,
		log:       p.Log.Named("order.service"),
	}
}

// Place runs the whole checkout: validate the payload, snapshot the event
// price, collect a mock payment and issue one ticket per guest in a single
// transaction. Concurrent checkouts for the same event are serialized
// through a short-lived Redis lock when Redis is configured.
func (s *Service) Place(ctx context.Context, req orderdomain.PlaceRequest) (*orderdomain.Response, error) {
	if err := validatePlaceRequest(&req); err != nil {
		return nil, err
	}

	lockKey := fmt.Sprintf("checkout:event:%s", req.EventID)
	token, ok, err := s.locker.TryLock(ctx, lockKey, s.lockTTL)
	if err != nil {
		s.log.Warn("checkout lock unavailable, proceeding without it", zap.Error(err))
	} else if !ok {
		return nil, orderdomain.ErrCheckoutInProgress
	}
	defer func() {
		if token != "" {
			if err := s.locker.Release(context.WithoutCancel(ctx), lockKey, token); err != nil {
				s.log.Warn("failed to release checkout lock", zap.Error(err))
			}
		}
	}()

	event, err := s.eventRepo.FindByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, eventdomain.ErrNotFound
	}

	now := s.clock.Now()
	order := &orderdomain.Order{
		ID:            uuid.NewString(),
		EventID:       event.ID,
		BuyerName:     req.BuyerName,
		BuyerPhone:    req.BuyerPhone,
		BuyerEmail:    req.BuyerEmail,
		Quantity:      req.Quantity,
		UnitPrice:     event.Price,
		TotalAmount:   event.Price.Mul(decimal.NewFromInt(req.Quantity)),
		PaymentMethod: orderdomain.PaymentMethod(req.PaymentMethod),
		PaymentRef:    s.collectPayment(),
		Status:        orderdomain.StatusPaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	issued := make([]*ticketdomain.Ticket, 0, req.Quantity)
	for i := int64(0); i < req.Quantity; i++ {
		serial := fmt.Sprintf("TKT-%s", s.node.Generate())
		issued = append(issued, &ticketdomain.Ticket{
			ID:         uuid.NewString(),
			OrderID:    order.ID,
			EventID:    event.ID,
			HolderName: req.BuyerName,
			Serial:     serial,
			QRCode:     fmt.Sprintf("tikiti://ticket/%s", serial),
			IssuedAt:   now,
			CreatedAt:  now,
		})
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orders.WithTrx(tx).Create(ctx, order); err != nil {
			return err
		}
		return s.tickets.WithTrx(tx).BatchCreate(ctx, issued)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordOrderPlaced(req.PaymentMethod, len(issued))
	logger.FromContext(ctx).Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("event_id", event.ID),
		zap.Int64("quantity", order.Quantity),
		zap.String("payment_method", req.PaymentMethod),
	)

	resp := order.ToResponse()
	resp.Event = event.ToResponse()
	for _, t := range issued {
		resp.Tickets = append(resp.Tickets, t.ToResponse())
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*orderdomain.Response, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, orderdomain.ErrInvalidID
	}

	order, err := s.orders.FindOne(ctx, &orderdomain.Order{ID: id})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, orderdomain.ErrNotFound
	}

	resp := order.ToResponse()
	event, err := s.eventRepo.FindByID(ctx, order.EventID)
	if err != nil {
		return nil, err
	}
	if event != nil {
		resp.Event = event.ToResponse()
	}
	return resp, nil
}

// collectPayment simulates the provider call. Real integrations would hand
// this reference to the mobile money or card gateway.
func (s *Service) collectPayment() string {
	return fmt.Sprintf("PAY-%s", s.node.Generate())
}

func validatePlaceRequest(req *orderdomain.PlaceRequest) error {
	req.EventID = strings.TrimSpace(req.EventID)
	req.BuyerName = strings.TrimSpace(req.BuyerName)
	req.BuyerPhone = strings.TrimSpace(req.BuyerPhone)
	req.BuyerEmail = strings.TrimSpace(req.BuyerEmail)

	if req.EventID == "" {
		return orderdomain.ErrInvalidEventID
	}
	if req.BuyerName == "" {
		return orderdomain.ErrInvalidBuyerName
	}
	if req.BuyerPhone == "" {
		return orderdomain.ErrInvalidBuyerPhone
	}
	if req.BuyerEmail != "" {
		if _, err := mail.ParseAddress(req.BuyerEmail); err != nil {
			return orderdomain.ErrInvalidBuyerEmail
		}
	}
	if req.Quantity < 1 || req.Quantity > maxTicketsPerOrder {
		return orderdomain.ErrInvalidQuantity
	}
	if !orderdomain.PaymentMethod(req.PaymentMethod).Valid() {
		return orderdomain.ErrInvalidPaymentMethod
	}
	return nil
}
