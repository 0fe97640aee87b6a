package service

import (
	"context"
	"strings"

	eventdomain "github.com/tikitihq/tikiti/internal/event/domain"
	ticketdomain "github.com/tikitihq/tikiti/internal/ticket/domain"
	"github.com/tikitihq/tikiti/pkg/db/option"
	"github.com/tikitihq/tikiti/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	tickets   repository.Repository[ticketdomain.Ticket]
	eventRepo eventdomain.Repository
	log       *zap.Logger
}

type ServiceParam struct {
	fx.In

	DB        *gorm.DB
	EventRepo eventdomain.Repository
	Log       *zap.Logger
}

func NewService(p ServiceParam) ticketdomain.Service {
	return &Service{
		tickets:   repository.ProvideStore[ticketdomain.Ticket](p.DB),
		eventRepo: p.EventRepo,
		log:       p.Log.Named("ticket.service"),
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (*ticketdomain.Response, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ticketdomain.ErrInvalidID
	}

	ticket, err := s.tickets.FindOne(ctx, &ticketdomain.Ticket{ID: id})
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, ticketdomain.ErrNotFound
	}

	resp := ticket.ToResponse()
	event, err := s.eventRepo.FindByID(ctx, ticket.EventID)
	if err != nil {
		return nil, err
	}
	if event != nil {
		resp.Event = event.ToResponse()
	}
	return resp, nil
}

func (s *Service) ListByOrder(ctx context.Context, orderID string) ([]*ticketdomain.Response, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ticketdomain.ErrInvalidID
	}

	tickets, err := s.tickets.Find(ctx, &ticketdomain.Ticket{OrderID: orderID},
		option.WithSortBy("created_at", "ASC", map[string]bool{"created_at": true}),
	)
	if err != nil {
		return nil, err
	}

	out := make([]*ticketdomain.Response, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, t.ToResponse())
	}
	return out, nil
}
