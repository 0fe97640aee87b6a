package service

import (
	"context"
	"strings"
	"time"

	eventdomain "github.com/tikitihq/tikiti/internal/event/domain"
	"github.com/tikitihq/tikiti/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service struct {
	repo eventdomain.Repository
	log  *zap.Logger
}

type ServiceParam struct {
	fx.In

	Repository eventdomain.Repository
	Log        *zap.Logger
}

func NewService(p ServiceParam) eventdomain.Service {
	return &Service{
		repo: p.Repository,
		log:  p.Log.Named("event.service"),
	}
}

func (s *Service) List(ctx context.Context, req eventdomain.ListRequest) (*eventdomain.ListResponse, error) {
	limit := req.PageSize
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		return nil, eventdomain.ErrInvalidPageSize
	}

	filter := eventdomain.ListFilter{
		Query:      strings.TrimSpace(req.Query),
		Category:   strings.TrimSpace(req.Category),
		Location:   strings.TrimSpace(req.Location),
		MoodEnergy: strings.TrimSpace(req.MoodEnergy),
		Limit:      limit + 1, // probe row for hasMore
	}

	if token := strings.TrimSpace(req.PageToken); token != "" {
		cursor, err := pagination.DecodeCursor(token)
		if err != nil {
			return nil, eventdomain.ErrInvalidPageToken
		}
		createdAt, err := time.Parse(time.RFC3339Nano, cursor.CreatedAt)
		if err != nil {
			return nil, eventdomain.ErrInvalidPageToken
		}
		filter.CursorCreatedAt = &createdAt
		filter.CursorID = cursor.ID
	}

	events, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	events, pageInfo := pagination.BuildCursorPageInfo(events, limit, func(e *eventdomain.Event) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{
			ID:        e.ID,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
		return token
	})

	resp := &eventdomain.ListResponse{
		Events:   make([]*eventdomain.Response, 0, len(events)),
		PageInfo: pageInfo,
	}
	for _, e := range events {
		resp.Events = append(resp.Events, e.ToResponse())
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*eventdomain.Response, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, eventdomain.ErrInvalidID
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, eventdomain.ErrNotFound
	}
	return event.ToResponse(), nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*eventdomain.Response, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, eventdomain.ErrInvalidID
	}

	event, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, eventdomain.ErrNotFound
	}
	return event.ToResponse(), nil
}
