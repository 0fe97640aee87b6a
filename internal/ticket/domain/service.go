package domain

import (
	"context"
	"time"

	eventdomain "github.com/tikitihq/tikiti/internal/event/domain"
)

type Service interface {
	GetByID(ctx context.Context, id string) (*Response, error)
	ListByOrder(ctx context.Context, orderID string) ([]*Response, error)
}

type Response struct {
	ID         string                `json:"id"`
	OrderID    string                `json:"orderId"`
	EventID    string                `json:"eventId"`
	HolderName string                `json:"holderName"`
	Serial     string                `json:"serial"`
	QRCode     string                `json:"qrCode"`
	IssuedAt   time.Time             `json:"issuedAt"`
	Event      *eventdomain.Response `json:"event,omitempty"`
}

func (t *Ticket) ToResponse() *Response {
	return &Response{
		ID:         t.ID,
		OrderID:    t.OrderID,
		EventID:    t.EventID,
		HolderName: t.HolderName,
		Serial:     t.Serial,
		QRCode:     t.QRCode,
		IssuedAt:   t.IssuedAt,
	}
}
