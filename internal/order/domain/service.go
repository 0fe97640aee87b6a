package domain

import (
	"context"
	"time"

	eventdomain "github.com/tikitihq/tikiti/internal/event/domain"
	ticketdomain "github.com/tikitihq/tikiti/internal/ticket/domain"
)

type Service interface {
	Place(ctx context.Context, req PlaceRequest) (*Response, error)
	GetByID(ctx context.Context, id string) (*Response, error)
}

// PlaceRequest is the checkout payload.
type PlaceRequest struct {
	EventID       string `json:"eventId"`
	BuyerName     string `json:"buyerName"`
	BuyerPhone    string `json:"buyerPhone"`
	BuyerEmail    string `json:"buyerEmail"`
	Quantity      int64  `json:"quantity"`
	PaymentMethod string `json:"paymentMethod"`
}

type Response struct {
	ID            string                   `json:"id"`
	EventID       string                   `json:"eventId"`
	BuyerName     string                   `json:"buyerName"`
	BuyerPhone    string                   `json:"buyerPhone"`
	BuyerEmail    string                   `json:"buyerEmail,omitempty"`
	Quantity      int64                    `json:"quantity"`
	UnitPrice     string                   `json:"unitPrice"`
	TotalAmount   string                   `json:"totalAmount"`
	PaymentMethod string                   `json:"paymentMethod"`
	PaymentRef    string                   `json:"paymentRef"`
	Status        string                   `json:"status"`
	CreatedAt     time.Time                `json:"createdAt"`
	Event         *eventdomain.Response    `json:"event,omitempty"`
	Tickets       []*ticketdomain.Response `json:"tickets,omitempty"`
}

func (o *Order) ToResponse() *Response {
	return &Response{
		ID:            o.ID,
		EventID:       o.EventID,
		BuyerName:     o.BuyerName,
		BuyerPhone:    o.BuyerPhone,
		BuyerEmail:    o.BuyerEmail,
		Quantity:      o.Quantity,
		UnitPrice:     o.UnitPrice.StringFixed(2),
		TotalAmount:   o.TotalAmount.StringFixed(2),
		PaymentMethod: string(o.PaymentMethod),
		PaymentRef:    o.PaymentRef,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
	}
}
