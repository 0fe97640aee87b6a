package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
)

// PaymentMethod is one of the checkout options offered at purchase time.
type PaymentMethod string

const (
	PaymentMpesa       PaymentMethod = "mpesa"
	PaymentTigoPesa    PaymentMethod = "tigopesa"
	PaymentAirtelMoney PaymentMethod = "airtelmoney"
	PaymentCard        PaymentMethod = "card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMpesa, PaymentTigoPesa, PaymentAirtelMoney, PaymentCard:
		return true
	}
	return false
}

// Order records a completed checkout. Unit price is snapshotted from the
// event at purchase time so later price edits never change past orders.
type Order struct {
	ID            string          `json:"id" gorm:"type:varchar(36);primaryKey"`
	EventID       string          `json:"event_id" gorm:"type:varchar(36);index"`
	BuyerName     string          `json:"buyer_name"`
	BuyerPhone    string          `json:"buyer_phone"`
	BuyerEmail    string          `json:"buyer_email"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price" gorm:"type:numeric(12,2)"`
	TotalAmount   decimal.Decimal `json:"total_amount" gorm:"type:numeric(14,2)"`
	PaymentMethod PaymentMethod   `json:"payment_method" gorm:"type:varchar(16)"`
	PaymentRef    string          `json:"payment_ref" gorm:"type:varchar(32)"`
	Status        Status          `json:"status" gorm:"type:varchar(16)"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}
