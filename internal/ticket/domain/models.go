package domain

import "time"

// Ticket is a held admission issued by a paid order. The QR payload is what
// gate scanners verify; the serial is the human-readable fallback printed on
// the ticket.
type Ticket struct {
	ID         string    `gorm:"type:varchar(36);primaryKey"`
	OrderID    string    `gorm:"column:order_id;type:varchar(36);not null;index"`
	EventID    string    `gorm:"column:event_id;type:varchar(36);not null;index"`
	HolderName string    `gorm:"column:holder_name;type:text;not null"`
	Serial     string    `gorm:"type:text;not null;uniqueIndex"`
	QRCode     string    `gorm:"column:qr_code;type:text;not null"`
	IssuedAt   time.Time `gorm:"column:issued_at;not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (Ticket) TableName() string { return "tickets" }
