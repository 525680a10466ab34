package models

import "time"

// Payment order lifecycle. An order moves created -> verified at most
// once; failed is terminal for gateway-side declines. Orders are never
// deleted so disputes can be resolved against the full history.
const (
	OrderStatusCreated  = "created"
	OrderStatusVerified = "verified"
	OrderStatusFailed   = "failed"
)

// PaymentOrder records one checkout attempt against the payment gateway.
// OrderID is the gateway-issued id and is globally unique.
type PaymentOrder struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	OrderID         string    `gorm:"type:varchar(64);uniqueIndex" json:"order_id"`
	UserID          string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	AmountMinorUnit int64     `gorm:"not null" json:"amount"`
	Currency        string    `gorm:"type:varchar(8);not null;default:'INR'" json:"currency"`
	Receipt         string    `gorm:"type:varchar(64)" json:"receipt"`
	Status          string    `gorm:"type:varchar(20);not null;default:'created';index" json:"status"`
	PaymentID       string    `gorm:"type:varchar(64);default:''" json:"payment_id,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsVerified reports whether the order already granted entitlement.
func (o *PaymentOrder) IsVerified() bool {
	return o.Status == OrderStatusVerified
}
