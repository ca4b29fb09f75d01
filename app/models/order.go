package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentMethodStripe   = "stripe"
	PaymentMethodCOD      = "cod"
	PaymentMethodRazorpay = "razorpay"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"

	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodStripe, PaymentMethodCOD, PaymentMethodRazorpay:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type ShippingAddress struct {
	FullName string `gorm:"size:100" json:"fullName"`
	Address  string `gorm:"size:255" json:"address"`
	City     string `gorm:"size:100" json:"city"`
	State    string `gorm:"size:100" json:"state"`
	ZipCode  string `gorm:"size:20" json:"zipCode"`
	Country  string `gorm:"size:100" json:"country"`
	Phone    string `gorm:"size:20" json:"phone"`
}

type Order struct {
	ID     string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID string `gorm:"size:36;index" json:"userId"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`

	Items           []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`

	PaymentMethod string `gorm:"size:20;not null" json:"paymentMethod"`
	PaymentStatus string `gorm:"size:20;not null" json:"paymentStatus"`
	OrderStatus   string `gorm:"size:20;not null;index" json:"orderStatus"`

	Subtotal     decimal.Decimal `gorm:"type:decimal(16,2)" json:"subtotal"`
	ShippingCost decimal.Decimal `gorm:"type:decimal(16,2)" json:"shippingCost"`
	Tax          decimal.Decimal `gorm:"type:decimal(16,2)" json:"tax"`
	Total        decimal.Decimal `gorm:"type:decimal(16,2)" json:"total"`

	// Stripe session id or Razorpay order id, whichever processor was used.
	// The unique index is what makes duplicate submissions collide instead of
	// creating a second order for the same payment.
	PaymentSessionID *string `gorm:"size:255;uniqueIndex" json:"paymentSessionId"`

	Currency string `gorm:"size:3;not null" json:"currency"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
