package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is a snapshot of the product at purchase time, not a live
// reference. Later product edits or deletes never touch placed orders.
type OrderItem struct {
	ID        string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"-"`
	OrderID   string          `gorm:"size:36;not null;index" json:"-"`
	ProductID string          `gorm:"size:36;not null" json:"productId"`
	Name      string          `gorm:"size:100;not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Size      string          `gorm:"size:10" json:"size"`
	Image     string          `gorm:"size:500" json:"image"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
