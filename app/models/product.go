package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultSizes is applied when a product is created without an explicit size run.
var DefaultSizes = []string{"XS", "S", "M", "L", "XL"}

type Product struct {
	ID            string           `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name          string           `gorm:"size:100;not null" json:"name"`
	Price         decimal.Decimal  `gorm:"type:decimal(16,2);not null" json:"price"`
	OriginalPrice *decimal.Decimal `gorm:"type:decimal(16,2)" json:"originalPrice"`
	Image         string           `gorm:"size:500;not null" json:"image"`
	Category      string           `gorm:"size:100;not null;index" json:"category"`
	Description   string           `gorm:"type:text" json:"description"`
	Discount      *int             `json:"discount"`
	IsNew         bool             `gorm:"default:false" json:"isNew"`
	IsSale        bool             `gorm:"default:false;index" json:"isSale"`
	Sizes         []string         `gorm:"serializer:json" json:"sizes"`
	InStock       bool             `gorm:"default:true" json:"inStock"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if len(p.Sizes) == 0 {
		p.Sizes = DefaultSizes
	}
	return
}
