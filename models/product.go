package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	Description  string  `json:"description"`
	SalePrice    float64 `gorm:"not null" json:"sale_price"` // Required
	RegularPrice float64 `json:"regular_price"`
	BaseCost     float64 `json:"base_cost"`
	Image        string  `gorm:"not null" json:"image"`
	Weight       float64 `gorm:"not null" json:"weight"` // Required
	// Sizes and colors a line item can be ordered in. Stored as JSON text.
	Sizes      StringList `gorm:"type:text" json:"sizes"`
	Colors     StringList `gorm:"type:text" json:"colors"`
	Categories []Category `gorm:"many2many:product_categories;" json:"categories"`
	Stock      int        `json:"stock"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// OnSale reports whether the product is currently discounted.
func (p Product) OnSale() bool {
	return p.RegularPrice > 0 && p.SalePrice < p.RegularPrice
}

// HasSize reports whether size is one of the product's sizes. A product with
// no declared sizes accepts any size (including none).
func (p Product) HasSize(size string) bool {
	if len(p.Sizes) == 0 {
		return true
	}
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasColor reports whether color is one of the product's colors.
func (p Product) HasColor(color string) bool {
	if len(p.Colors) == 0 {
		return true
	}
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}
