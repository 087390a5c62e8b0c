package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Stock is mutated by recorded transactions
// and by administrative edits; everything else is set at creation.
type Product struct {
	BaseModel
	Code  string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"code" validate:"required,product_code"`
	Name  string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Price decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Stock int             `gorm:"default:0" json:"stock"`
}

// ProductOption sets an optional field on a new Product.
type ProductOption func(*Product)

func WithID(id uuid.UUID) ProductOption {
	return func(p *Product) { p.ID = id }
}

func WithPrice(price decimal.Decimal) ProductOption {
	return func(p *Product) { p.Price = price }
}

func WithStock(stock int) ProductOption {
	return func(p *Product) { p.Stock = stock }
}

// NewProduct builds a Product from the required code and name plus any
// optional fields. Price defaults to zero.
func NewProduct(code, name string, opts ...ProductOption) *Product {
	p := &Product{
		Code:  code,
		Name:  name,
		Price: decimal.Zero,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
