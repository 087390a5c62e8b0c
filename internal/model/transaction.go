package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindPurchase TransactionKind = "PURCHASE"
	KindSale     TransactionKind = "SALE"
)

// Label returns the display name used in reports.
func (k TransactionKind) Label() string {
	if k == KindPurchase {
		return "Purchase"
	}
	return "Sale"
}

// Transaction records a single Sale or Purchase against one product.
// The kind is fixed at creation: a Sale carries a customer label, a
// Purchase a supplier label. Transactions are never edited or deleted
// after they are recorded.
type Transaction struct {
	BaseModel
	ProductID uuid.UUID       `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	Product   Product         `json:"product" validate:"-"`
	Kind      TransactionKind `gorm:"type:varchar(10);not null" json:"kind" validate:"required,oneof=PURCHASE SALE"`
	Quantity  int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Total     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total"` // Snapshot of strategy(price, quantity)
	Customer  string          `json:"customer,omitempty"`
	Supplier  string          `json:"supplier,omitempty"`
}
