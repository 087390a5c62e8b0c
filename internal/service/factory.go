package service

import (
	"fmt"
	"strings"
	"time"

	"go-minimarket/internal/model"

	"github.com/shopspring/decimal"
)

// NewTransaction builds a transaction of the requested kind. The kind is
// matched case-insensitively; PURCHASE stores extraInfo as the supplier,
// SALE as the customer. Nothing is persisted here.
func NewTransaction(kind string, product *model.Product, quantity int, total decimal.Decimal, extraInfo string) (*model.Transaction, error) {
	t := &model.Transaction{
		ProductID: product.ID,
		Product:   *product,
		Quantity:  quantity,
		Total:     total,
	}
	t.CreatedAt = time.Now()

	switch {
	case strings.EqualFold(kind, string(model.KindPurchase)):
		t.Kind = model.KindPurchase
		t.Supplier = extraInfo
	case strings.EqualFold(kind, string(model.KindSale)):
		t.Kind = model.KindSale
		t.Customer = extraInfo
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTransactionKind, kind)
	}

	return t, nil
}
