package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewProduct_Defaults(t *testing.T) {
	p := NewProduct("P-1", "Milk")

	assert.Equal(t, "P-1", p.Code)
	assert.Equal(t, "Milk", p.Name)
	assert.True(t, p.Price.Equal(decimal.Zero))
	assert.Equal(t, 0, p.Stock)
	assert.Equal(t, uuid.Nil, p.ID)
}

func TestNewProduct_Options(t *testing.T) {
	id := uuid.New()
	p := NewProduct("P-1", "Milk",
		WithID(id),
		WithPrice(decimal.RequireFromString("1.50")),
		WithStock(25),
	)

	assert.Equal(t, id, p.ID)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("1.50")))
	assert.Equal(t, 25, p.Stock)
}

func TestTransactionKind_Label(t *testing.T) {
	assert.Equal(t, "Sale", KindSale.Label())
	assert.Equal(t, "Purchase", KindPurchase.Label())
}
