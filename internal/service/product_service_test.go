package service

import (
	"testing"

	"go-minimarket/internal/model"
	"go-minimarket/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newProductService(t *testing.T) (*ProductService, *repository.MemoryProductRepo) {
	t.Helper()
	products := repository.NewMemoryProductRepo()
	return NewProductService(products, zaptest.NewLogger(t)), products
}

func TestSaveProduct_CreatesWithGeneratedID(t *testing.T) {
	svc, _ := newProductService(t)

	product := model.NewProduct("P-100", "Milk", model.WithPrice(decimal.RequireFromString("1.50")))
	saved, err := svc.SaveProduct(product)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)

	loaded, err := svc.GetProductByID(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milk", loaded.Name)
	assert.True(t, loaded.Price.Equal(decimal.RequireFromString("1.50")))
}

func TestSaveProduct_RejectsDuplicateCode(t *testing.T) {
	svc, _ := newProductService(t)

	_, err := svc.SaveProduct(model.NewProduct("P-100", "Milk"))
	require.NoError(t, err)

	_, err = svc.SaveProduct(model.NewProduct("P-100", "Other Milk"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateCode)
}

func TestSaveProduct_UpdateKeepsCode(t *testing.T) {
	svc, _ := newProductService(t)

	saved, err := svc.SaveProduct(model.NewProduct("P-100", "Milk"))
	require.NoError(t, err)

	saved.Name = "Whole Milk"
	saved.Stock = 12
	updated, err := svc.SaveProduct(saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)

	loaded, err := svc.GetProductByID(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Whole Milk", loaded.Name)
	assert.Equal(t, 12, loaded.Stock)
}

func TestSaveProduct_ValidationFailure(t *testing.T) {
	svc, _ := newProductService(t)

	_, err := svc.SaveProduct(model.NewProduct("", "Milk"))
	assert.Error(t, err)

	_, err = svc.SaveProduct(model.NewProduct("P-100", ""))
	assert.Error(t, err)

	_, err = svc.SaveProduct(model.NewProduct("P 100", "Milk"))
	assert.Error(t, err, "codes with spaces are rejected")
}

func TestGetProductByID_NotFound(t *testing.T) {
	svc, _ := newProductService(t)

	_, err := svc.GetProductByID(uuid.New())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc, _ := newProductService(t)

	saved, err := svc.SaveProduct(model.NewProduct("P-100", "Milk"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(saved.ID))
	_, err = svc.GetProductByID(saved.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetAllProducts_Idempotent(t *testing.T) {
	svc, _ := newProductService(t)

	_, err := svc.SaveProduct(model.NewProduct("P-100", "Milk"))
	require.NoError(t, err)
	_, err = svc.SaveProduct(model.NewProduct("P-200", "Bread"))
	require.NoError(t, err)

	first, err := svc.GetAllProducts()
	require.NoError(t, err)
	second, err := svc.GetAllProducts()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, "P-100", first[0].Code)
	assert.Equal(t, "P-200", first[1].Code)
}
