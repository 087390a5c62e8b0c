package service

import (
	"errors"
	"testing"

	"go-minimarket/internal/model"
	"go-minimarket/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type ledgerFixture struct {
	products     *repository.MemoryProductRepo
	transactions *repository.MemoryTransactionRepo
	service      *TransactionService
}

func newLedgerFixture(t *testing.T, observers ...StockObserver) *ledgerFixture {
	t.Helper()
	products := repository.NewMemoryProductRepo()
	transactions := repository.NewMemoryTransactionRepo(products)
	logger := zaptest.NewLogger(t)

	if observers == nil {
		observers = []StockObserver{NewStockUpdater(products, logger)}
	}

	return &ledgerFixture{
		products:     products,
		transactions: transactions,
		service:      NewTransactionService(transactions, products, PricingStrategies(), observers, logger),
	}
}

func TestCreateTransaction_RegularPricing(t *testing.T) {
	f := newLedgerFixture(t)
	product := seedProduct(t, f.products, 50)

	tx, err := f.service.CreateTransaction("SALE", product.ID, 5, RegularPricingName, "Alice")
	require.NoError(t, err)

	assert.Equal(t, model.KindSale, tx.Kind)
	assert.True(t, tx.Total.Equal(decimal.NewFromInt(50)), "got total %s", tx.Total)

	persisted, err := f.transactions.FindAll()
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, tx.ID, persisted[0].ID)

	updated, err := f.products.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 45, updated.Stock)
}

func TestCreateTransaction_ProductNotFound(t *testing.T) {
	f := newLedgerFixture(t)

	tx, err := f.service.CreateTransaction("SALE", uuid.New(), 5, RegularPricingName, "Alice")
	require.Error(t, err)
	assert.Nil(t, tx)
	assert.ErrorIs(t, err, ErrProductNotFound)

	persisted, err := f.transactions.FindAll()
	require.NoError(t, err)
	assert.Empty(t, persisted, "nothing may be persisted when the product is missing")
}

func TestCreateTransaction_UnknownKindAbortsBeforePersistence(t *testing.T) {
	f := newLedgerFixture(t)
	product := seedProduct(t, f.products, 50)

	tx, err := f.service.CreateTransaction("REFUND", product.ID, 5, RegularPricingName, "Alice")
	require.Error(t, err)
	assert.Nil(t, tx)
	assert.ErrorIs(t, err, ErrUnknownTransactionKind)

	persisted, err := f.transactions.FindAll()
	require.NoError(t, err)
	assert.Empty(t, persisted)

	updated, err := f.products.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Stock, "stock must be untouched")
}

func TestCreateTransaction_UnknownStrategyFallsBackToRegular(t *testing.T) {
	f := newLedgerFixture(t)
	product := seedProduct(t, f.products, 50)

	tx, err := f.service.CreateTransaction("SALE", product.ID, 20, "happyHourPricing", "Alice")
	require.NoError(t, err)
	assert.True(t, tx.Total.Equal(decimal.NewFromInt(200)), "got total %s", tx.Total)
}

func TestCreateTransaction_DiscountStrategy(t *testing.T) {
	f := newLedgerFixture(t)
	product := seedProduct(t, f.products, 50)

	tx, err := f.service.CreateTransaction("SALE", product.ID, 20, DiscountPricingName, "Alice")
	require.NoError(t, err)
	assert.True(t, tx.Total.Equal(decimal.NewFromInt(180)), "got total %s", tx.Total)
}

func TestCreateTransaction_InvalidQuantity(t *testing.T) {
	f := newLedgerFixture(t)
	product := seedProduct(t, f.products, 50)

	tx, err := f.service.CreateTransaction("SALE", product.ID, 0, RegularPricingName, "Alice")
	require.Error(t, err)
	assert.Nil(t, tx)

	persisted, err := f.transactions.FindAll()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

type failingObserver struct{}

func (failingObserver) OnTransaction(*model.Transaction) error {
	return errors.New("observer blew up")
}

func TestCreateTransaction_ObserverFailureKeepsTransaction(t *testing.T) {
	f := newLedgerFixture(t, failingObserver{})
	product := seedProduct(t, f.products, 50)

	tx, err := f.service.CreateTransaction("SALE", product.ID, 5, RegularPricingName, "Alice")
	require.Error(t, err)
	assert.Nil(t, tx)

	// No compensation: the transaction stays persisted even though the
	// observer failed after the save.
	persisted, err := f.transactions.FindAll()
	require.NoError(t, err)
	assert.Len(t, persisted, 1)
}

func TestCreateTransaction_ObserversRunInRegistrationOrder(t *testing.T) {
	var order []string
	first := observerFunc(func(*model.Transaction) error {
		order = append(order, "first")
		return nil
	})
	second := observerFunc(func(*model.Transaction) error {
		order = append(order, "second")
		return nil
	})

	f := newLedgerFixture(t, first, second)
	product := seedProduct(t, f.products, 50)

	_, err := f.service.CreateTransaction("PURCHASE", product.ID, 5, RegularPricingName, "Acme")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

type observerFunc func(*model.Transaction) error

func (f observerFunc) OnTransaction(t *model.Transaction) error { return f(t) }

func TestGetAllTransactions_Idempotent(t *testing.T) {
	f := newLedgerFixture(t)
	product := seedProduct(t, f.products, 50)

	_, err := f.service.CreateTransaction("SALE", product.ID, 2, RegularPricingName, "Alice")
	require.NoError(t, err)
	_, err = f.service.CreateTransaction("PURCHASE", product.ID, 4, RegularPricingName, "Acme")
	require.NoError(t, err)

	firstRead, err := f.service.GetAllTransactions()
	require.NoError(t, err)
	secondRead, err := f.service.GetAllTransactions()
	require.NoError(t, err)
	assert.Equal(t, firstRead, secondRead)
}
