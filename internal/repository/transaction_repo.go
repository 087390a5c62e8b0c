package repository

import (
	"errors"

	"go-minimarket/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(transaction *model.Transaction) error
	FindAll() ([]model.Transaction, error)
	FindByID(id uuid.UUID) (*model.Transaction, error)
	LedgerSummary() (*LedgerSummary, error)
}

// LedgerSummary is an aggregate view over the ledger and the catalog.
type LedgerSummary struct {
	TotalProducts  int64           `json:"total_products"`
	LowStockCount  int64           `json:"low_stock_count"`
	SalesTotal     decimal.Decimal `json:"sales_total"`
	PurchasesTotal decimal.Decimal `json:"purchases_total"`
}

// Products with stock below this show up in LedgerSummary.LowStockCount.
const lowStockThreshold = 10

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Create(transaction *model.Transaction) error {
	return r.db.Create(transaction).Error
}

// FindAll returns the ledger in insertion order. Reports rely on this
// being deterministic across calls.
func (r *transactionRepo) FindAll() ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Preload("Product").Order("created_at ASC, id ASC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Product").First(&transaction, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepo) LedgerSummary() (*LedgerSummary, error) {
	var summary LedgerSummary

	if err := r.db.Model(&model.Product{}).Count(&summary.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Where("stock < ?", lowStockThreshold).
		Count(&summary.LowStockCount).Error; err != nil {
		return nil, err
	}

	err := r.db.Model(&model.Transaction{}).
		Where("kind = ?", model.KindSale).
		Select("COALESCE(SUM(total), 0)").
		Scan(&summary.SalesTotal).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&model.Transaction{}).
		Where("kind = ?", model.KindPurchase).
		Select("COALESCE(SUM(total), 0)").
		Scan(&summary.PurchasesTotal).Error
	if err != nil {
		return nil, err
	}

	return &summary, nil
}
