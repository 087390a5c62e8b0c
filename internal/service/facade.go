package service

import (
	"go-minimarket/internal/model"
	"go-minimarket/internal/repository"

	"github.com/google/uuid"
)

// Facade gives the presentation layer a single dependency over the
// product, transaction, report, and stats services. Pure delegation.
type Facade struct {
	products     *ProductService
	transactions *TransactionService
	reports      *ReportService
	stats        *StatsService
}

func NewFacade(products *ProductService, transactions *TransactionService, reports *ReportService, stats *StatsService) *Facade {
	return &Facade{
		products:     products,
		transactions: transactions,
		reports:      reports,
		stats:        stats,
	}
}

// Product operations

func (f *Facade) GetAllProducts() ([]model.Product, error) {
	return f.products.GetAllProducts()
}

func (f *Facade) GetProductByID(id uuid.UUID) (*model.Product, error) {
	return f.products.GetProductByID(id)
}

func (f *Facade) SaveProduct(product *model.Product) (*model.Product, error) {
	return f.products.SaveProduct(product)
}

func (f *Facade) DeleteProduct(id uuid.UUID) error {
	return f.products.DeleteProduct(id)
}

// Transaction operations

func (f *Facade) GetAllTransactions() ([]model.Transaction, error) {
	return f.transactions.GetAllTransactions()
}

func (f *Facade) CreateTransaction(kind string, productID uuid.UUID, quantity int, strategyName, extraInfo string) (*model.Transaction, error) {
	return f.transactions.CreateTransaction(kind, productID, quantity, strategyName, extraInfo)
}

// Report operations

func (f *Facade) GenerateReport(reportType string) (string, error) {
	return f.reports.GenerateReport(reportType)
}

func (f *Facade) GetLedgerSummary() (*repository.LedgerSummary, error) {
	return f.stats.GetLedgerSummary()
}
