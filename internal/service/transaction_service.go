package service

import (
	"errors"
	"fmt"

	"go-minimarket/internal/model"
	"go-minimarket/internal/repository"
	"go-minimarket/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TransactionService runs the ledger workflow: resolve the product, pick
// a pricing strategy, build the transaction, persist it, then notify the
// stock observers.
type TransactionService struct {
	transactions repository.TransactionRepository
	products     repository.ProductRepository
	strategies   map[string]PricingStrategy
	observers    []StockObserver
	logger       *zap.Logger
}

func NewTransactionService(
	transactions repository.TransactionRepository,
	products repository.ProductRepository,
	strategies map[string]PricingStrategy,
	observers []StockObserver,
	logger *zap.Logger,
) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		products:     products,
		strategies:   strategies,
		observers:    observers,
		logger:       logger,
	}
}

func (s *TransactionService) GetAllTransactions() ([]model.Transaction, error) {
	return s.transactions.FindAll()
}

// CreateTransaction records one sale or purchase as a single logical
// unit. An unknown strategy name falls back to regular pricing; an
// unknown kind aborts before anything is persisted. Observer errors are
// returned to the caller, but the transaction stays persisted. There is
// no compensation step.
func (s *TransactionService) CreateTransaction(kind string, productID uuid.UUID, quantity int, strategyName, extraInfo string) (*model.Transaction, error) {
	product, err := s.products.FindByID(productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
		}
		return nil, fmt.Errorf("resolving product: %w", err)
	}

	strategy, ok := s.strategies[strategyName]
	if !ok {
		strategy = s.strategies[RegularPricingName]
	}
	total := strategy.CalculateTotal(product.Price, quantity)

	transaction, err := NewTransaction(kind, product, quantity, total, extraInfo)
	if err != nil {
		return nil, err
	}

	if errs := validator.ValidateStruct(transaction); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	if err := s.transactions.Create(transaction); err != nil {
		return nil, fmt.Errorf("saving transaction: %w", err)
	}

	for _, observer := range s.observers {
		if err := observer.OnTransaction(transaction); err != nil {
			// The transaction is already persisted at this point; stock
			// may be left inconsistent. Surfaced, not compensated.
			s.logger.Error("stock observer failed after persistence",
				zap.String("transaction_id", transaction.ID.String()),
				zap.Error(err),
			)
			return nil, err
		}
	}

	s.logger.Info("transaction recorded",
		zap.String("transaction_id", transaction.ID.String()),
		zap.String("kind", string(transaction.Kind)),
		zap.String("product_id", product.ID.String()),
		zap.Int("quantity", quantity),
		zap.String("total", total.String()),
	)

	return transaction, nil
}
