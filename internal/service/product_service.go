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

// ProductService covers catalog maintenance: list, lookup, save, delete.
type ProductService struct {
	products repository.ProductRepository
	logger   *zap.Logger
}

func NewProductService(products repository.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{products: products, logger: logger}
}

func (s *ProductService) GetAllProducts() ([]model.Product, error) {
	return s.products.FindAll()
}

func (s *ProductService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		return nil, err
	}
	return product, nil
}

// SaveProduct creates or updates a product. The code must be unique
// across the catalog.
func (s *ProductService) SaveProduct(product *model.Product) (*model.Product, error) {
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	existing, err := s.products.FindByCode(product.Code)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.ID != product.ID {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, product.Code)
	}

	if product.ID == uuid.Nil {
		if err := s.products.Create(product); err != nil {
			return nil, fmt.Errorf("saving product: %w", err)
		}
	} else {
		if err := s.products.Update(product); err != nil {
			return nil, fmt.Errorf("saving product: %w", err)
		}
	}

	s.logger.Info("product saved",
		zap.String("product_id", product.ID.String()),
		zap.String("code", product.Code),
	)
	return product, nil
}

func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	return s.products.Delete(id)
}
