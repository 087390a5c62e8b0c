package repository

import (
	"sync"
	"time"

	"go-minimarket/internal/model"

	"github.com/google/uuid"
)

// In-memory repositories. They back the test suite and the STORAGE=memory
// mode of the server; both keep insertion order so reports stay
// deterministic without a database. Fiber serves requests on concurrent
// goroutines, so all access goes through an RWMutex.

type MemoryProductRepo struct {
	mutex    sync.RWMutex
	products map[uuid.UUID]*model.Product
	order    []uuid.UUID
}

func NewMemoryProductRepo() *MemoryProductRepo {
	return &MemoryProductRepo{
		products: map[uuid.UUID]*model.Product{},
	}
}

func (r *MemoryProductRepo) Create(product *model.Product) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	product.UpdatedAt = time.Now()
	if _, ok := r.products[product.ID]; !ok {
		r.order = append(r.order, product.ID)
	}
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *MemoryProductRepo) FindAll() ([]model.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	products := make([]model.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, *r.products[id])
	}
	return products, nil
}

func (r *MemoryProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *product
	return &copied, nil
}

func (r *MemoryProductRepo) FindByCode(code string) (*model.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, id := range r.order {
		if r.products[id].Code == code {
			copied := *r.products[id]
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryProductRepo) Update(product *model.Product) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return ErrNotFound
	}
	product.UpdatedAt = time.Now()
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *MemoryProductRepo) Delete(id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.products[id]; !ok {
		return nil
	}
	delete(r.products, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type MemoryTransactionRepo struct {
	mutex        sync.RWMutex
	transactions []model.Transaction
	products     *MemoryProductRepo
}

func NewMemoryTransactionRepo(products *MemoryProductRepo) *MemoryTransactionRepo {
	return &MemoryTransactionRepo{products: products}
}

func (r *MemoryTransactionRepo) Create(transaction *model.Transaction) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = time.Now()
	}
	transaction.UpdatedAt = time.Now()
	r.transactions = append(r.transactions, *transaction)
	return nil
}

func (r *MemoryTransactionRepo) FindAll() ([]model.Transaction, error) {
	r.mutex.RLock()
	transactions := make([]model.Transaction, len(r.transactions))
	copy(transactions, r.transactions)
	r.mutex.RUnlock()

	for i := range transactions {
		r.resolveProduct(&transactions[i])
	}
	return transactions, nil
}

func (r *MemoryTransactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	r.mutex.RLock()
	for _, t := range r.transactions {
		if t.ID == id {
			copied := t
			r.mutex.RUnlock()
			r.resolveProduct(&copied)
			return &copied, nil
		}
	}
	r.mutex.RUnlock()
	return nil, ErrNotFound
}

// resolveProduct refreshes the embedded product from the catalog, the
// way Preload does for the Postgres repo. The transaction references the
// product by identity, so later product edits stay visible.
func (r *MemoryTransactionRepo) resolveProduct(t *model.Transaction) {
	if product, err := r.products.FindByID(t.ProductID); err == nil {
		t.Product = *product
	}
}

func (r *MemoryTransactionRepo) LedgerSummary() (*LedgerSummary, error) {
	products, _ := r.products.FindAll()

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var summary LedgerSummary
	summary.TotalProducts = int64(len(products))
	for _, p := range products {
		if p.Stock < lowStockThreshold {
			summary.LowStockCount++
		}
	}
	for _, t := range r.transactions {
		switch t.Kind {
		case model.KindSale:
			summary.SalesTotal = summary.SalesTotal.Add(t.Total)
		case model.KindPurchase:
			summary.PurchasesTotal = summary.PurchasesTotal.Add(t.Total)
		}
	}
	return &summary, nil
}
