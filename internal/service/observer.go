package service

import (
	"encoding/json"
	"fmt"

	"go-minimarket/internal/model"
	"go-minimarket/internal/repository"
	"go-minimarket/internal/ws"

	"go.uber.org/zap"
)

// StockObserver reacts to a transaction after it was persisted.
// Observers run in registration order; a failure propagates to the
// caller while the transaction stays persisted.
type StockObserver interface {
	OnTransaction(transaction *model.Transaction) error
}

// StockUpdater adjusts the referenced product's stock: purchases add the
// quantity, sales subtract it. Stock below zero is allowed (backorders);
// it is logged but never rejected.
type StockUpdater struct {
	products repository.ProductRepository
	logger   *zap.Logger
}

func NewStockUpdater(products repository.ProductRepository, logger *zap.Logger) *StockUpdater {
	return &StockUpdater{products: products, logger: logger}
}

func (u *StockUpdater) OnTransaction(transaction *model.Transaction) error {
	product, err := u.products.FindByID(transaction.ProductID)
	if err != nil {
		return fmt.Errorf("resolving product for stock update: %w", err)
	}

	switch transaction.Kind {
	case model.KindPurchase:
		product.Stock += transaction.Quantity
	case model.KindSale:
		product.Stock -= transaction.Quantity
	}

	if product.Stock < 0 {
		u.logger.Warn("product stock went negative",
			zap.String("product_id", product.ID.String()),
			zap.String("code", product.Code),
			zap.Int("stock", product.Stock),
		)
	}

	return u.products.Update(product)
}

// StockBroadcaster publishes a stock_update event to the websocket hub
// so connected clients can refresh. Broadcast problems never fail the
// transaction.
type StockBroadcaster struct {
	hub    *ws.Hub
	logger *zap.Logger
}

func NewStockBroadcaster(hub *ws.Hub, logger *zap.Logger) *StockBroadcaster {
	return &StockBroadcaster{hub: hub, logger: logger}
}

func (b *StockBroadcaster) OnTransaction(transaction *model.Transaction) error {
	payload := map[string]interface{}{
		"type":   "stock_update",
		"action": "transaction_created",
		"transaction": map[string]interface{}{
			"id":         transaction.ID,
			"kind":       transaction.Kind,
			"quantity":   transaction.Quantity,
			"total":      transaction.Total,
			"product_id": transaction.ProductID,
		},
	}
	message, err := json.Marshal(payload)
	if err != nil {
		b.logger.Error("failed to marshal stock_update event", zap.Error(err))
		return nil
	}
	b.hub.Publish(message)
	return nil
}
