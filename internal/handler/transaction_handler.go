package handler

import (
	"errors"

	"go-minimarket/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	facade *service.Facade
}

func NewTransactionHandler(facade *service.Facade) *TransactionHandler {
	return &TransactionHandler{facade: facade}
}

func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	transactions, err := h.facade.GetAllTransactions()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(transactions)
}

func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req struct {
		Kind      string `json:"kind"`
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
		Strategy  string `json:"strategy"`
		ExtraInfo string `json:"extra_info"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if req.Strategy == "" {
		req.Strategy = service.RegularPricingName
	}

	transaction, err := h.facade.CreateTransaction(req.Kind, productID, req.Quantity, req.Strategy, req.ExtraInfo)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrUnknownTransactionKind):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrValidation):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
		}
	}

	return c.Status(201).JSON(fiber.Map{"message": "Transaction recorded", "data": transaction})
}
