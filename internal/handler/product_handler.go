package handler

import (
	"errors"

	"go-minimarket/internal/model"
	"go-minimarket/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	facade *service.Facade
}

func NewProductHandler(facade *service.Facade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.facade.GetAllProducts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.facade.GetProductByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(product)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req struct {
		Code  string          `json:"code"`
		Name  string          `json:"name"`
		Price decimal.Decimal `json:"price"`
		Stock int             `json:"stock"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product := model.NewProduct(req.Code, req.Name,
		model.WithPrice(req.Price),
		model.WithStock(req.Stock),
	)

	saved, err := h.facade.SaveProduct(product)
	if err != nil {
		if errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrDuplicateCode) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": saved})
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.facade.DeleteProduct(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}
