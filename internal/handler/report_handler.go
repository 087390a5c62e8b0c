package handler

import (
	"errors"

	"go-minimarket/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	facade *service.Facade
}

func NewReportHandler(facade *service.Facade) *ReportHandler {
	return &ReportHandler{facade: facade}
}

func (h *ReportHandler) GenerateReport(c *fiber.Ctx) error {
	reportType := c.Query("type", "csv")

	content, err := h.facade.GenerateReport(reportType)
	if err != nil {
		if errors.Is(err, service.ErrUnknownReportFormat) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	switch reportType {
	case "html":
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	default:
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	}
	return c.SendString(content)
}

func (h *ReportHandler) GetLedgerSummary(c *fiber.Ctx) error {
	summary, err := h.facade.GetLedgerSummary()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(summary)
}
