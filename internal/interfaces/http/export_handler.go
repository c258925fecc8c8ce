package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/renatoaf/profitflow/internal/application/export"
)

// ExportHandler serve os três ledgers como download CSV.
type ExportHandler struct {
	uc *export.CSVUseCase
}

// NewExportHandler constrói o handler.
func NewExportHandler(uc *export.CSVUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

func sendCSV(c *fiber.Ctx, body, filename string) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)
	return c.SendString(body)
}

// Boletos exporta boletos.csv.
func (h *ExportHandler) Boletos(c *fiber.Ctx) error {
	body, err := h.uc.Boletos(c.Context())
	if err != nil {
		return renderErro(c, err)
	}
	return sendCSV(c, body, "boletos.csv")
}

// Compras exporta compras.csv.
func (h *ExportHandler) Compras(c *fiber.Ctx) error {
	body, err := h.uc.Compras(c.Context())
	if err != nil {
		return renderErro(c, err)
	}
	return sendCSV(c, body, "compras.csv")
}

// Vendas exporta vendas.csv.
func (h *ExportHandler) Vendas(c *fiber.Ctx) error {
	body, err := h.uc.Vendas(c.Context())
	if err != nil {
		return renderErro(c, err)
	}
	return sendCSV(c, body, "vendas.csv")
}
