package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/renatoaf/profitflow/internal/application/dto"
	"github.com/renatoaf/profitflow/internal/application/usecase"
)

// BoletoHandler trata as requisições HTTP do ledger de boletos.
type BoletoHandler struct {
	uc *usecase.BoletoUseCase
}

// NewBoletoHandler constrói o handler.
func NewBoletoHandler(uc *usecase.BoletoUseCase) *BoletoHandler {
	return &BoletoHandler{uc: uc}
}

// List renderiza a página de boletos (a mesma para todos os aliases
// herdados de rota).
func (h *BoletoHandler) List(c *fiber.Ctx) error {
	boletos, err := h.uc.List(c.Context())
	if err != nil {
		return renderErro(c, err)
	}
	return c.Render("boletos", fiber.Map{
		"Title":   "Boletos",
		"Ativo":   "boletos",
		"Boletos": boletos,
	}, "layouts/main")
}

// Create processa o formulário de novo boleto.
func (h *BoletoHandler) Create(c *fiber.Ctx) error {
	var in dto.BoletoForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	boleto, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return renderErro(c, err)
	}
	if isHXRequest(c) {
		return c.Render("partials/boleto_row", boleto)
	}
	return c.Redirect("/boletos", fiber.StatusFound)
}

// Row renderiza o fragmento de exibição de um boleto.
func (h *BoletoHandler) Row(c *fiber.Ctx) error {
	boleto, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return renderErro(c, err)
	}
	return c.Render("partials/boleto_row", boleto)
}

// Edit renderiza o fragmento de edição inline de um boleto.
func (h *BoletoHandler) Edit(c *fiber.Ctx) error {
	boleto, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return renderErro(c, err)
	}
	return c.Render("partials/boleto_edit_row", boleto)
}

// Update processa o formulário de edição. Vencimento submetido vazio limpa a
// data do boleto.
func (h *BoletoHandler) Update(c *fiber.Ctx) error {
	var in dto.BoletoForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	boleto, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return renderErro(c, err)
	}
	return c.Render("partials/boleto_row", boleto)
}

// Toggle alterna o status do boleto e devolve a linha atualizada.
func (h *BoletoHandler) Toggle(c *fiber.Ctx) error {
	boleto, err := h.uc.ToggleStatus(c.Context(), c.Params("id"))
	if err != nil {
		return renderErro(c, err)
	}
	return c.Render("partials/boleto_row", boleto)
}

// Delete remove o boleto e devolve 204.
func (h *BoletoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return renderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
