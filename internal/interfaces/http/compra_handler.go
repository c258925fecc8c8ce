package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/renatoaf/profitflow/internal/application/dto"
	"github.com/renatoaf/profitflow/internal/application/usecase"
)

// CompraHandler trata as requisições HTTP do ledger de compras.
type CompraHandler struct {
	uc *usecase.CompraUseCase
}

// NewCompraHandler constrói o handler.
func NewCompraHandler(uc *usecase.CompraUseCase) *CompraHandler {
	return &CompraHandler{uc: uc}
}

// List renderiza a página de compras.
func (h *CompraHandler) List(c *fiber.Ctx) error {
	compras, err := h.uc.List(c.Context())
	if err != nil {
		return renderErro(c, err)
	}
	return c.Render("compras", fiber.Map{
		"Title":    "Compras",
		"Ativo":    "compras",
		"Compras":  compras,
		"TodayISO": time.Now().Format("2006-01-02"),
	}, "layouts/main")
}

// Create processa o formulário de nova compra. Requisição HTMX recebe só o
// fragmento da linha criada; navegação normal redireciona para a listagem.
func (h *CompraHandler) Create(c *fiber.Ctx) error {
	var in dto.CompraForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	compra, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return renderErro(c, err)
	}
	if isHXRequest(c) {
		return c.Render("partials/compra_row", compra)
	}
	return c.Redirect("/compras", fiber.StatusFound)
}

// Row renderiza o fragmento de exibição de uma compra.
func (h *CompraHandler) Row(c *fiber.Ctx) error {
	compra, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return renderErro(c, err)
	}
	return c.Render("partials/compra_row", compra)
}

// Edit renderiza o fragmento de edição inline de uma compra.
func (h *CompraHandler) Edit(c *fiber.Ctx) error {
	compra, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return renderErro(c, err)
	}
	return c.Render("partials/compra_edit_row", compra)
}

// Update processa o formulário de edição e devolve a linha atualizada.
func (h *CompraHandler) Update(c *fiber.Ctx) error {
	var in dto.CompraForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	compra, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return renderErro(c, err)
	}
	return c.Render("partials/compra_row", compra)
}

// Delete remove a compra e devolve 204, que o HTMX usa para tirar a linha da
// tabela.
func (h *CompraHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return renderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
