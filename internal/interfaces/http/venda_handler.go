package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/renatoaf/profitflow/internal/application/analytics"
	"github.com/renatoaf/profitflow/internal/application/dto"
	"github.com/renatoaf/profitflow/internal/application/usecase"
	"github.com/renatoaf/profitflow/internal/domain/entity"
	"github.com/renatoaf/profitflow/internal/domain/profit"
)

// VendaHandler trata as requisições HTTP do ledger de vendas. Além do CRUD,
// cada linha renderizada carrega o lucro calculado com a configuração de
// taxas vigente.
type VendaHandler struct {
	uc       *usecase.VendaUseCase
	configUC *usecase.ConfigUseCase
	custos   analytics.CustoReader
}

// NewVendaHandler constrói o handler.
func NewVendaHandler(uc *usecase.VendaUseCase, configUC *usecase.ConfigUseCase, custos analytics.CustoReader) *VendaHandler {
	return &VendaHandler{uc: uc, configUC: configUC, custos: custos}
}

// lookup adapta o repositório de compras para o CustoLookup do serviço de
// lucro. Falha de leitura conta como "produto sem compra".
func (h *VendaHandler) lookup(ctx context.Context) profit.CustoLookup {
	return func(produto string) (int64, bool) {
		custo, ok, err := h.custos.LatestCustoUnitario(ctx, produto)
		if err != nil {
			return 0, false
		}
		return custo, ok
	}
}

func (h *VendaHandler) linha(ctx context.Context, v *entity.Venda) (profit.Linha, error) {
	cfg, err := h.configUC.Get(ctx)
	if err != nil {
		return profit.Linha{}, err
	}
	return profit.ComputeLinha(v, cfg, h.lookup(ctx)), nil
}

// List renderiza a página de vendas com o lucro por linha.
func (h *VendaHandler) List(c *fiber.Ctx) error {
	ctx := c.Context()
	vendas, err := h.uc.List(ctx)
	if err != nil {
		return renderErro(c, err)
	}
	cfg, err := h.configUC.Get(ctx)
	if err != nil {
		return renderErro(c, err)
	}
	resumo := profit.Summarize(vendas, cfg, h.lookup(ctx))
	return c.Render("vendas", fiber.Map{
		"Title":    "Vendas",
		"Ativo":    "vendas",
		"Linhas":   resumo.Linhas,
		"TodayISO": time.Now().Format("2006-01-02"),
	}, "layouts/main")
}

// Create processa o formulário de nova venda. Custo vazio significa "sem
// override". Requisição HTMX recebe o fragmento da linha com lucro calculado.
func (h *VendaHandler) Create(c *fiber.Ctx) error {
	var in dto.VendaForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	venda, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return renderErro(c, err)
	}
	if !isHXRequest(c) {
		return c.Redirect("/vendas", fiber.StatusFound)
	}
	linha, err := h.linha(c.Context(), venda)
	if err != nil {
		return renderErro(c, err)
	}
	return c.Render("partials/venda_row", linha)
}

// Row renderiza o fragmento de exibição de uma venda.
func (h *VendaHandler) Row(c *fiber.Ctx) error {
	venda, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return renderErro(c, err)
	}
	linha, err := h.linha(c.Context(), venda)
	if err != nil {
		return renderErro(c, err)
	}
	return c.Render("partials/venda_row", linha)
}

// Edit renderiza o fragmento de edição inline de uma venda.
func (h *VendaHandler) Edit(c *fiber.Ctx) error {
	venda, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return renderErro(c, err)
	}
	return c.Render("partials/venda_edit_row", venda)
}

// Update processa o formulário de edição e devolve a linha recalculada.
func (h *VendaHandler) Update(c *fiber.Ctx) error {
	var in dto.VendaForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	venda, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return renderErro(c, err)
	}
	linha, err := h.linha(c.Context(), venda)
	if err != nil {
		return renderErro(c, err)
	}
	return c.Render("partials/venda_row", linha)
}

// Delete remove a venda e devolve 204.
func (h *VendaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return renderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
