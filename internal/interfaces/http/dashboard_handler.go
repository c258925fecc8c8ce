package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/renatoaf/profitflow/internal/application/analytics"
)

// DashboardHandler trata a página de resumo mensal.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Show renderiza o resumo do mês indicado em ?m=YYYY-MM (padrão: mês
// corrente).
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	resumo, err := h.uc.GetResumo(c.Context(), c.Query("m"))
	if err != nil {
		return renderErro(c, err)
	}
	return c.Render("dashboard", fiber.Map{
		"Title":  "Dashboard",
		"Ativo":  "dashboard",
		"Resumo": resumo,
	}, "layouts/main")
}
