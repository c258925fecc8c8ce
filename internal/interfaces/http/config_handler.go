package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/renatoaf/profitflow/internal/application/dto"
	"github.com/renatoaf/profitflow/internal/application/usecase"
)

// ConfigHandler trata a página de configuração de taxas.
type ConfigHandler struct {
	uc *usecase.ConfigUseCase
}

// NewConfigHandler constrói o handler.
func NewConfigHandler(uc *usecase.ConfigUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

// Show renderiza o formulário com os valores vigentes.
func (h *ConfigHandler) Show(c *fiber.Ctx) error {
	cfg, err := h.uc.Get(c.Context())
	if err != nil {
		return renderErro(c, err)
	}
	return c.Render("config", fiber.Map{
		"Title":  "Configurações",
		"Ativo":  "config",
		"Config": cfg,
	}, "layouts/main")
}

// Save aplica o formulário e redireciona de volta para a página.
func (h *ConfigHandler) Save(c *fiber.Ctx) error {
	var in dto.ConfigForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if _, err := h.uc.Update(c.Context(), in); err != nil {
		return renderErro(c, err)
	}
	return c.Redirect("/config", fiber.StatusFound)
}
