package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/renatoaf/profitflow/internal/application/dto"
	"github.com/renatoaf/profitflow/internal/domain"
)

// isHXRequest indica se a requisição veio do HTMX. Criações com esse header
// devolvem só o fragmento da linha; sem ele, redirecionam para a listagem.
func isHXRequest(c *fiber.Ctx) bool {
	return c.Get("HX-Request") != ""
}

// renderErro traduz erros de domínio para status + corpo JSON.
func renderErro(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
