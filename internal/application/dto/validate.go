package dto

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/renatoaf/profitflow/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// notblank: string não vazia e não composta só de espaços
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// Validate aplica as tags de validação do struct e traduz falhas para
// domain.ErrValidation com o nome do campo ofensor.
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return fmt.Errorf("%w: campo %s é obrigatório", domain.ErrValidation, strings.ToLower(errs[0].Field()))
	}
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}
