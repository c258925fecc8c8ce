package dto

// ConfigForm campos do formulário de configuração de taxas.
type ConfigForm struct {
	Marketplace string `form:"marketplace"`
	Imposto     string `form:"imposto"`
	Fixo        string `form:"fixo"`
}
