package dto

// BoletoForm campos do formulário de boleto.
type BoletoForm struct {
	Descricao  string `form:"descricao" validate:"notblank"`
	Valor      string `form:"valor"`
	Vencimento string `form:"vencimento"`
	Status     string `form:"status"`
}
