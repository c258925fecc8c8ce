package dto

// CompraForm campos do formulário de compra (criação e edição). Valores
// monetários e data chegam como strings locais e são convertidos no caso de
// uso, com a política de fallback para o padrão.
type CompraForm struct {
	Produto    string `form:"produto" validate:"notblank"`
	Custo      string `form:"custo"`
	Quantidade string `form:"quantidade"`
	Data       string `form:"data"`
}
