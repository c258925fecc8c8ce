package dto

// VendaForm campos do formulário de venda. Custo vazio significa "sem
// override": o cálculo usa a última compra do produto.
type VendaForm struct {
	Produto    string `form:"produto" validate:"notblank"`
	Preco      string `form:"preco"`
	Quantidade string `form:"quantidade"`
	Data       string `form:"data"`
	Custo      string `form:"custo"`
}
