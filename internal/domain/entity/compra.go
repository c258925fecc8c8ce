package entity

import "time"

// Compra representa um produto comprado (entrada de estoque informal).
// Não há chave estrangeira para Venda: a associação é pelo nome do produto,
// resolvida na leitura.
type Compra struct {
	ID                string
	Produto           string
	CustoUnitarioCent int64
	Quantidade        int
	Data              time.Time
	CreatedAt         time.Time
}
