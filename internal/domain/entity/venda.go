package entity

import "time"

// Venda representa uma venda registrada.
// CustoUnitarioOverrideCent, quando presente, substitui o custo resolvido pela
// última compra do produto, inclusive quando o override é exatamente 0, que
// é distinto de "ausente".
type Venda struct {
	ID                        string
	Produto                   string
	PrecoUnitarioCent         int64
	Quantidade                int
	Data                      time.Time
	CustoUnitarioOverrideCent *int64
	CreatedAt                 time.Time
}
