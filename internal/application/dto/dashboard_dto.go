package dto

import "github.com/renatoaf/profitflow/internal/domain/profit"

// DashboardResumo é o resumo mensal entregue à camada de apresentação:
// números já calculados, prontos para formatação.
type DashboardResumo struct {
	MesLabel    string // "MM/YYYY"
	Mes         string // "YYYY-MM", para o filtro do formulário
	Linhas      []profit.Linha
	ReceitaCent int64
	TaxasCent   int64
	CustoCent   int64
	LucroCent   int64
}
