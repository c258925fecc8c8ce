// Package profit implementa o serviço de domínio de cálculo de lucro.
// Funções puras: recebem vendas, configuração de taxas e um lookup de custo,
// sem tocar em persistência nem em camada de apresentação.
package profit

import (
	"github.com/shopspring/decimal"

	"github.com/renatoaf/profitflow/internal/domain/entity"
)

var cem = decimal.NewFromInt(100)

// CustoLookup resolve o custo unitário da compra mais recente de um produto
// (comparação exata, case-insensitive). ok=false quando não há compra.
type CustoLookup func(produto string) (custoCent int64, ok bool)

// Linha é o resultado do cálculo de uma venda.
type Linha struct {
	Venda             *entity.Venda
	CustoUnitarioCent int64
	ReceitaCent       int64
	CustoCent         int64
	TaxasCent         int64
	LucroCent         int64 // pode ser negativo; nunca é saturado em zero
}

// Resumo agrega as linhas de um conjunto de vendas.
type Resumo struct {
	Linhas      []Linha
	ReceitaCent int64
	TaxasCent   int64
	CustoCent   int64
	LucroCent   int64
}

// Taxas calcula as taxas percentuais sobre a receita:
// round(receita × marketplace/100) + round(receita × imposto/100),
// cada parcela arredondada de forma independente.
//
// Política de arredondamento: half-even (arredondamento bancário), via
// decimal.RoundBank.
func Taxas(receitaCent int64, cfg *entity.Config) int64 {
	r := decimal.NewFromInt(receitaCent)
	mk := r.Mul(cfg.MarketplacePercent).Div(cem).RoundBank(0)
	imp := r.Mul(cfg.ImpostoPercent).Div(cem).RoundBank(0)
	return mk.IntPart() + imp.IntPart()
}

// CustoUnitario resolve o custo unitário de uma venda: o override explícito
// tem prioridade (inclusive quando é exatamente 0); senão a compra mais
// recente do produto; senão 0.
func CustoUnitario(v *entity.Venda, lookup CustoLookup) int64 {
	if v.CustoUnitarioOverrideCent != nil {
		return *v.CustoUnitarioOverrideCent
	}
	if lookup != nil {
		if c, ok := lookup(v.Produto); ok {
			return c
		}
	}
	return 0
}

// ComputeLinha deriva receita, custo, taxas e lucro de uma venda:
//
//	receita = preço unitário × quantidade
//	custo   = custo unitário resolvido × quantidade
//	taxas   = Taxas(receita) + taxa fixa × quantidade
//	lucro   = receita − taxas − custo
func ComputeLinha(v *entity.Venda, cfg *entity.Config, lookup CustoLookup) Linha {
	qtd := int64(v.Quantidade)
	receita := v.PrecoUnitarioCent * qtd
	custoUnit := CustoUnitario(v, lookup)
	custo := custoUnit * qtd
	taxas := Taxas(receita, cfg) + cfg.TaxaFixaCent*qtd
	return Linha{
		Venda:             v,
		CustoUnitarioCent: custoUnit,
		ReceitaCent:       receita,
		CustoCent:         custo,
		TaxasCent:         taxas,
		LucroCent:         receita - taxas - custo,
	}
}

// Summarize calcula as linhas e os totais de um conjunto de vendas já
// filtrado e ordenado pelo chamador. Conjunto vazio devolve totais zerados e
// lista vazia.
func Summarize(vendas []*entity.Venda, cfg *entity.Config, lookup CustoLookup) Resumo {
	resumo := Resumo{Linhas: make([]Linha, 0, len(vendas))}
	for _, v := range vendas {
		linha := ComputeLinha(v, cfg, lookup)
		resumo.Linhas = append(resumo.Linhas, linha)
		resumo.ReceitaCent += linha.ReceitaCent
		resumo.TaxasCent += linha.TaxasCent
		resumo.CustoCent += linha.CustoCent
		resumo.LucroCent += linha.LucroCent
	}
	return resumo
}
