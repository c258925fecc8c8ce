package entity

import "github.com/shopspring/decimal"

// Valores padrão do registro de configuração, criados de forma preguiçosa
// no primeiro acesso: 20% marketplace, 8% imposto, R$ 4,00 fixo por item.
const (
	DefaultTaxaFixaCent = int64(400)
)

var (
	DefaultMarketplacePercent = decimal.NewFromInt(20)
	DefaultImpostoPercent     = decimal.NewFromInt(8)
)

// Config é o registro singleton de taxas usado no cálculo de lucro.
// Percentuais ficam como decimal (nunca entram diretamente na aritmética de
// dinheiro: toda multiplicação é arredondada para centavos imediatamente).
type Config struct {
	MarketplacePercent decimal.Decimal // % sobre a venda
	ImpostoPercent     decimal.Decimal // % sobre a venda
	TaxaFixaCent       int64           // taxa fixa por item, em centavos
}

// DefaultConfig devolve o registro com os valores padrão.
func DefaultConfig() *Config {
	return &Config{
		MarketplacePercent: DefaultMarketplacePercent,
		ImpostoPercent:     DefaultImpostoPercent,
		TaxaFixaCent:       DefaultTaxaFixaCent,
	}
}
