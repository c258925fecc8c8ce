// Package money concentra o parsing e a formatação de valores monetários.
// Todo valor é representado como int64 em centavos; ponto flutuante nunca
// entra na aritmética de dinheiro.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var cem = decimal.NewFromInt(100)

// ParseValor converte uma string de valor no formato local ("35,90",
// "1.234,56", "R$ 99,90") em centavos. Aceita vírgula ou ponto como separador
// decimal; quando ambos aparecem, o ponto é tratado como separador de milhar.
// O resultado é truncado em direção a zero após multiplicar por 100.
func ParseValor(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, fmt.Errorf("valor vazio")
	}
	if strings.Count(s, ",") == 1 && strings.Count(s, ".") >= 1 {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("valor inválido %q: %w", s, err)
	}
	return d.Mul(cem).IntPart(), nil
}

// ParseValorOuZero aplica a política "nunca falhar o formulário": entrada
// malformada vira 0 em vez de erro.
func ParseValorOuZero(s string) int64 {
	v, err := ParseValor(s)
	if err != nil {
		return 0
	}
	return v
}

// ParsePercent converte uma string de percentual ("20", "8,5", "20 %") em
// decimal. Remove o sufixo % e espaços e aceita vírgula como separador
// decimal.
func ParsePercent(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(s, "%", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return decimal.Zero, fmt.Errorf("percentual vazio")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("percentual inválido %q: %w", s, err)
	}
	return d, nil
}

// ParsePercentOuZero devolve 0 para entrada malformada, como ParseValorOuZero.
func ParsePercentOuZero(s string) decimal.Decimal {
	d, err := ParsePercent(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatBRL formata centavos como moeda brasileira: "R$ 1.234,56",
// com sinal negativo antes do prefixo ("-R$ 0,50").
func FormatBRL(centavos int64) string {
	sinal := ""
	if centavos < 0 {
		sinal = "-"
		centavos = -centavos
	}
	return sinal + "R$ " + formatCent(centavos)
}

// FormatValor formata centavos sem o prefixo de moeda ("1.234,56"),
// usado nos campos de edição dos formulários.
func FormatValor(centavos int64) string {
	sinal := ""
	if centavos < 0 {
		sinal = "-"
		centavos = -centavos
	}
	return sinal + formatCent(centavos)
}

// formatCent monta "reais,centavos" com agrupamento de milhar por ponto.
// Chamado sempre com valor não negativo.
func formatCent(centavos int64) string {
	reais := centavos / 100
	cent := centavos % 100
	return fmt.Sprintf("%s,%02d", agruparMilhar(reais), cent)
}

func agruparMilhar(n int64) string {
	digitos := fmt.Sprintf("%d", n)
	var b strings.Builder
	pre := len(digitos) % 3
	if pre > 0 {
		b.WriteString(digitos[:pre])
	}
	for i := pre; i < len(digitos); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digitos[i : i+3])
	}
	return b.String()
}
