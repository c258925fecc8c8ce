package money_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renatoaf/profitflow/pkg/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseValor: heurística de separadores
// ──────────────────────────────────────────────────────────────────────────────

func TestParseValor_FormatosAceitos(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado int64
	}{
		{"35,90", 3590},
		{"35.90", 3590},
		{"1.234,56", 123456},
		{"R$ 99,90", 9990},
		{"R$1.000,00", 100000},
		{"0", 0},
		{"0,00", 0},
		{"-1.234,56", -123456},
		{"  12,5 ", 1250},
		// Sem vírgula, o ponto é lido como separador decimal (comportamento
		// herdado: "1.234" vale R$ 1,234 truncado para 123 centavos).
		{"1.234", 123},
	}
	for _, c := range casos {
		t.Run(c.entrada, func(t *testing.T) {
			v, err := money.ParseValor(c.entrada)
			require.NoError(t, err)
			assert.Equal(t, c.esperado, v)
		})
	}
}

func TestParseValor_EntradaMalformadaRetornaErro(t *testing.T) {
	for _, entrada := range []string{"", "   ", "abc", "12,34,56", "R$"} {
		_, err := money.ParseValor(entrada)
		assert.Error(t, err, "entrada %q deve falhar", entrada)
	}
}

func TestParseValorOuZero_FallbackParaZero(t *testing.T) {
	assert.Equal(t, int64(0), money.ParseValorOuZero("abc"))
	assert.Equal(t, int64(0), money.ParseValorOuZero(""))
	assert.Equal(t, int64(3590), money.ParseValorOuZero("35,90"))
}

func TestParseValor_TruncaAposMultiplicar(t *testing.T) {
	// 35,999 × 100 = 3599,9 → trunca para 3599 (em direção a zero).
	v, err := money.ParseValor("35,999")
	require.NoError(t, err)
	assert.Equal(t, int64(3599), v)
}

// ──────────────────────────────────────────────────────────────────────────────
// ParsePercent
// ──────────────────────────────────────────────────────────────────────────────

func TestParsePercent_AceitaSufixoEVirgula(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"20", "20"},
		{"20%", "20"},
		{"8,5", "8.5"},
		{"20 %", "20"},
		{" 12.75 % ", "12.75"},
	}
	for _, c := range casos {
		d, err := money.ParsePercent(c.entrada)
		require.NoError(t, err, "entrada %q", c.entrada)
		assert.True(t, d.Equal(decimal.RequireFromString(c.esperado)),
			"entrada %q: esperado %s, veio %s", c.entrada, c.esperado, d)
	}
}

func TestParsePercentOuZero_FallbackParaZero(t *testing.T) {
	assert.True(t, money.ParsePercentOuZero("xx%").IsZero())
	assert.True(t, money.ParsePercentOuZero("").IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Formatação
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatBRL(t *testing.T) {
	casos := []struct {
		centavos int64
		esperado string
	}{
		{0, "R$ 0,00"},
		{5, "R$ 0,05"},
		{3590, "R$ 35,90"},
		{123456, "R$ 1.234,56"},
		{100000000, "R$ 1.000.000,00"},
		{-50, "-R$ 0,50"},
		{-123456, "-R$ 1.234,56"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, money.FormatBRL(c.centavos))
	}
}

func TestFormatValor_SemPrefixo(t *testing.T) {
	assert.Equal(t, "1.234,56", money.FormatValor(123456))
	assert.Equal(t, "0,00", money.FormatValor(0))
	assert.Equal(t, "-4,00", money.FormatValor(-400))
}

// Round-trip: formatar e reler recupera exatamente o valor em centavos,
// para qualquer montante representável (sem perda de precisão).
func TestRoundTrip_FormatarEParsear(t *testing.T) {
	valores := []int64{0, 1, 99, 100, 3590, 9990, 123456, 999999999, -1, -123456}
	for _, v := range valores {
		t.Run(fmt.Sprintf("%d", v), func(t *testing.T) {
			lido, err := money.ParseValor(money.FormatBRL(v))
			require.NoError(t, err)
			assert.Equal(t, v, lido, "round-trip via FormatBRL")

			lido, err = money.ParseValor(money.FormatValor(v))
			require.NoError(t, err)
			assert.Equal(t, v, lido, "round-trip via FormatValor")
		})
	}
}
