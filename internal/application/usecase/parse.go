package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/renatoaf/profitflow/internal/domain"
	"github.com/renatoaf/profitflow/pkg/money"
)

const dataLayout = "2006-01-02"

// parseValor converte um valor de formulário em centavos. No modo padrão,
// entrada malformada coage para 0 ("nunca falhar o formulário"); em modo
// estrito vira erro de validação. Campo vazio significa "usar o padrão 0"
// e passa mesmo no modo estrito.
func parseValor(s string, strict bool) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	if !strict {
		return money.ParseValorOuZero(s), nil
	}
	v, err := money.ParseValor(s)
	if err != nil {
		return 0, fmt.Errorf("%w: valor monetário malformado %q", domain.ErrValidation, s)
	}
	return v, nil
}

// parsePercent é o equivalente de parseValor para percentuais.
func parsePercent(s string, strict bool) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	if !strict {
		return money.ParsePercentOuZero(s), nil
	}
	d, err := money.ParsePercent(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: percentual malformado %q", domain.ErrValidation, s)
	}
	return d, nil
}

// parseQuantidade converte a quantidade, com padrão 1 e coerção para ≥1.
func parseQuantidade(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// parseData interpreta uma data ISO (YYYY-MM-DD) do formulário.
func parseData(s string) (time.Time, bool) {
	t, err := time.Parse(dataLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseDataOuHoje devolve a data do formulário, ou "hoje" quando ausente ou
// malformada (política de criação).
func parseDataOuHoje(s string) time.Time {
	if t, ok := parseData(s); ok {
		return t
	}
	return hoje()
}

// hoje devolve a data corrente truncada para o dia, em UTC.
func hoje() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
