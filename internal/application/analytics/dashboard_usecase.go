// Package analytics contém o caso de uso do resumo mensal do dashboard.
package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/renatoaf/profitflow/internal/application/dto"
	"github.com/renatoaf/profitflow/internal/domain/profit"
)

const mesLayout = "2006-01"

// DashboardUseCase deriva o resumo de um mês: linhas por venda e totais de
// receita, taxas, custo e lucro. Todo o cálculo fica no serviço de domínio
// profit; a camada de apresentação só formata números já computados.
type DashboardUseCase struct {
	vendaRepo  VendaReader
	compraRepo CustoReader
	configRepo ConfigReader
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(vendaRepo VendaReader, compraRepo CustoReader, configRepo ConfigReader) *DashboardUseCase {
	return &DashboardUseCase{vendaRepo: vendaRepo, compraRepo: compraRepo, configRepo: configRepo}
}

// GetResumo monta o resumo do mês indicado ("YYYY-MM"; vazio ou malformado
// usa o mês corrente). Vendas fora de [início, fim) não entram; mês sem
// vendas devolve totais zerados e lista vazia.
func (uc *DashboardUseCase) GetResumo(ctx context.Context, mes string) (*dto.DashboardResumo, error) {
	inicio, fim := mesBounds(mes)

	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: configuração de taxas: %w", err)
	}
	vendas, err := uc.vendaRepo.ListByPeriodo(ctx, inicio, fim)
	if err != nil {
		return nil, fmt.Errorf("dashboard: vendas do mês: %w", err)
	}

	// Pré-carrega o custo da compra mais recente por produto, para o lookup
	// do cálculo não tocar em persistência.
	custos := make(map[string]int64)
	for _, v := range vendas {
		chave := strings.ToLower(v.Produto)
		if _, visto := custos[chave]; visto {
			continue
		}
		custo, ok, err := uc.compraRepo.LatestCustoUnitario(ctx, v.Produto)
		if err != nil {
			return nil, fmt.Errorf("dashboard: custo do produto %q: %w", v.Produto, err)
		}
		if ok {
			custos[chave] = custo
		}
	}
	lookup := func(produto string) (int64, bool) {
		c, ok := custos[strings.ToLower(produto)]
		return c, ok
	}

	resumo := profit.Summarize(vendas, cfg, lookup)

	return &dto.DashboardResumo{
		MesLabel:    inicio.Format("01/2006"),
		Mes:         inicio.Format(mesLayout),
		Linhas:      resumo.Linhas,
		ReceitaCent: resumo.ReceitaCent,
		TaxasCent:   resumo.TaxasCent,
		CustoCent:   resumo.CustoCent,
		LucroCent:   resumo.LucroCent,
	}, nil
}

// mesBounds devolve [primeiro dia do mês, primeiro dia do mês seguinte).
func mesBounds(mes string) (time.Time, time.Time) {
	inicio, err := time.Parse(mesLayout, strings.TrimSpace(mes))
	if err != nil {
		agora := time.Now().UTC()
		inicio = time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return inicio, inicio.AddDate(0, 1, 0)
}
