package analytics

import (
	"context"
	"time"

	"github.com/renatoaf/profitflow/internal/domain/entity"
)

// Portos mínimos do dashboard; os repositórios de domínio os satisfazem.

// VendaReader lê as vendas de um período.
type VendaReader interface {
	ListByPeriodo(ctx context.Context, de, ate time.Time) ([]*entity.Venda, error)
}

// CustoReader resolve o custo unitário da compra mais recente de um produto.
type CustoReader interface {
	LatestCustoUnitario(ctx context.Context, produto string) (custoCent int64, ok bool, err error)
}

// ConfigReader carrega o registro de taxas.
type ConfigReader interface {
	Get(ctx context.Context) (*entity.Config, error)
}
