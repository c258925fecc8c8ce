package repository

import (
	"context"

	"github.com/renatoaf/profitflow/internal/domain/entity"
)

// CompraRepository define o porto de persistência para Compra.
// GetByID devolve (nil, nil) quando o id não existe.
type CompraRepository interface {
	Create(ctx context.Context, c *entity.Compra) error
	GetByID(ctx context.Context, id string) (*entity.Compra, error)
	Update(ctx context.Context, c *entity.Compra) error
	Delete(ctx context.Context, id string) error
	// List devolve todas as compras ordenadas por data desc, created_at desc.
	List(ctx context.Context) ([]*entity.Compra, error)
	// LatestCustoUnitario devolve o custo unitário da compra mais recente do
	// produto (comparação exata, case-insensitive). ok=false quando não há
	// compra do produto.
	LatestCustoUnitario(ctx context.Context, produto string) (custoCent int64, ok bool, err error)
}
