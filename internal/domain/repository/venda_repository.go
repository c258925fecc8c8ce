package repository

import (
	"context"
	"time"

	"github.com/renatoaf/profitflow/internal/domain/entity"
)

// VendaRepository define o porto de persistência para Venda.
// GetByID devolve (nil, nil) quando o id não existe.
type VendaRepository interface {
	Create(ctx context.Context, v *entity.Venda) error
	GetByID(ctx context.Context, id string) (*entity.Venda, error)
	Update(ctx context.Context, v *entity.Venda) error
	Delete(ctx context.Context, id string) error
	// List devolve todas as vendas ordenadas por data desc, created_at desc.
	List(ctx context.Context) ([]*entity.Venda, error)
	// ListByPeriodo devolve as vendas com data em [de, ate), mesma ordenação
	// do List.
	ListByPeriodo(ctx context.Context, de, ate time.Time) ([]*entity.Venda, error)
}
