package repository

import (
	"context"

	"github.com/renatoaf/profitflow/internal/domain/entity"
)

// BoletoRepository define o porto de persistência para Boleto.
// GetByID devolve (nil, nil) quando o id não existe.
type BoletoRepository interface {
	Create(ctx context.Context, b *entity.Boleto) error
	GetByID(ctx context.Context, id string) (*entity.Boleto, error)
	Update(ctx context.Context, b *entity.Boleto) error
	Delete(ctx context.Context, id string) error
	// List devolve todos os boletos ordenados por vencimento desc (nulos por
	// último), created_at desc.
	List(ctx context.Context) ([]*entity.Boleto, error)
}
