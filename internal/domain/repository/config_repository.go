package repository

import (
	"context"

	"github.com/renatoaf/profitflow/internal/domain/entity"
)

// ConfigRepository define o porto de persistência para o registro singleton
// de taxas.
type ConfigRepository interface {
	// Get devolve o registro, criando-o com os valores padrão no primeiro
	// acesso. A criação é idempotente mesmo sob requisições concorrentes.
	Get(ctx context.Context) (*entity.Config, error)
	Update(ctx context.Context, cfg *entity.Config) error
}
