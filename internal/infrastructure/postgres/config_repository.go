package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/renatoaf/profitflow/internal/domain/entity"
	"github.com/renatoaf/profitflow/internal/domain/repository"
)

var _ repository.ConfigRepository = (*ConfigRepo)(nil)

// ConfigRepo implementação do porto ConfigRepository sobre PostgreSQL
// (usável com pool ou tx).
type ConfigRepo struct {
	q Querier
}

// NewConfigRepository constrói o adaptador de persistência para o registro
// singleton de taxas.
func NewConfigRepository(q Querier) *ConfigRepo {
	return &ConfigRepo{q: q}
}

// Get devolve o registro de taxas, criando-o com os valores padrão quando a
// linha ainda não existe. A chave primária fixa (id = 1) torna a criação
// idempotente sob concorrência.
func (r *ConfigRepo) Get(ctx context.Context) (*entity.Config, error) {
	query := `
		SELECT marketplace_percent, imposto_percent, taxa_fixa_cent
		FROM config WHERE id = 1`
	var cfg entity.Config
	err := r.q.QueryRow(ctx, query).Scan(&cfg.MarketplacePercent, &cfg.ImpostoPercent, &cfg.TaxaFixaCent)
	if err == nil {
		return &cfg, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get config: %w", err)
	}

	seed := entity.DefaultConfig()
	_, err = r.q.Exec(ctx, `
		INSERT INTO config (id, marketplace_percent, imposto_percent, taxa_fixa_cent)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO NOTHING`,
		seed.MarketplacePercent, seed.ImpostoPercent, seed.TaxaFixaCent,
	)
	if err != nil {
		return nil, fmt.Errorf("seed config: %w", err)
	}
	// Relê em vez de devolver o seed: outra requisição pode ter vencido o
	// ON CONFLICT com valores já editados.
	err = r.q.QueryRow(ctx, query).Scan(&cfg.MarketplacePercent, &cfg.ImpostoPercent, &cfg.TaxaFixaCent)
	if err != nil {
		return nil, fmt.Errorf("get config: %w", err)
	}
	return &cfg, nil
}

// Update grava os três campos do registro de taxas.
func (r *ConfigRepo) Update(ctx context.Context, cfg *entity.Config) error {
	query := `
		UPDATE config
		SET marketplace_percent = $1, imposto_percent = $2, taxa_fixa_cent = $3
		WHERE id = 1`
	_, err := r.q.Exec(ctx, query, cfg.MarketplacePercent, cfg.ImpostoPercent, cfg.TaxaFixaCent)
	if err != nil {
		return fmt.Errorf("update config: %w", err)
	}
	return nil
}
