package usecase

import (
	"context"

	"github.com/renatoaf/profitflow/internal/application/dto"
	"github.com/renatoaf/profitflow/internal/domain/entity"
	"github.com/renatoaf/profitflow/internal/domain/repository"
)

// ConfigUseCase leitura e atualização do registro singleton de taxas.
// Nenhum estado é mantido em memória: a configuração é carregada do
// repositório a cada requisição.
type ConfigUseCase struct {
	repo   repository.ConfigRepository
	strict bool
}

// NewConfigUseCase constrói o caso de uso.
func NewConfigUseCase(repo repository.ConfigRepository, strict bool) *ConfigUseCase {
	return &ConfigUseCase{repo: repo, strict: strict}
}

// Get devolve o registro, criado com os padrões no primeiro acesso.
func (uc *ConfigUseCase) Get(ctx context.Context) (*entity.Config, error) {
	return uc.repo.Get(ctx)
}

// Update aplica o formulário de taxas sobre o registro.
func (uc *ConfigUseCase) Update(ctx context.Context, in dto.ConfigForm) (*entity.Config, error) {
	cfg, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	mk, err := parsePercent(in.Marketplace, uc.strict)
	if err != nil {
		return nil, err
	}
	imp, err := parsePercent(in.Imposto, uc.strict)
	if err != nil {
		return nil, err
	}
	fixo, err := parseValor(in.Fixo, uc.strict)
	if err != nil {
		return nil, err
	}
	cfg.MarketplacePercent = mk
	cfg.ImpostoPercent = imp
	cfg.TaxaFixaCent = fixo
	if err := uc.repo.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
