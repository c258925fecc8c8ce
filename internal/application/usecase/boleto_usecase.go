package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/renatoaf/profitflow/internal/application/dto"
	"github.com/renatoaf/profitflow/internal/domain"
	"github.com/renatoaf/profitflow/internal/domain/entity"
	"github.com/renatoaf/profitflow/internal/domain/repository"
)

// BoletoUseCase casos de uso CRUD do ledger de boletos.
type BoletoUseCase struct {
	repo   repository.BoletoRepository
	strict bool
}

// NewBoletoUseCase constrói o caso de uso.
func NewBoletoUseCase(repo repository.BoletoRepository, strict bool) *BoletoUseCase {
	return &BoletoUseCase{repo: repo, strict: strict}
}

// parseVencimento converte o campo opcional de vencimento: vazio ou
// malformado vira nil.
func parseVencimento(s string) *time.Time {
	if t, ok := parseData(s); ok {
		return &t
	}
	return nil
}

// Create valida o formulário e persiste um novo boleto. Status desconhecido
// é coagido para "aberto".
func (uc *BoletoUseCase) Create(ctx context.Context, in dto.BoletoForm) (*entity.Boleto, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	valor, err := parseValor(in.Valor, uc.strict)
	if err != nil {
		return nil, err
	}
	b := &entity.Boleto{
		ID:            uuid.New().String(),
		Descricao:     strings.TrimSpace(in.Descricao),
		ValorCentavos: valor,
		Vencimento:    parseVencimento(in.Vencimento),
		Status:        entity.NormalizeStatus(strings.TrimSpace(in.Status)),
		CreatedAt:     time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetByID devolve o boleto ou domain.ErrNotFound.
func (uc *BoletoUseCase) GetByID(ctx context.Context, id string) (*entity.Boleto, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

// Update aplica o formulário sobre o boleto existente. Ao contrário das
// compras/vendas, vencimento submetido vazio limpa a data.
func (uc *BoletoUseCase) Update(ctx context.Context, id string, in dto.BoletoForm) (*entity.Boleto, error) {
	b, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	valor, err := parseValor(in.Valor, uc.strict)
	if err != nil {
		return nil, err
	}
	b.Descricao = strings.TrimSpace(in.Descricao)
	b.ValorCentavos = valor
	b.Vencimento = parseVencimento(in.Vencimento)
	b.Status = entity.NormalizeStatus(strings.TrimSpace(in.Status))
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ToggleStatus alterna o status do boleto: aberto→pago, pago→aberto,
// cancelado→aberto.
func (uc *BoletoUseCase) ToggleStatus(ctx context.Context, id string) (*entity.Boleto, error) {
	b, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	b.ToggleStatus()
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete remove o boleto permanentemente.
func (uc *BoletoUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// List devolve os boletos ordenados por vencimento desc, created_at desc.
func (uc *BoletoUseCase) List(ctx context.Context) ([]*entity.Boleto, error) {
	return uc.repo.List(ctx)
}
