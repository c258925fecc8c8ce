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

// VendaUseCase casos de uso CRUD do ledger de vendas.
type VendaUseCase struct {
	repo   repository.VendaRepository
	strict bool
}

// NewVendaUseCase constrói o caso de uso.
func NewVendaUseCase(repo repository.VendaRepository, strict bool) *VendaUseCase {
	return &VendaUseCase{repo: repo, strict: strict}
}

// parseOverride converte o campo de custo opcional: vazio vira nil (sem
// override); preenchido é parseado como valor, inclusive podendo resultar em
// override de exatamente 0.
func (uc *VendaUseCase) parseOverride(s string) (*int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := parseValor(s, uc.strict)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create valida o formulário e persiste uma nova venda.
func (uc *VendaUseCase) Create(ctx context.Context, in dto.VendaForm) (*entity.Venda, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	preco, err := parseValor(in.Preco, uc.strict)
	if err != nil {
		return nil, err
	}
	override, err := uc.parseOverride(in.Custo)
	if err != nil {
		return nil, err
	}
	v := &entity.Venda{
		ID:                        uuid.New().String(),
		Produto:                   strings.TrimSpace(in.Produto),
		PrecoUnitarioCent:         preco,
		Quantidade:                parseQuantidade(in.Quantidade),
		Data:                      parseDataOuHoje(in.Data),
		CustoUnitarioOverrideCent: override,
		CreatedAt:                 time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// GetByID devolve a venda ou domain.ErrNotFound.
func (uc *VendaUseCase) GetByID(ctx context.Context, id string) (*entity.Venda, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

// Update aplica o formulário sobre a venda existente. Data vazia ou
// malformada mantém a atual; custo vazio remove o override.
func (uc *VendaUseCase) Update(ctx context.Context, id string, in dto.VendaForm) (*entity.Venda, error) {
	v, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	preco, err := parseValor(in.Preco, uc.strict)
	if err != nil {
		return nil, err
	}
	override, err := uc.parseOverride(in.Custo)
	if err != nil {
		return nil, err
	}
	v.Produto = strings.TrimSpace(in.Produto)
	v.PrecoUnitarioCent = preco
	v.Quantidade = parseQuantidade(in.Quantidade)
	v.CustoUnitarioOverrideCent = override
	if data, ok := parseData(in.Data); ok {
		v.Data = data
	}
	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Delete remove a venda permanentemente.
func (uc *VendaUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// List devolve as vendas ordenadas por data desc, created_at desc.
func (uc *VendaUseCase) List(ctx context.Context) ([]*entity.Venda, error) {
	return uc.repo.List(ctx)
}
