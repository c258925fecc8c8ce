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

// CompraUseCase casos de uso CRUD do ledger de compras.
type CompraUseCase struct {
	repo   repository.CompraRepository
	strict bool
}

// NewCompraUseCase constrói o caso de uso. strict ativa a validação estrita
// de valores monetários (ver pkg/config).
func NewCompraUseCase(repo repository.CompraRepository, strict bool) *CompraUseCase {
	return &CompraUseCase{repo: repo, strict: strict}
}

// Create valida o formulário e persiste uma nova compra. Data ausente ou
// malformada vira "hoje"; quantidade é coagida para ≥1.
func (uc *CompraUseCase) Create(ctx context.Context, in dto.CompraForm) (*entity.Compra, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	custo, err := parseValor(in.Custo, uc.strict)
	if err != nil {
		return nil, err
	}
	c := &entity.Compra{
		ID:                uuid.New().String(),
		Produto:           strings.TrimSpace(in.Produto),
		CustoUnitarioCent: custo,
		Quantidade:        parseQuantidade(in.Quantidade),
		Data:              parseDataOuHoje(in.Data),
		CreatedAt:         time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID devolve a compra ou domain.ErrNotFound.
func (uc *CompraUseCase) GetByID(ctx context.Context, id string) (*entity.Compra, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Update aplica o formulário sobre a compra existente. Data vazia ou
// malformada mantém a data atual (assimétrico com Create, de propósito).
func (uc *CompraUseCase) Update(ctx context.Context, id string, in dto.CompraForm) (*entity.Compra, error) {
	c, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	custo, err := parseValor(in.Custo, uc.strict)
	if err != nil {
		return nil, err
	}
	c.Produto = strings.TrimSpace(in.Produto)
	c.CustoUnitarioCent = custo
	c.Quantidade = parseQuantidade(in.Quantidade)
	if data, ok := parseData(in.Data); ok {
		c.Data = data
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete remove a compra permanentemente. Sem efeito cascata: vendas não são
// chaveadas por compra.
func (uc *CompraUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// List devolve as compras ordenadas por data desc, created_at desc.
func (uc *CompraUseCase) List(ctx context.Context) ([]*entity.Compra, error) {
	return uc.repo.List(ctx)
}
