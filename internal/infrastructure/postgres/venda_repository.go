package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/renatoaf/profitflow/internal/domain/entity"
	"github.com/renatoaf/profitflow/internal/domain/repository"
)

var _ repository.VendaRepository = (*VendaRepo)(nil)

// VendaRepo implementação do porto VendaRepository sobre PostgreSQL
// (usável com pool ou tx).
type VendaRepo struct {
	q Querier
}

// NewVendaRepository constrói o adaptador de persistência para vendas.
func NewVendaRepository(q Querier) *VendaRepo {
	return &VendaRepo{q: q}
}

// Create persiste uma nova venda. O override de custo é nullable.
func (r *VendaRepo) Create(ctx context.Context, v *entity.Venda) error {
	query := `
		INSERT INTO vendas (id, produto, preco_unitario_cent, quantidade, data, custo_unitario_override_cent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.Produto, v.PrecoUnitarioCent, v.Quantidade, v.Data, v.CustoUnitarioOverrideCent, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venda: %w", err)
	}
	return nil
}

// GetByID obtém uma venda por ID. Devolve (nil, nil) quando não existe.
func (r *VendaRepo) GetByID(ctx context.Context, id string) (*entity.Venda, error) {
	query := `
		SELECT id, produto, preco_unitario_cent, quantidade, data, custo_unitario_override_cent, created_at
		FROM vendas WHERE id = $1`
	var v entity.Venda
	err := r.q.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Produto, &v.PrecoUnitarioCent, &v.Quantidade, &v.Data, &v.CustoUnitarioOverrideCent, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}
	return &v, nil
}

// Update atualiza os campos editáveis de uma venda, incluindo limpar o
// override quando o ponteiro é nil.
func (r *VendaRepo) Update(ctx context.Context, v *entity.Venda) error {
	query := `
		UPDATE vendas
		SET produto = $2, preco_unitario_cent = $3, quantidade = $4, data = $5, custo_unitario_override_cent = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, v.ID, v.Produto, v.PrecoUnitarioCent, v.Quantidade, v.Data, v.CustoUnitarioOverrideCent)
	if err != nil {
		return fmt.Errorf("update venda: %w", err)
	}
	return nil
}

// Delete remove uma venda. Remover um id inexistente não é erro.
func (r *VendaRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM vendas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete venda: %w", err)
	}
	return nil
}

// List devolve todas as vendas, mais recentes primeiro.
func (r *VendaRepo) List(ctx context.Context) ([]*entity.Venda, error) {
	query := `
		SELECT id, produto, preco_unitario_cent, quantidade, data, custo_unitario_override_cent, created_at
		FROM vendas
		ORDER BY data DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()
	return scanVendas(rows)
}

// ListByPeriodo devolve as vendas com data em [de, ate), mesma ordenação do
// List.
func (r *VendaRepo) ListByPeriodo(ctx context.Context, de, ate time.Time) ([]*entity.Venda, error) {
	query := `
		SELECT id, produto, preco_unitario_cent, quantidade, data, custo_unitario_override_cent, created_at
		FROM vendas
		WHERE data >= $1 AND data < $2
		ORDER BY data DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query, de, ate)
	if err != nil {
		return nil, fmt.Errorf("list vendas por periodo: %w", err)
	}
	defer rows.Close()
	return scanVendas(rows)
}

func scanVendas(rows pgx.Rows) ([]*entity.Venda, error) {
	var vendas []*entity.Venda
	for rows.Next() {
		var v entity.Venda
		if err := rows.Scan(&v.ID, &v.Produto, &v.PrecoUnitarioCent, &v.Quantidade, &v.Data, &v.CustoUnitarioOverrideCent, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		vendas = append(vendas, &v)
	}
	return vendas, rows.Err()
}
