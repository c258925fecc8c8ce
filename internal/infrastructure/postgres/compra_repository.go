package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/renatoaf/profitflow/internal/domain/entity"
	"github.com/renatoaf/profitflow/internal/domain/repository"
)

var _ repository.CompraRepository = (*CompraRepo)(nil)

// CompraRepo implementação do porto CompraRepository sobre PostgreSQL
// (usável com pool ou tx).
type CompraRepo struct {
	q Querier
}

// NewCompraRepository constrói o adaptador de persistência para compras.
func NewCompraRepository(q Querier) *CompraRepo {
	return &CompraRepo{q: q}
}

// Create persiste uma nova compra.
func (r *CompraRepo) Create(ctx context.Context, c *entity.Compra) error {
	query := `
		INSERT INTO compras (id, produto, custo_unitario_cent, quantidade, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Produto, c.CustoUnitarioCent, c.Quantidade, c.Data, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert compra: %w", err)
	}
	return nil
}

// GetByID obtém uma compra por ID. Devolve (nil, nil) quando não existe.
func (r *CompraRepo) GetByID(ctx context.Context, id string) (*entity.Compra, error) {
	query := `
		SELECT id, produto, custo_unitario_cent, quantidade, data, created_at
		FROM compras WHERE id = $1`
	var c entity.Compra
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Produto, &c.CustoUnitarioCent, &c.Quantidade, &c.Data, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compra: %w", err)
	}
	return &c, nil
}

// Update atualiza os campos editáveis de uma compra.
func (r *CompraRepo) Update(ctx context.Context, c *entity.Compra) error {
	query := `
		UPDATE compras
		SET produto = $2, custo_unitario_cent = $3, quantidade = $4, data = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, c.ID, c.Produto, c.CustoUnitarioCent, c.Quantidade, c.Data)
	if err != nil {
		return fmt.Errorf("update compra: %w", err)
	}
	return nil
}

// Delete remove uma compra. Remover um id inexistente não é erro.
func (r *CompraRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM compras WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete compra: %w", err)
	}
	return nil
}

// List devolve todas as compras, mais recentes primeiro.
func (r *CompraRepo) List(ctx context.Context) ([]*entity.Compra, error) {
	query := `
		SELECT id, produto, custo_unitario_cent, quantidade, data, created_at
		FROM compras
		ORDER BY data DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()

	var compras []*entity.Compra
	for rows.Next() {
		var c entity.Compra
		if err := rows.Scan(&c.ID, &c.Produto, &c.CustoUnitarioCent, &c.Quantidade, &c.Data, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		compras = append(compras, &c)
	}
	return compras, rows.Err()
}

// LatestCustoUnitario devolve o custo da compra mais recente do produto
// (comparação case-insensitive). ok=false quando o produto nunca foi comprado.
func (r *CompraRepo) LatestCustoUnitario(ctx context.Context, produto string) (int64, bool, error) {
	query := `
		SELECT custo_unitario_cent
		FROM compras
		WHERE lower(produto) = lower($1)
		ORDER BY data DESC, created_at DESC
		LIMIT 1`
	var custo int64
	err := r.q.QueryRow(ctx, query, produto).Scan(&custo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("latest custo unitario: %w", err)
	}
	return custo, true, nil
}
