package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/renatoaf/profitflow/internal/domain/entity"
	"github.com/renatoaf/profitflow/internal/domain/repository"
)

var _ repository.BoletoRepository = (*BoletoRepo)(nil)

// BoletoRepo implementação do porto BoletoRepository sobre PostgreSQL
// (usável com pool ou tx).
type BoletoRepo struct {
	q Querier
}

// NewBoletoRepository constrói o adaptador de persistência para boletos.
func NewBoletoRepository(q Querier) *BoletoRepo {
	return &BoletoRepo{q: q}
}

// Create persiste um novo boleto. Vencimento é nullable.
func (r *BoletoRepo) Create(ctx context.Context, b *entity.Boleto) error {
	query := `
		INSERT INTO boletos (id, descricao, valor_centavos, vencimento, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.Descricao, b.ValorCentavos, b.Vencimento, b.Status, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert boleto: %w", err)
	}
	return nil
}

// GetByID obtém um boleto por ID. Devolve (nil, nil) quando não existe.
func (r *BoletoRepo) GetByID(ctx context.Context, id string) (*entity.Boleto, error) {
	query := `
		SELECT id, descricao, valor_centavos, vencimento, status, created_at
		FROM boletos WHERE id = $1`
	var b entity.Boleto
	err := r.q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Descricao, &b.ValorCentavos, &b.Vencimento, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get boleto: %w", err)
	}
	return &b, nil
}

// Update atualiza os campos editáveis de um boleto, incluindo limpar o
// vencimento quando o ponteiro é nil.
func (r *BoletoRepo) Update(ctx context.Context, b *entity.Boleto) error {
	query := `
		UPDATE boletos
		SET descricao = $2, valor_centavos = $3, vencimento = $4, status = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, b.ID, b.Descricao, b.ValorCentavos, b.Vencimento, b.Status)
	if err != nil {
		return fmt.Errorf("update boleto: %w", err)
	}
	return nil
}

// Delete remove um boleto. Remover um id inexistente não é erro.
func (r *BoletoRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM boletos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete boleto: %w", err)
	}
	return nil
}

// List devolve todos os boletos ordenados por vencimento desc (sem vencimento
// por último), created_at desc.
func (r *BoletoRepo) List(ctx context.Context) ([]*entity.Boleto, error) {
	query := `
		SELECT id, descricao, valor_centavos, vencimento, status, created_at
		FROM boletos
		ORDER BY vencimento DESC NULLS LAST, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list boletos: %w", err)
	}
	defer rows.Close()

	var boletos []*entity.Boleto
	for rows.Next() {
		var b entity.Boleto
		if err := rows.Scan(&b.ID, &b.Descricao, &b.ValorCentavos, &b.Vencimento, &b.Status, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan boleto: %w", err)
		}
		boletos = append(boletos, &b)
	}
	return boletos, rows.Err()
}
