package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema cria as quatro tabelas se não existirem e semeia o registro
// singleton de taxas. Idempotente: é o único mecanismo de migração da
// aplicação e roda a cada startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS config (
			id                  SMALLINT PRIMARY KEY CHECK (id = 1),
			marketplace_percent NUMERIC(8,4) NOT NULL DEFAULT 20,
			imposto_percent     NUMERIC(8,4) NOT NULL DEFAULT 8,
			taxa_fixa_cent      BIGINT NOT NULL DEFAULT 400
		)`,
		`CREATE TABLE IF NOT EXISTS compras (
			id                 TEXT PRIMARY KEY,
			produto            TEXT NOT NULL,
			custo_unitario_cent BIGINT NOT NULL DEFAULT 0,
			quantidade         INTEGER NOT NULL DEFAULT 1,
			data               DATE NOT NULL,
			created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS vendas (
			id                           TEXT PRIMARY KEY,
			produto                      TEXT NOT NULL,
			preco_unitario_cent          BIGINT NOT NULL DEFAULT 0,
			quantidade                   INTEGER NOT NULL DEFAULT 1,
			data                         DATE NOT NULL,
			custo_unitario_override_cent BIGINT,
			created_at                   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS boletos (
			id             TEXT PRIMARY KEY,
			descricao      TEXT NOT NULL,
			valor_centavos BIGINT NOT NULL DEFAULT 0,
			vencimento     DATE,
			status         TEXT NOT NULL DEFAULT 'aberto',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		// Índice para o lookup de custo por produto (case-insensitive).
		`CREATE INDEX IF NOT EXISTS idx_compras_produto_lower ON compras (lower(produto), data DESC, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_vendas_data ON vendas (data DESC, created_at DESC)`,
	}
	for _, stmt := range ddl {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	// Semeia o singleton; a chave primária fixa garante no máximo uma linha
	// mesmo com requisições concorrentes no primeiro acesso.
	_, err := pool.Exec(ctx, `
		INSERT INTO config (id, marketplace_percent, imposto_percent, taxa_fixa_cent)
		VALUES (1, 20, 8, 400)
		ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("seed config: %w", err)
	}
	return nil
}
