// Package export monta os arquivos CSV dos três ledgers.
//
// O formato é herdado: separado por vírgula, sem quoting; vírgulas dentro de
// campos de texto livre são trocadas por espaço. Por isso a montagem é manual
// em vez de encoding/csv, que colocaria aspas.
package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/renatoaf/profitflow/internal/domain/entity"
)

// Portos mínimos de leitura; os repositórios de domínio os satisfazem.
type (
	BoletoLister interface {
		List(ctx context.Context) ([]*entity.Boleto, error)
	}
	CompraLister interface {
		List(ctx context.Context) ([]*entity.Compra, error)
	}
	VendaLister interface {
		List(ctx context.Context) ([]*entity.Venda, error)
	}
)

// CSVUseCase exporta os ledgers como CSV.
type CSVUseCase struct {
	boletos BoletoLister
	compras CompraLister
	vendas  VendaLister
}

// NewCSVUseCase constrói o caso de uso.
func NewCSVUseCase(boletos BoletoLister, compras CompraLister, vendas VendaLister) *CSVUseCase {
	return &CSVUseCase{boletos: boletos, compras: compras, vendas: vendas}
}

// Boletos devolve o CSV de boletos. O cabeçalho está sempre presente, mesmo
// sem linhas.
func (uc *CSVUseCase) Boletos(ctx context.Context) (string, error) {
	boletos, err := uc.boletos.List(ctx)
	if err != nil {
		return "", fmt.Errorf("export boletos: %w", err)
	}
	linhas := []string{"id,descricao,valor_centavos,vencimento,status,created_at"}
	for _, b := range boletos {
		venc := ""
		if b.Vencimento != nil {
			venc = b.Vencimento.Format("2006-01-02")
		}
		linhas = append(linhas, strings.Join([]string{
			b.ID,
			sanitize(b.Descricao),
			fmt.Sprintf("%d", b.ValorCentavos),
			venc,
			b.Status,
			b.CreatedAt.Format(time.RFC3339),
		}, ","))
	}
	return strings.Join(linhas, "\n"), nil
}

// Compras devolve o CSV de compras.
func (uc *CSVUseCase) Compras(ctx context.Context) (string, error) {
	compras, err := uc.compras.List(ctx)
	if err != nil {
		return "", fmt.Errorf("export compras: %w", err)
	}
	linhas := []string{"id,produto,custo_unitario_cent,quantidade,data,created_at"}
	for _, c := range compras {
		linhas = append(linhas, strings.Join([]string{
			c.ID,
			sanitize(c.Produto),
			fmt.Sprintf("%d", c.CustoUnitarioCent),
			fmt.Sprintf("%d", c.Quantidade),
			c.Data.Format("2006-01-02"),
			c.CreatedAt.Format(time.RFC3339),
		}, ","))
	}
	return strings.Join(linhas, "\n"), nil
}

// Vendas devolve o CSV de vendas. A coluna de override fica vazia quando a
// venda não tem override; um override de 0 sai como "0".
func (uc *CSVUseCase) Vendas(ctx context.Context) (string, error) {
	vendas, err := uc.vendas.List(ctx)
	if err != nil {
		return "", fmt.Errorf("export vendas: %w", err)
	}
	linhas := []string{"id,produto,preco_unitario_cent,quantidade,data,custo_unitario_override_cent,created_at"}
	for _, v := range vendas {
		override := ""
		if v.CustoUnitarioOverrideCent != nil {
			override = fmt.Sprintf("%d", *v.CustoUnitarioOverrideCent)
		}
		linhas = append(linhas, strings.Join([]string{
			v.ID,
			sanitize(v.Produto),
			fmt.Sprintf("%d", v.PrecoUnitarioCent),
			fmt.Sprintf("%d", v.Quantidade),
			v.Data.Format("2006-01-02"),
			override,
			v.CreatedAt.Format(time.RFC3339),
		}, ","))
	}
	return strings.Join(linhas, "\n"), nil
}

// sanitize troca vírgulas por espaço em campos de texto livre, já que o
// formato não tem quoting.
func sanitize(s string) string {
	return strings.ReplaceAll(s, ",", " ")
}
