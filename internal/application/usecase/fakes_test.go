package usecase_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/renatoaf/profitflow/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos portos de persistência, com a mesma semântica de
// ordenação dos adaptadores PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type memCompraRepo struct {
	itens map[string]*entity.Compra
}

func newMemCompraRepo() *memCompraRepo {
	return &memCompraRepo{itens: map[string]*entity.Compra{}}
}

func (r *memCompraRepo) Create(_ context.Context, c *entity.Compra) error {
	cp := *c
	r.itens[c.ID] = &cp
	return nil
}

func (r *memCompraRepo) GetByID(_ context.Context, id string) (*entity.Compra, error) {
	c, ok := r.itens[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCompraRepo) Update(_ context.Context, c *entity.Compra) error {
	cp := *c
	r.itens[c.ID] = &cp
	return nil
}

func (r *memCompraRepo) Delete(_ context.Context, id string) error {
	delete(r.itens, id)
	return nil
}

func (r *memCompraRepo) List(_ context.Context) ([]*entity.Compra, error) {
	out := make([]*entity.Compra, 0, len(r.itens))
	for _, c := range r.itens {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Data.Equal(out[j].Data) {
			return out[i].Data.After(out[j].Data)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memCompraRepo) LatestCustoUnitario(ctx context.Context, produto string) (int64, bool, error) {
	lista, _ := r.List(ctx)
	for _, c := range lista {
		if strings.EqualFold(c.Produto, produto) {
			return c.CustoUnitarioCent, true, nil
		}
	}
	return 0, false, nil
}

type memVendaRepo struct {
	itens map[string]*entity.Venda
}

func newMemVendaRepo() *memVendaRepo {
	return &memVendaRepo{itens: map[string]*entity.Venda{}}
}

func (r *memVendaRepo) Create(_ context.Context, v *entity.Venda) error {
	cp := *v
	r.itens[v.ID] = &cp
	return nil
}

func (r *memVendaRepo) GetByID(_ context.Context, id string) (*entity.Venda, error) {
	v, ok := r.itens[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *memVendaRepo) Update(_ context.Context, v *entity.Venda) error {
	cp := *v
	r.itens[v.ID] = &cp
	return nil
}

func (r *memVendaRepo) Delete(_ context.Context, id string) error {
	delete(r.itens, id)
	return nil
}

func (r *memVendaRepo) List(_ context.Context) ([]*entity.Venda, error) {
	out := make([]*entity.Venda, 0, len(r.itens))
	for _, v := range r.itens {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Data.Equal(out[j].Data) {
			return out[i].Data.After(out[j].Data)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memVendaRepo) ListByPeriodo(ctx context.Context, de, ate time.Time) ([]*entity.Venda, error) {
	todas, _ := r.List(ctx)
	out := make([]*entity.Venda, 0, len(todas))
	for _, v := range todas {
		if !v.Data.Before(de) && v.Data.Before(ate) {
			out = append(out, v)
		}
	}
	return out, nil
}

type memBoletoRepo struct {
	itens map[string]*entity.Boleto
}

func newMemBoletoRepo() *memBoletoRepo {
	return &memBoletoRepo{itens: map[string]*entity.Boleto{}}
}

func (r *memBoletoRepo) Create(_ context.Context, b *entity.Boleto) error {
	cp := *b
	r.itens[b.ID] = &cp
	return nil
}

func (r *memBoletoRepo) GetByID(_ context.Context, id string) (*entity.Boleto, error) {
	b, ok := r.itens[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *memBoletoRepo) Update(_ context.Context, b *entity.Boleto) error {
	cp := *b
	r.itens[b.ID] = &cp
	return nil
}

func (r *memBoletoRepo) Delete(_ context.Context, id string) error {
	delete(r.itens, id)
	return nil
}

func (r *memBoletoRepo) List(_ context.Context) ([]*entity.Boleto, error) {
	out := make([]*entity.Boleto, 0, len(r.itens))
	for _, b := range r.itens {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		vi, vj := out[i].Vencimento, out[j].Vencimento
		switch {
		case vi != nil && vj != nil && !vi.Equal(*vj):
			return vi.After(*vj)
		case vi == nil && vj != nil:
			return false // nulos por último
		case vi != nil && vj == nil:
			return true
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type memConfigRepo struct {
	cfg *entity.Config
}

func newMemConfigRepo() *memConfigRepo {
	return &memConfigRepo{}
}

func (r *memConfigRepo) Get(_ context.Context) (*entity.Config, error) {
	if r.cfg == nil {
		r.cfg = entity.DefaultConfig()
	}
	cp := *r.cfg
	return &cp, nil
}

func (r *memConfigRepo) Update(_ context.Context, cfg *entity.Config) error {
	cp := *cfg
	r.cfg = &cp
	return nil
}
