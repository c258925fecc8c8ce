package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renatoaf/profitflow/internal/application/dto"
	"github.com/renatoaf/profitflow/internal/application/usecase"
	"github.com/renatoaf/profitflow/internal/domain"
)

func TestCompraCreate_CamposParseados(t *testing.T) {
	uc := usecase.NewCompraUseCase(newMemCompraRepo(), false)

	c, err := uc.Create(context.Background(), dto.CompraForm{
		Produto:    "  Chaleira elétrica ",
		Custo:      "35,90",
		Quantidade: "3",
		Data:       "2026-08-15",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Chaleira elétrica", c.Produto, "produto deve ser trimado")
	assert.Equal(t, int64(3590), c.CustoUnitarioCent)
	assert.Equal(t, 3, c.Quantidade)
	assert.Equal(t, "2026-08-15", c.Data.Format("2006-01-02"))
	assert.False(t, c.CreatedAt.IsZero())
}

func TestCompraCreate_ProdutoObrigatorio(t *testing.T) {
	uc := usecase.NewCompraUseCase(newMemCompraRepo(), false)

	_, err := uc.Create(context.Background(), dto.CompraForm{Produto: "   ", Custo: "10,00"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCompraCreate_DefaultsDeQuantidadeEData(t *testing.T) {
	uc := usecase.NewCompraUseCase(newMemCompraRepo(), false)

	c, err := uc.Create(context.Background(), dto.CompraForm{
		Produto:    "Chaleira",
		Custo:      "nada-a-ver", // fallback → 0
		Quantidade: "0",          // coagido → 1
		Data:       "31/12/2026", // malformada → hoje
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), c.CustoUnitarioCent)
	assert.Equal(t, 1, c.Quantidade)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), c.Data.Format("2006-01-02"))
}

func TestCompraCreate_ModoEstritoRejeitaValorMalformado(t *testing.T) {
	uc := usecase.NewCompraUseCase(newMemCompraRepo(), true)

	_, err := uc.Create(context.Background(), dto.CompraForm{Produto: "Chaleira", Custo: "abc"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCompraCreate_ModoEstritoAceitaCustoVazio(t *testing.T) {
	uc := usecase.NewCompraUseCase(newMemCompraRepo(), true)

	c, err := uc.Create(context.Background(), dto.CompraForm{Produto: "Chaleira", Custo: ""})
	require.NoError(t, err, "campo vazio significa padrão 0, não entrada malformada")
	assert.Equal(t, int64(0), c.CustoUnitarioCent)
}

func TestCompraUpdate_DataVaziaMantemAtual(t *testing.T) {
	uc := usecase.NewCompraUseCase(newMemCompraRepo(), false)
	ctx := context.Background()

	c, err := uc.Create(ctx, dto.CompraForm{Produto: "Chaleira", Custo: "35,90", Data: "2026-08-15"})
	require.NoError(t, err)

	atualizada, err := uc.Update(ctx, c.ID, dto.CompraForm{Produto: "Chaleira", Custo: "40,00", Data: ""})
	require.NoError(t, err)

	assert.Equal(t, int64(4000), atualizada.CustoUnitarioCent)
	assert.Equal(t, "2026-08-15", atualizada.Data.Format("2006-01-02"),
		"data vazia no update deve manter a data existente")
}

func TestCompraUpdate_IdempotenteComMesmosCampos(t *testing.T) {
	uc := usecase.NewCompraUseCase(newMemCompraRepo(), false)
	ctx := context.Background()

	c, err := uc.Create(ctx, dto.CompraForm{Produto: "Chaleira", Custo: "35,90", Data: "2026-08-15"})
	require.NoError(t, err)

	form := dto.CompraForm{Produto: "Chaleira", Custo: "35,90", Quantidade: "1", Data: "2026-08-15"}
	a, err := uc.Update(ctx, c.ID, form)
	require.NoError(t, err)
	b, err := uc.Update(ctx, c.ID, form)
	require.NoError(t, err)

	assert.Equal(t, a, b, "update aplicado duas vezes com os mesmos campos deve dar o mesmo estado")
}

func TestCompraUpdate_IdInexistenteRetornaNotFound(t *testing.T) {
	uc := usecase.NewCompraUseCase(newMemCompraRepo(), false)

	_, err := uc.Update(context.Background(), "nao-existe", dto.CompraForm{Produto: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompraDelete_DuasVezesRetornaNotFoundNasDuas(t *testing.T) {
	uc := usecase.NewCompraUseCase(newMemCompraRepo(), false)
	ctx := context.Background()

	c, err := uc.Create(ctx, dto.CompraForm{Produto: "Chaleira", Custo: "35,90"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, c.ID))
	assert.ErrorIs(t, uc.Delete(ctx, c.ID), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, c.ID), domain.ErrNotFound,
		"delete repetido deve continuar retornando NotFound")
}

func TestCompraList_OrdenadaPorDataDescDepoisCriacaoDesc(t *testing.T) {
	uc := usecase.NewCompraUseCase(newMemCompraRepo(), false)
	ctx := context.Background()

	antiga, err := uc.Create(ctx, dto.CompraForm{Produto: "Antiga", Custo: "1,00", Data: "2026-01-10"})
	require.NoError(t, err)
	recente, err := uc.Create(ctx, dto.CompraForm{Produto: "Recente", Custo: "1,00", Data: "2026-03-05"})
	require.NoError(t, err)

	lista, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.Equal(t, recente.ID, lista[0].ID)
	assert.Equal(t, antiga.ID, lista[1].ID)
}
