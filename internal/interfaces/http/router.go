package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/renatoaf/profitflow/internal/application/analytics"
	"github.com/renatoaf/profitflow/internal/application/export"
	"github.com/renatoaf/profitflow/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CompraUC    *usecase.CompraUseCase
	VendaUC     *usecase.VendaUseCase
	BoletoUC    *usecase.BoletoUseCase
	ConfigUC    *usecase.ConfigUseCase
	DashboardUC *analytics.DashboardUseCase
	CSVUC       *export.CSVUseCase
	// Custos resolve o custo da última compra para o lucro por linha da
	// página de vendas.
	Custos analytics.CustoReader
}

// Router registra as rotas da aplicação.
func Router(app *fiber.App, deps RouterDeps) {
	// Raiz redireciona para o dashboard.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard", fiber.StatusFound)
	})

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	app.Get("/dashboard", dashboardHandler.Show)

	compraHandler := NewCompraHandler(deps.CompraUC)
	compras := app.Group("/compras")
	compras.Get("/", compraHandler.List)
	compras.Post("/", compraHandler.Create)
	compras.Get("/:id/row", compraHandler.Row)
	compras.Get("/:id/edit", compraHandler.Edit)
	compras.Post("/:id/update", compraHandler.Update)
	compras.Delete("/:id", compraHandler.Delete)

	vendaHandler := NewVendaHandler(deps.VendaUC, deps.ConfigUC, deps.Custos)
	vendas := app.Group("/vendas")
	vendas.Get("/", vendaHandler.List)
	vendas.Post("/", vendaHandler.Create)
	vendas.Get("/:id/row", vendaHandler.Row)
	vendas.Get("/:id/edit", vendaHandler.Edit)
	vendas.Post("/:id/update", vendaHandler.Update)
	vendas.Delete("/:id", vendaHandler.Delete)

	boletoHandler := NewBoletoHandler(deps.BoletoUC)
	// Aliases herdados da versão anterior da aplicação; todos servem a mesma
	// listagem.
	for _, alias := range []string{
		"/boletos", "/index", "/list", "/b",
		"/boletos/index", "/boletos/list", "/boletos/b",
	} {
		app.Get(alias, boletoHandler.List)
	}
	boletos := app.Group("/boletos")
	boletos.Post("/", boletoHandler.Create)
	boletos.Get("/:id/row", boletoHandler.Row)
	boletos.Get("/:id/edit", boletoHandler.Edit)
	boletos.Post("/:id/update", boletoHandler.Update)
	boletos.Post("/:id/toggle", boletoHandler.Toggle)
	boletos.Delete("/:id", boletoHandler.Delete)

	configHandler := NewConfigHandler(deps.ConfigUC)
	app.Get("/config", configHandler.Show)
	app.Post("/config", configHandler.Save)

	exportHandler := NewExportHandler(deps.CSVUC)
	app.Get("/export/boletos.csv", exportHandler.Boletos)
	app.Get("/export/compras.csv", exportHandler.Compras)
	app.Get("/export/vendas.csv", exportHandler.Vendas)
}
