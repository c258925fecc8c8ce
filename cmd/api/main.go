package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/renatoaf/profitflow/internal/application/analytics"
	"github.com/renatoaf/profitflow/internal/application/export"
	"github.com/renatoaf/profitflow/internal/application/usecase"
	"github.com/renatoaf/profitflow/internal/infrastructure/postgres"
	httpRouter "github.com/renatoaf/profitflow/internal/interfaces/http"
	"github.com/renatoaf/profitflow/pkg/config"
	"github.com/renatoaf/profitflow/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("strict_input", cfg.App.StrictInput).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migração do esquema")
	}

	compraRepo := postgres.NewCompraRepository(pool)
	vendaRepo := postgres.NewVendaRepository(pool)
	boletoRepo := postgres.NewBoletoRepository(pool)
	configRepo := postgres.NewConfigRepository(pool)

	strict := cfg.App.StrictInput
	compraUC := usecase.NewCompraUseCase(compraRepo, strict)
	vendaUC := usecase.NewVendaUseCase(vendaRepo, strict)
	boletoUC := usecase.NewBoletoUseCase(boletoRepo, strict)
	configUC := usecase.NewConfigUseCase(configRepo, strict)
	dashboardUC := analytics.NewDashboardUseCase(vendaRepo, compraRepo, configRepo)
	csvUC := export.NewCSVUseCase(boletoRepo, compraRepo, vendaRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        httpRouter.NewViewEngine(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompraUC:    compraUC,
		VendaUC:     vendaUC,
		BoletoUC:    boletoUC,
		ConfigUC:    configUC,
		DashboardUC: dashboardUC,
		CSVUC:       csvUC,
		Custos:      compraRepo,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
