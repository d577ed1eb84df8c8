package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comedor-api/internal/application/alerting"
	"github.com/jhoicas/Comedor-api/internal/application/audit"
	"github.com/jhoicas/Comedor-api/internal/application/catalog"
	appledger "github.com/jhoicas/Comedor-api/internal/application/ledger"
	"github.com/jhoicas/Comedor-api/internal/application/reports"
	domledger "github.com/jhoicas/Comedor-api/internal/domain/ledger"
	"github.com/jhoicas/Comedor-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Comedor-api/internal/interfaces/http"
	"github.com/jhoicas/Comedor-api/pkg/config"
	"github.com/jhoicas/Comedor-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool (lecturas); el TxRunner crea los suyos por transacción
	foodRepo := postgres.NewFoodItemRepository(pool)
	prodRepo := postgres.NewProductionRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)
	wastageRepo := postgres.NewWastageRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	policy := appledger.Policy{
		Thresholds: domledger.Thresholds{
			MediumPct:   decimal.NewFromFloat(cfg.Engine.WastageMediumPct),
			HighPct:     decimal.NewFromFloat(cfg.Engine.WastageHighPct),
			CriticalPct: decimal.NewFromFloat(cfg.Engine.WastageCriticalPct),
		},
		LowStockSeverity: cfg.Engine.LowStockSeverity,
		DefaultStaffID:   cfg.Engine.DefaultStaffID,
	}

	submitUC := appledger.NewSubmitUseCase(txRunner, policy)
	ledgerListUC := appledger.NewListUseCase(prodRepo, salesRepo, wastageRepo, cfg.Engine.MaxListLimit)
	alertUC := alerting.NewUseCase(txRunner, alertRepo, cfg.Engine.MaxListLimit)
	auditUC := audit.NewUseCase(auditRepo, cfg.Engine.MaxListLimit)
	suggestionUC := reports.NewSuggestionUseCase(foodRepo, reportRepo, reports.SuggestionConfig{
		WindowDays: cfg.Engine.SuggestionWindowDays,
		MinSamples: cfg.Engine.SuggestionMinSamples,
		MaxMargin:  cfg.Engine.SuggestionMaxMargin,
	})
	weeklyUC := reports.NewWeeklySummaryUseCase(reportRepo)
	dailyLedgerUC := reports.NewDailyLedgerUseCase(reportRepo, cfg.Engine.MaxListLimit)
	dashboardUC := reports.NewDashboardUseCase(reportRepo)
	catalogUC := catalog.NewUseCase(txRunner, foodRepo, cfg.Engine.MaxListLimit)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comedor API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		SubmitUC:      submitUC,
		LedgerListUC:  ledgerListUC,
		AlertUC:       alertUC,
		AuditUC:       auditUC,
		SuggestionUC:  suggestionUC,
		WeeklyUC:      weeklyUC,
		DailyLedgerUC: dailyLedgerUC,
		DashboardUC:   dashboardUC,
		CatalogUC:     catalogUC,
		Pool:          pool,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
