package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Comedor-api/internal/application/alerting"
	"github.com/jhoicas/Comedor-api/internal/application/audit"
	"github.com/jhoicas/Comedor-api/internal/application/catalog"
	"github.com/jhoicas/Comedor-api/internal/application/ledger"
	"github.com/jhoicas/Comedor-api/internal/application/reports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SubmitUC      *ledger.SubmitUseCase
	LedgerListUC  *ledger.ListUseCase
	AlertUC       *alerting.UseCase
	AuditUC       *audit.UseCase
	SuggestionUC  *reports.SuggestionUseCase
	WeeklyUC      *reports.WeeklySummaryUseCase
	DailyLedgerUC *reports.DailyLedgerUseCase
	DashboardUC   *reports.DashboardUseCase
	CatalogUC     *catalog.UseCase
	Pool          *pgxpool.Pool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Health (público): responde solo si la BD contesta el ping
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := deps.Pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Libro diario: entregas y lecturas de inspección
	ledgerHandler := NewLedgerHandler(deps.SubmitUC, deps.LedgerListUC)
	api.Post("/production", ledgerHandler.SubmitProduction)
	api.Get("/production", ledgerHandler.ListProduction)
	api.Post("/sales", ledgerHandler.SubmitSales)
	api.Get("/sales", ledgerHandler.ListSales)
	api.Post("/wastage", ledgerHandler.SubmitWastage)
	api.Get("/wastage", ledgerHandler.ListWastage)

	// Alertas
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts := api.Group("/alerts")
	alerts.Get("/", alertHandler.List)
	alerts.Post("/:id/resolve", alertHandler.Resolve)

	// Auditoría
	auditHandler := NewAuditHandler(deps.AuditUC)
	api.Get("/audit", auditHandler.List)

	// Reportes y panel
	reportHandler := NewReportHandler(deps.SuggestionUC, deps.WeeklyUC, deps.DailyLedgerUC, deps.DashboardUC)
	reportsGroup := api.Group("/reports")
	reportsGroup.Get("/suggestion/:food_id", reportHandler.Suggestion)
	reportsGroup.Get("/weekly-summary", reportHandler.WeeklySummary)
	reportsGroup.Get("/daily-ledger", reportHandler.DailyLedger)
	api.Get("/dashboard", reportHandler.Dashboard)

	// Catálogo de alimentos
	foodHandler := NewFoodItemHandler(deps.CatalogUC)
	foods := api.Group("/fooditems")
	foods.Get("/", foodHandler.List)
	foods.Post("/", foodHandler.Create)
	foods.Get("/:id", foodHandler.GetByID)
	foods.Put("/:id", foodHandler.Update)
}
