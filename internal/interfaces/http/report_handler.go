package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comedor-api/internal/application/reports"
)

// ReportHandler sirve los reportes analíticos: sugerencia, resumen semanal,
// libro diario y panel del día.
type ReportHandler struct {
	suggestion  *reports.SuggestionUseCase
	weekly      *reports.WeeklySummaryUseCase
	dailyLedger *reports.DailyLedgerUseCase
	dashboard   *reports.DashboardUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(
	suggestion *reports.SuggestionUseCase,
	weekly *reports.WeeklySummaryUseCase,
	dailyLedger *reports.DailyLedgerUseCase,
	dashboard *reports.DashboardUseCase,
) *ReportHandler {
	return &ReportHandler{suggestion: suggestion, weekly: weekly, dailyLedger: dailyLedger, dashboard: dashboard}
}

// Suggestion godoc
// @Summary      Sugerencia de producción
// @Description  Ventana reciente de ventas y mermas; con pocos días devuelve el marcador de datos insuficientes.
// @Tags         reports
// @Produce      json
// @Param        food_id  path  string  true  "ID del alimento"
// @Success      200  {object}  dto.SuggestionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/suggestion/{food_id} [get]
func (h *ReportHandler) Suggestion(c *fiber.Ctx) error {
	resp, err := h.suggestion.Suggest(c.Context(), c.Params("food_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// WeeklySummary godoc
// @Summary      Resumen semanal por alimento
// @Tags         reports
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD; por defecto el lunes de la semana en curso"
// @Success      200  {object}  dto.WeeklySummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/weekly-summary [get]
func (h *ReportHandler) WeeklySummary(c *fiber.Ctx) error {
	resp, err := h.weekly.Summarize(c.Context(), c.Query("start_date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// DailyLedger godoc
// @Summary      Libro diario derivado
// @Tags         reports
// @Produce      json
// @Param        from   query  string  false  "YYYY-MM-DD; por defecto hace 7 días"
// @Param        to     query  string  false  "YYYY-MM-DD; por defecto hoy"
// @Param        limit  query  int     false  "Máximo de filas"
// @Success      200  {array}   dto.LedgerEntryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/daily-ledger [get]
func (h *ReportHandler) DailyLedger(c *fiber.Ctx) error {
	rows, err := h.dailyLedger.List(c.Context(), c.Query("from"), c.Query("to"), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// Dashboard godoc
// @Summary      Panel del día
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.dashboard.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
