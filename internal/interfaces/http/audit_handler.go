package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comedor-api/internal/application/audit"
)

// AuditHandler sirve la consulta del registro de auditoría.
type AuditHandler struct {
	uc *audit.UseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *audit.UseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Consultar el registro de auditoría
// @Tags         audit
// @Produce      json
// @Param        table  query  string  false  "Filtro por tabla lógica (daily_production, daily_sales, daily_wastage, wastage_alerts, food_items)"
// @Param        limit  query  int     false  "Máximo de filas"
// @Success      200  {array}   dto.AuditRecordDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/audit [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	records, err := h.uc.List(c.Context(), c.Query("table"), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}
