package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comedor-api/internal/application/alerting"
	"github.com/jhoicas/Comedor-api/internal/application/dto"
)

// AlertHandler maneja listado y resolución de alertas.
type AlertHandler struct {
	uc *alerting.UseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerting.UseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas
// @Tags         alerts
// @Produce      json
// @Param        resolved  query  bool  false  "true = resueltas; por defecto activas"
// @Param        limit     query  int   false  "Máximo de filas"
// @Success      200  {array}   dto.AlertDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	alerts, err := h.uc.List(c.Context(), c.QueryBool("resolved"), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(alerts)
}

// Resolve godoc
// @Summary      Resolver una alerta
// @Description  Transición de un solo sentido; una alerta resuelta no puede reabrirse.
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la alerta"
// @Param        body  body  dto.ResolveAlertRequest  true  "resolved_by, resolution_notes"
// @Success      200   {object}  dto.AlertDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/resolve [post]
func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	var in dto.ResolveAlertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	alert, err := h.uc.Resolve(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(alert)
}
