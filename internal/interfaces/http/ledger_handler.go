package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/application/ledger"
)

// LedgerHandler maneja las entregas y lecturas del libro diario.
type LedgerHandler struct {
	submit *ledger.SubmitUseCase
	list   *ledger.ListUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(submit *ledger.SubmitUseCase, list *ledger.ListUseCase) *LedgerHandler {
	return &LedgerHandler{submit: submit, list: list}
}

// SubmitProduction godoc
// @Summary      Comprometer producción diaria
// @Description  Upsert por (food_id, date); deriva costo, merma implícita y alertas en una transacción.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitProductionRequest  true  "food_id, date (YYYY-MM-DD), quantity_prepared"
// @Success      201   {object}  dto.DerivedStateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production [post]
func (h *LedgerHandler) SubmitProduction(c *fiber.Ctx) error {
	var in dto.SubmitProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	state, err := h.submit.SubmitProduction(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(state)
}

// SubmitSales godoc
// @Summary      Comprometer ventas diarias
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitSalesRequest  true  "food_id, date (YYYY-MM-DD), quantity_sold"
// @Success      201   {object}  dto.DerivedStateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *LedgerHandler) SubmitSales(c *fiber.Ctx) error {
	var in dto.SubmitSalesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	state, err := h.submit.SubmitSales(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(state)
}

// SubmitWastage godoc
// @Summary      Comprometer merma explícita
// @Description  La merma explícita prevalece sobre la derivación implícita para esa clave.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitWastageRequest  true  "food_id, date (YYYY-MM-DD), quantity_wasted, reason"
// @Success      201   {object}  dto.DerivedStateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/wastage [post]
func (h *LedgerHandler) SubmitWastage(c *fiber.Ctx) error {
	var in dto.SubmitWastageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	state, err := h.submit.SubmitWastage(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(state)
}

// ListProduction godoc
// @Summary      Inspeccionar producción
// @Tags         ledger
// @Produce      json
// @Param        food_id  query  string  false  "Junto con date devuelve la fila exacta"
// @Param        date     query  string  false  "YYYY-MM-DD"
// @Param        limit    query  int     false  "Máximo de filas"
// @Success      200  {array}   dto.ProductionEntryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/production [get]
func (h *LedgerHandler) ListProduction(c *fiber.Ctx) error {
	entries, err := h.list.ListProduction(c.Context(), c.Query("food_id"), c.Query("date"), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

// ListSales godoc
// @Summary      Inspeccionar ventas
// @Tags         ledger
// @Produce      json
// @Param        food_id  query  string  false  "Junto con date devuelve la fila exacta"
// @Param        date     query  string  false  "YYYY-MM-DD"
// @Param        limit    query  int     false  "Máximo de filas"
// @Success      200  {array}   dto.SalesEntryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *LedgerHandler) ListSales(c *fiber.Ctx) error {
	entries, err := h.list.ListSales(c.Context(), c.Query("food_id"), c.Query("date"), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

// ListWastage godoc
// @Summary      Inspeccionar mermas
// @Tags         ledger
// @Produce      json
// @Param        food_id  query  string  false  "Junto con date devuelve la fila exacta"
// @Param        date     query  string  false  "YYYY-MM-DD"
// @Param        limit    query  int     false  "Máximo de filas"
// @Success      200  {array}   dto.WastageEntryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/wastage [get]
func (h *LedgerHandler) ListWastage(c *fiber.Ctx) error {
	entries, err := h.list.ListWastage(c.Context(), c.Query("food_id"), c.Query("date"), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}
