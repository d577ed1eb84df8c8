package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comedor-api/internal/application/catalog"
	"github.com/jhoicas/Comedor-api/internal/application/dto"
)

// FoodItemHandler maneja el catálogo de alimentos.
type FoodItemHandler struct {
	uc *catalog.UseCase
}

// NewFoodItemHandler construye el handler.
func NewFoodItemHandler(uc *catalog.UseCase) *FoodItemHandler {
	return &FoodItemHandler{uc: uc}
}

// staffID identifica al operador de una mutación del catálogo para auditoría.
func staffID(c *fiber.Ctx) string {
	return c.Get("X-Staff-ID")
}

// List godoc
// @Summary      Listar catálogo de alimentos
// @Tags         fooditems
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}   dto.FoodItemDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/fooditems [get]
func (h *FoodItemHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// GetByID godoc
// @Summary      Obtener un alimento
// @Tags         fooditems
// @Produce      json
// @Param        id  path  string  true  "ID del alimento"
// @Success      200  {object}  dto.FoodItemDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fooditems/{id} [get]
func (h *FoodItemHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// Create godoc
// @Summary      Dar de alta un alimento
// @Tags         fooditems
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFoodItemRequest  true  "name, category_id, unit_id, precios y niveles"
// @Success      201   {object}  dto.FoodItemDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fooditems [post]
func (h *FoodItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFoodItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Create(c.Context(), in, staffID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Update godoc
// @Summary      Actualización parcial tipada de un alimento
// @Description  Solo cambian los campos presentes en el cuerpo; campos desconocidos se ignoran.
// @Tags         fooditems
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del alimento"
// @Param        body  body  dto.UpdateFoodItemRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.FoodItemDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/fooditems/{id} [put]
func (h *FoodItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFoodItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Update(c.Context(), c.Params("id"), in, staffID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}
