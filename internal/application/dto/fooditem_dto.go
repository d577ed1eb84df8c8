package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

// CreateFoodItemRequest body para POST /api/fooditems.
type CreateFoodItemRequest struct {
	Name                string          `json:"name"`
	CategoryID          string          `json:"category_id"`
	UnitID              string          `json:"unit_id"`
	SupplierID          *string         `json:"supplier_id,omitempty"`
	CostPerUnit         decimal.Decimal `json:"cost_per_unit"`
	SellingPricePerUnit decimal.Decimal `json:"selling_price_per_unit"`
	MinStockLevel       int             `json:"min_stock_level"`
	MaxStockLevel       int             `json:"max_stock_level"`
}

// UpdateFoodItemRequest body para PUT /api/fooditems/:id. Punteros nil = sin cambio;
// los campos que no aparecen aquí no son actualizables por esta vía.
type UpdateFoodItemRequest struct {
	Name                *string          `json:"name,omitempty"`
	CategoryID          *string          `json:"category_id,omitempty"`
	UnitID              *string          `json:"unit_id,omitempty"`
	SupplierID          *string          `json:"supplier_id,omitempty"`
	CostPerUnit         *decimal.Decimal `json:"cost_per_unit,omitempty"`
	SellingPricePerUnit *decimal.Decimal `json:"selling_price_per_unit,omitempty"`
	MinStockLevel       *int             `json:"min_stock_level,omitempty"`
	MaxStockLevel       *int             `json:"max_stock_level,omitempty"`
	IsActive            *bool            `json:"is_active,omitempty"`
}

// FoodItemDTO representación HTTP de un alimento del catálogo.
type FoodItemDTO struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	CategoryID          string          `json:"category_id"`
	CategoryName        string          `json:"category_name,omitempty"`
	UnitID              string          `json:"unit_id"`
	SupplierID          *string         `json:"supplier_id,omitempty"`
	CostPerUnit         decimal.Decimal `json:"cost_per_unit"`
	SellingPricePerUnit decimal.Decimal `json:"selling_price_per_unit"`
	MinStockLevel       int             `json:"min_stock_level"`
	MaxStockLevel       int             `json:"max_stock_level"`
	IsActive            bool            `json:"is_active"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// FoodItemFromEntity convierte la entidad de dominio a su DTO.
func FoodItemFromEntity(f *entity.FoodItem) *FoodItemDTO {
	return &FoodItemDTO{
		ID:                  f.ID,
		Name:                f.Name,
		CategoryID:          f.CategoryID,
		CategoryName:        f.CategoryName,
		UnitID:              f.UnitID,
		SupplierID:          f.SupplierID,
		CostPerUnit:         f.CostPerUnit,
		SellingPricePerUnit: f.SellingPricePerUnit,
		MinStockLevel:       f.MinStockLevel,
		MaxStockLevel:       f.MaxStockLevel,
		IsActive:            f.IsActive,
		CreatedAt:           f.CreatedAt,
		UpdatedAt:           f.UpdatedAt,
	}
}
