package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FoodItem representa un plato o alimento del catálogo del comedor.
// Los precios (CostPerUnit, SellingPricePerUnit) son los valores vigentes del catálogo:
// el motor de derivación toma una foto de ellos al momento del commit, de modo que
// cambios posteriores de precio nunca alteran entradas históricas del libro diario.
type FoodItem struct {
	ID                  string
	Name                string
	CategoryID          string
	CategoryName        string // denormalizado en lecturas (JOIN con categories)
	UnitID              string
	SupplierID          *string
	CostPerUnit         decimal.Decimal
	SellingPricePerUnit decimal.Decimal
	MinStockLevel       int
	MaxStockLevel       int
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
