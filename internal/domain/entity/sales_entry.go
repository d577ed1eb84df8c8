package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesEntry registra las ventas de un alimento en una fecha.
// Clave única (FoodID, Date), mismo ciclo de vida que ProductionEntry.
// SalePrice es derivado: QuantitySold × SellingPricePerUnit (foto al commit).
// Vender más de lo producido ese día no es error: se asume consumo de stock previo.
type SalesEntry struct {
	ID           string
	FoodID       string
	Date         time.Time
	QuantitySold int
	SalePrice    decimal.Decimal
	StaffID      string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
