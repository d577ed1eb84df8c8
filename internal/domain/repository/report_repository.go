package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailyLedgerRow es una fila del libro mayor derivado para un alimento y día:
// hechos crudos más los campos derivados con la foto de precios del commit.
type DailyLedgerRow struct {
	FoodID            string
	FoodName          string
	Date              time.Time
	QuantityPrepared  int
	QuantitySold      int
	QuantityWasted    int
	WastageExplicit   bool
	ProductionCost    decimal.Decimal
	SalesRevenue      decimal.Decimal
	WasteValue        decimal.Decimal
	WastagePercentage decimal.Decimal
}

// WeeklySummaryRow agrega una semana de actividad por alimento.
type WeeklySummaryRow struct {
	FoodID            string
	FoodName          string
	TotalPrepared     int
	TotalSold         int
	TotalWasted       int
	TotalCost         decimal.Decimal
	TotalRevenue      decimal.Decimal
	TotalWasteValue   decimal.Decimal
	WastagePercentage decimal.Decimal
}

// DaySample es la observación de un día dentro de la ventana de sugerencia.
type DaySample struct {
	Date             time.Time
	QuantityPrepared int
	QuantitySold     int
	QuantityWasted   int
}

// ReportRepository define el puerto de lecturas analíticas. Todas las consultas
// son de solo lectura y corren fuera de la unidad atómica de escritura.
type ReportRepository interface {
	GetDailyLedger(ctx context.Context, from, to time.Time, limit int) ([]DailyLedgerRow, error)
	GetWeeklySummary(ctx context.Context, from, to time.Time) ([]WeeklySummaryRow, error)
	// GetWindowSamples devuelve los días con venta registrada para un alimento
	// dentro de [from, to], en orden cronológico.
	GetWindowSamples(ctx context.Context, foodID string, from, to time.Time) ([]DaySample, error)
	// GetDayTotals agrega el día completo para el panel de control.
	GetDayTotals(ctx context.Context, date time.Time) (prepared, sold, wasted int, cost, revenue, wasteValue decimal.Decimal, err error)
	CountUnresolvedAlerts(ctx context.Context) (int, error)
}
