package dto

import "github.com/shopspring/decimal"

// SubmitProductionRequest body para POST /api/production.
type SubmitProductionRequest struct {
	FoodID           string `json:"food_id"`
	Date             string `json:"date"` // YYYY-MM-DD
	QuantityPrepared int    `json:"quantity_prepared"`
	StaffID          string `json:"staff_id,omitempty"`
	StartTime        string `json:"start_time,omitempty"` // HH:MM
	EndTime          string `json:"end_time,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// SubmitSalesRequest body para POST /api/sales.
type SubmitSalesRequest struct {
	FoodID       string `json:"food_id"`
	Date         string `json:"date"`
	QuantitySold int    `json:"quantity_sold"`
	StaffID      string `json:"staff_id,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// SubmitWastageRequest body para POST /api/wastage.
type SubmitWastageRequest struct {
	FoodID         string `json:"food_id"`
	Date           string `json:"date"`
	QuantityWasted int    `json:"quantity_wasted"`
	Reason         string `json:"reason"`
	StaffID        string `json:"staff_id,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// DerivedStateResponse es el estado derivado de la clave (food, fecha)
// tras el commit de la unidad atómica: hechos, derivados y la alerta
// de merma viva si el umbral la disparó.
type DerivedStateResponse struct {
	FoodID            string          `json:"food_id"`
	FoodName          string          `json:"food_name"`
	Date              string          `json:"date"`
	QuantityPrepared  int             `json:"quantity_prepared"`
	QuantitySold      int             `json:"quantity_sold"`
	QuantityWasted    int             `json:"quantity_wasted"`
	WastageExplicit   bool            `json:"wastage_explicit"`
	ProductionCost    decimal.Decimal `json:"production_cost"`
	SalesRevenue      decimal.Decimal `json:"sales_revenue"`
	WasteValue        decimal.Decimal `json:"waste_value"`
	WastagePercentage decimal.Decimal `json:"wastage_percentage"`
	Alert             *AlertDTO       `json:"alert,omitempty"`
}

// LedgerEntryDTO fila del libro mayor para listados de inspección.
type LedgerEntryDTO struct {
	FoodID            string          `json:"food_id"`
	FoodName          string          `json:"food_name"`
	Date              string          `json:"date"`
	QuantityPrepared  int             `json:"quantity_prepared"`
	QuantitySold      int             `json:"quantity_sold"`
	QuantityWasted    int             `json:"quantity_wasted"`
	WastageExplicit   bool            `json:"wastage_explicit"`
	ProductionCost    decimal.Decimal `json:"production_cost"`
	SalesRevenue      decimal.Decimal `json:"sales_revenue"`
	WasteValue        decimal.Decimal `json:"waste_value"`
	WastagePercentage decimal.Decimal `json:"wastage_percentage"`
}
